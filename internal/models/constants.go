package models

const (
	UnknownName  = "Unknown"
	NoField      = "No field"
	NoValue      = "No value"
	NoConfidence = "No confidence"

	OutputFilePattern = "pages_for_file_%d.%s"
	SheetName         = "Pages"
)

var Header = []string{
	"fileId", "fileName", "pageId", "pageNumber", "documentName",
	"fieldName", "fieldValue", "confidenceScore",
}
