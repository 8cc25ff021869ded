package export

import (
	"page-export/internal/db"
	"page-export/internal/models"
)

// FileName is the display name of an optional file record. A file that
// exists without a name renders empty; only a missing record is Unknown.
func FileName(f *db.File) string {
	if f == nil {
		return models.UnknownName
	}
	if f.FileName == nil {
		return ""
	}
	return *f.FileName
}

func DocumentName(d *db.Document) string {
	if d == nil {
		return models.UnknownName
	}
	return d.DocumentName
}

// FieldColumns returns the name, value and confidence cells for an optional
// field.
func FieldColumns(f *db.DocumentField) (name, value, confidence string) {
	if f == nil {
		return models.NoField, models.NoValue, models.NoConfidence
	}
	return f.FieldName, FormatValue(f.FieldValue), FormatValue(f.ConfidenceScore)
}
