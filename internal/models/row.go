package models

import "strconv"

// Row is one line of the export: a page joined with one of its fields.
type Row struct {
	FileID          int64  `json:"fileId"`
	FileName        string `json:"fileName"`
	PageID          int64  `json:"pageId"`
	PageNumber      int    `json:"pageNumber"`
	DocumentName    string `json:"documentName"`
	FieldName       string `json:"fieldName"`
	FieldValue      string `json:"fieldValue"`
	ConfidenceScore string `json:"confidenceScore"`
}

// Record returns the row as strings in Header order.
func (r Row) Record() []string {
	return []string{
		strconv.FormatInt(r.FileID, 10),
		r.FileName,
		strconv.FormatInt(r.PageID, 10),
		strconv.Itoa(r.PageNumber),
		r.DocumentName,
		r.FieldName,
		r.FieldValue,
		r.ConfidenceScore,
	}
}
