package db

import (
	"time"

	"github.com/uptrace/bun"
)

// Tables are owned by the ingestion service. Column names are quoted
// camelCase to match what it created.

type File struct {
	bun.BaseModel `bun:"table:file,alias:f"`
	FileID        int64   `bun:"fileId,pk,autoincrement"`
	FileName      *string `bun:"fileName"`
}

type Document struct {
	bun.BaseModel `bun:"table:document,alias:d"`
	DocumentID    int64  `bun:"documentId,pk,autoincrement"`
	DocumentName  string `bun:"documentName,notnull"`
}

type Page struct {
	bun.BaseModel `bun:"table:page,alias:p"`
	PageID        int64      `bun:"pageId,pk,autoincrement"`
	FileID        *int64     `bun:"fileId"`
	DocumentID    *int64     `bun:"documentId"`
	PageNumber    int        `bun:"pageNumber,notnull"`
	PageLocation  string     `bun:"pageLocation,notnull"`
	PageURL       *string    `bun:"pageUrl"`
	CleanOcrData  *string    `bun:"cleanOcrData"`
	OcrStatus     *string    `bun:"ocrStatus"`
	ProcessStatus *string    `bun:"processStatus"`
	IsBlank       bool       `bun:"isBlank"`
	DateOfService *time.Time `bun:"dateOfService"`
	MD5           *string    `bun:"MD5"`
}

type DocumentField struct {
	bun.BaseModel   `bun:"table:documentField,alias:df"`
	FieldID         int64   `bun:"fieldId,pk,autoincrement"`
	DocumentID      *int64  `bun:"documentId"`
	FieldName       string  `bun:"fieldName,notnull"`
	FieldValue      *string `bun:"fieldValue"`
	ConfidenceScore *int64  `bun:"confidenceScore"`
	PageID          *int64  `bun:"pageId"`
}
