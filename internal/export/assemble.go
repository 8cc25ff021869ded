package export

import (
	"context"

	"page-export/internal/db"
	"page-export/internal/models"
)

// PageRecords is a page with its resolved document and fields.
type PageRecords struct {
	Page     db.Page
	Document *db.Document
	Fields   []db.DocumentField
}

// BuildRows emits one row per field, or a single placeholder row for a page
// without fields. Pages are expected in page-number order.
func BuildRows(fileID int64, file *db.File, pages []PageRecords) []models.Row {
	fileName := FileName(file)

	var rows []models.Row
	for _, p := range pages {
		base := models.Row{
			FileID:       fileID,
			FileName:     fileName,
			PageID:       p.Page.PageID,
			PageNumber:   p.Page.PageNumber,
			DocumentName: DocumentName(p.Document),
		}

		if len(p.Fields) == 0 {
			row := base
			row.FieldName, row.FieldValue, row.ConfidenceScore = FieldColumns(nil)
			rows = append(rows, row)
			continue
		}

		for i := range p.Fields {
			row := base
			row.FieldName, row.FieldValue, row.ConfidenceScore = FieldColumns(&p.Fields[i])
			rows = append(rows, row)
		}
	}
	return rows
}

// Collect loads everything needed to export one file. It returns nil rows
// when the file has no pages.
func Collect(ctx context.Context, s *db.Session, fileID int64) ([]models.Row, error) {
	pages, err := s.PagesByFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}

	file, err := s.FileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	records := make([]PageRecords, 0, len(pages))
	for _, page := range pages {
		doc, err := s.DocumentByID(ctx, page.DocumentID)
		if err != nil {
			return nil, err
		}
		fields, err := s.FieldsByPage(ctx, page.PageID)
		if err != nil {
			return nil, err
		}
		records = append(records, PageRecords{Page: page, Document: doc, Fields: fields})
	}

	return BuildRows(fileID, file, records), nil
}
