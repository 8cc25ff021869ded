package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// Session runs the read queries for one export on a single connection.
type Session struct {
	db bun.IDB
}

// PagesByFile returns the pages of a file ordered by page number.
func (s *Session) PagesByFile(ctx context.Context, fileID int64) ([]Page, error) {
	var pages []Page
	err := s.db.NewSelect().
		Model(&pages).
		Where(`p."fileId" = ?`, fileID).
		OrderExpr(`p."pageNumber" ASC`).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pages for file %d: %w", fileID, err)
	}
	return pages, nil
}

// FileByID returns nil when the file does not exist.
func (s *Session) FileByID(ctx context.Context, fileID int64) (*File, error) {
	file := new(File)
	err := s.db.NewSelect().
		Model(file).
		Where(`f."fileId" = ?`, fileID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file %d: %w", fileID, err)
	}
	return file, nil
}

// DocumentByID returns nil for a nil id or a missing document.
func (s *Session) DocumentByID(ctx context.Context, documentID *int64) (*Document, error) {
	if documentID == nil {
		return nil, nil
	}
	doc := new(Document)
	err := s.db.NewSelect().
		Model(doc).
		Where(`d."documentId" = ?`, *documentID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %d: %w", *documentID, err)
	}
	return doc, nil
}

// FieldsByPage returns the fields of a page in retrieval order.
func (s *Session) FieldsByPage(ctx context.Context, pageID int64) ([]DocumentField, error) {
	var fields []DocumentField
	err := s.db.NewSelect().
		Model(&fields).
		Where(`df."pageId" = ?`, pageID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fields for page %d: %w", pageID, err)
	}
	return fields, nil
}
