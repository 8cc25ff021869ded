package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"page-export/internal/config"
	"page-export/internal/models"
)

// Writer creates (or overwrites) one output file holding the header and rows.
type Writer interface {
	Ext() string
	Write(path string, rows []models.Row) error
}

func NewWriter(format string) (Writer, error) {
	switch format {
	case config.FormatCSV, "":
		return CSVWriter{}, nil
	case config.FormatXLSX:
		return XLSXWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

func OutputPath(dir string, fileID int64, ext string) string {
	return filepath.Join(dir, fmt.Sprintf(models.OutputFilePattern, fileID, ext))
}

type CSVWriter struct{}

func (CSVWriter) Ext() string { return config.FormatCSV }

func (CSVWriter) Write(path string, rows []models.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	w.UseCRLF = true

	if err := w.Write(models.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// XLSXWriter keeps field values and scores as text cells so spreadsheet
// software does not reformat them.
type XLSXWriter struct{}

func (XLSXWriter) Ext() string { return config.FormatXLSX }

func (XLSXWriter) Write(path string, rows []models.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", models.SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(models.Header))
	for i, h := range models.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(models.SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.FileID, row.FileName, row.PageID, row.PageNumber, row.DocumentName,
			row.FieldName, row.FieldValue, row.ConfidenceScore,
		}
		if err := f.SetSheetRow(models.SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
