package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"page-export/internal/models"
)

var sampleRows = []models.Row{
	{FileID: 5, FileName: "scan, final.pdf", PageID: 1, PageNumber: 1, DocumentName: "Invoice", FieldName: "A", FieldValue: "100", ConfidenceScore: "95"},
	{FileID: 5, FileName: "scan, final.pdf", PageID: 2, PageNumber: 2, DocumentName: "Unknown", FieldName: "No field", FieldValue: "No value", ConfidenceScore: "No confidence"},
}

func TestNewWriter(t *testing.T) {
	w, err := NewWriter("csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", w.Ext())

	w, err = NewWriter("xlsx")
	require.NoError(t, err)
	assert.Equal(t, "xlsx", w.Ext())

	_, err = NewWriter("pdf")
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "pages_for_file_12.csv", OutputPath(".", 12, "csv"))
	assert.Equal(t, filepath.Join("out", "pages_for_file_3.xlsx"), OutputPath("out", 3, "xlsx"))
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing\n"), 0o644))

	require.NoError(t, CSVWriter{}.Write(path, sampleRows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "fileId,fileName,pageId,pageNumber,documentName,fieldName,fieldValue,confidenceScore\r\n" +
		"5,\"scan, final.pdf\",1,1,Invoice,A,100,95\r\n" +
		"5,\"scan, final.pdf\",2,2,Unknown,No field,No value,No confidence\r\n"
	assert.Equal(t, want, string(data))
}

func TestCSVWriterMissingDir(t *testing.T) {
	err := CSVWriter{}.Write(filepath.Join(t.TempDir(), "missing", "out.csv"), sampleRows)
	assert.ErrorContains(t, err, "failed to create")
}

func TestXLSXWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, XLSXWriter{}.Write(path, sampleRows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(models.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.Header, rows[0])
	assert.Equal(t, []string{"5", "scan, final.pdf", "1", "1", "Invoice", "A", "100", "95"}, rows[1])
	assert.Equal(t, "No confidence", rows[2][7])
}
