package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"page-export/internal/db"
	"page-export/internal/models"
)

func TestDisplayDefaults(t *testing.T) {
	assert.Equal(t, "Unknown", FileName(nil))
	assert.Equal(t, "", FileName(&db.File{FileID: 1}))
	assert.Equal(t, "scan.pdf", FileName(&db.File{FileID: 1, FileName: strPtr("scan.pdf")}))

	assert.Equal(t, "Unknown", DocumentName(nil))
	assert.Equal(t, "Invoice", DocumentName(&db.Document{DocumentName: "Invoice"}))

	name, value, confidence := FieldColumns(nil)
	assert.Equal(t, []string{"No field", "No value", "No confidence"}, []string{name, value, confidence})

	name, value, confidence = FieldColumns(&db.DocumentField{FieldName: "Total", FieldValue: strPtr("1000000.0")})
	assert.Equal(t, []string{"Total", "1000000", ""}, []string{name, value, confidence})
}

func TestBuildRowsPageWithoutFields(t *testing.T) {
	rows := BuildRows(5, nil, []PageRecords{
		{Page: db.Page{PageID: 9, PageNumber: 1}},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, models.Row{
		FileID:          5,
		FileName:        "Unknown",
		PageID:          9,
		PageNumber:      1,
		DocumentName:    "Unknown",
		FieldName:       "No field",
		FieldValue:      "No value",
		ConfidenceScore: "No confidence",
	}, rows[0])
}

func TestBuildRowsOneRowPerField(t *testing.T) {
	file := &db.File{FileID: 5, FileName: strPtr("scan.pdf")}
	doc := &db.Document{DocumentID: 1, DocumentName: "Invoice"}
	fields := []db.DocumentField{
		{FieldName: "A", FieldValue: strPtr("100"), ConfidenceScore: intPtr(95)},
		{FieldName: "B", FieldValue: strPtr("200.5"), ConfidenceScore: intPtr(80)},
		{FieldName: "C", FieldValue: strPtr("N/A")},
	}

	rows := BuildRows(5, file, []PageRecords{
		{Page: db.Page{PageID: 1, PageNumber: 1}, Document: doc, Fields: fields},
		{Page: db.Page{PageID: 2, PageNumber: 2}},
	})

	require.Len(t, rows, 4)
	for _, r := range rows[:3] {
		assert.Equal(t, int64(5), r.FileID)
		assert.Equal(t, "scan.pdf", r.FileName)
		assert.Equal(t, int64(1), r.PageID)
		assert.Equal(t, 1, r.PageNumber)
		assert.Equal(t, "Invoice", r.DocumentName)
	}
	assert.Equal(t, []string{"5", "scan.pdf", "1", "1", "Invoice", "A", "100", "95"}, rows[0].Record())
	assert.Equal(t, []string{"5", "scan.pdf", "1", "1", "Invoice", "B", "200.5", "80"}, rows[1].Record())
	assert.Equal(t, []string{"5", "scan.pdf", "1", "1", "Invoice", "C", "N/A", ""}, rows[2].Record())
	assert.Equal(t, "No field", rows[3].FieldName)
	assert.Equal(t, "Unknown", rows[3].DocumentName)
}

func TestBuildRowsNoPages(t *testing.T) {
	assert.Empty(t, BuildRows(5, nil, nil))
}
