package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/batch"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
	"github.com/joseph-ayodele/statement-extractor/internal/extract"
)

func TestExportXLSX(t *testing.T) {
	items := []batch.Item{
		{Path: "oct.pdf", Result: extract.Result{
			Path:           "oct.pdf",
			CardholderName: "SOMNATH SAWANT",
			StatementDate:  "09 Oct 2025",
			PaymentDueDate: constants.Immediate,
			TotalAmountDue: "35018.00",
			CardLast4:      "5981",
			Source:         constants.MethodPDFText,
		}},
		{Path: "scan.pdf", Result: extract.Result{
			Path:           "scan.pdf",
			CardholderName: constants.NotFound,
			StatementDate:  constants.NotFound,
			PaymentDueDate: constants.NotFound,
			TotalAmountDue: constants.NotFound,
			CardLast4:      constants.NotFound,
			Source:         constants.MethodNone,
			Degraded:       true,
			Diagnostics:    []string{"ocr fallback disabled", "cardholder_name: not found"},
		}},
		{Path: "bad.pdf", Err: common.MalformedDocument("bad.pdf", errors.New("eof"))},
	}

	b, err := NewService(nil).ExportXLSX(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"oct.pdf", "SOMNATH SAWANT", "09 Oct 2025", "IMMEDIATE", "35018.00", "5981", "pdf-text", "FALSE"}, rows[1][:8])
	assert.Equal(t, "TRUE", rows[2][7])
	assert.Equal(t, "ocr fallback disabled; cardholder_name: not found", rows[2][8])
	assert.Equal(t, "bad.pdf", rows[3][0])
	assert.Equal(t, constants.NotFound, rows[3][4])
	assert.Contains(t, rows[3][8], "malformed document")
}

func TestExportXLSX_Empty(t *testing.T) {
	b, err := NewService(nil).ExportXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "₹₹…", truncate("₹₹₹₹", 3))
}
