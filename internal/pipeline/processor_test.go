package processor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
	"github.com/joseph-ayodele/statement-extractor/internal/extract"
)

type stubExtractor struct {
	res   extract.TextExtractionResult
	err   error
	calls int
	ocr   bool
}

func (s *stubExtractor) Extract(_ context.Context, _ string, enableOCR bool) (extract.TextExtractionResult, error) {
	s.calls++
	s.ocr = enableOCR
	return s.res, s.err
}

func newTestProcessor(tx extract.TextExtractor) *Processor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessor(logger, NewOCRStage(tx, logger), NewParseStage(nil, logger))
}

const statementText = "HDFC Bank Credit Card Statement\n" +
	"SOMNATH SAWANT\n" +
	"Card No: XXXX XXXX XXXX 5981\n" +
	"Statement Date: 09 Oct 2025\n" +
	"Payment Due Date: 29 Oct 2025\n" +
	"Total Amount Due: 35018.00\n" +
	"Minimum Amount Due: 1,751.00"

func TestProcessor_Process(t *testing.T) {
	tx := &stubExtractor{res: extract.TextExtractionResult{Text: statementText, Method: constants.MethodPDFText, Pages: 2}}
	p := newTestProcessor(tx)

	r, err := p.Process(context.Background(), "statements/oct.pdf", true)

	require.NoError(t, err)
	assert.True(t, tx.ocr)
	assert.NotEmpty(t, r.DocumentID)
	assert.Equal(t, "statements/oct.pdf", r.Path)
	assert.Equal(t, "SOMNATH SAWANT", r.CardholderName)
	assert.Equal(t, "09 Oct 2025", r.StatementDate)
	assert.Equal(t, "29 Oct 2025", r.PaymentDueDate)
	assert.Equal(t, "35018.00", r.TotalAmountDue)
	assert.Equal(t, "5981", r.CardLast4)
	assert.Equal(t, constants.MethodPDFText, r.Source)
	assert.False(t, r.Degraded)
	assert.Empty(t, r.Diagnostics)
	var amounts []string
	for _, c := range r.Candidates.Amounts {
		amounts = append(amounts, c.Value)
	}
	assert.Contains(t, amounts, "35018.00")
	assert.Contains(t, amounts, "1,751.00")
}

func TestProcessor_DocumentIDFromContext(t *testing.T) {
	p := newTestProcessor(&stubExtractor{res: extract.TextExtractionResult{Text: statementText, Method: constants.MethodPDFText}})
	ctx := common.WithDocumentID(context.Background(), "doc-42")

	r, err := p.Process(ctx, "a.pdf", false)

	require.NoError(t, err)
	assert.Equal(t, "doc-42", r.DocumentID)
}

func TestProcessor_DegradedIsNotAnError(t *testing.T) {
	tx := &stubExtractor{res: extract.TextExtractionResult{
		Method:   constants.MethodNone,
		Degraded: true,
		Warnings: []string{"ocr fallback disabled"},
	}}
	p := newTestProcessor(tx)

	r, err := p.Process(context.Background(), "scan.pdf", false)

	require.NoError(t, err)
	assert.True(t, r.Degraded)
	assert.Equal(t, constants.MethodNone, r.Source)
	for _, f := range constants.AllFields() {
		assert.Equal(t, constants.NotFound, r.Field(f), f)
	}
	assert.Equal(t, "ocr fallback disabled", r.Diagnostics[0])
	assert.Len(t, r.Diagnostics, 1+len(constants.AllFields()))
}

func TestProcessor_Errors(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		err   error
		is    error
		calls int
	}{
		{"malformed document", "bad.pdf", common.MalformedDocument("bad.pdf", errors.New("not a pdf")), common.ErrMalformedDocument, 1},
		{"empty path", "  ", nil, common.ErrInvalidInput, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &stubExtractor{err: tt.err}
			p := newTestProcessor(tx)

			_, err := p.Process(context.Background(), tt.path, true)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.is))
			assert.Equal(t, tt.calls, tx.calls)
		})
	}
}

func TestProcessor_CancelledContext(t *testing.T) {
	p := newTestProcessor(&stubExtractor{res: extract.TextExtractionResult{Text: statementText}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Process(ctx, "a.pdf", true)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseStage_Run(t *testing.T) {
	s := NewParseStage(nil, nil)

	scan, res := s.Run(context.Background(), strings.ReplaceAll(statementText, "Total Amount Due: 35018.00\n", ""))

	assert.Len(t, scan.Candidates.Dates, 2)
	assert.Equal(t, []constants.Field{constants.TotalAmountDue}, res.Unresolved())
}
