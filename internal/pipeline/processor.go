package processor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
	"github.com/joseph-ayodele/statement-extractor/internal/extract"
)

// Processor coordinates text acquisition, then candidate scanning and field resolution.
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if parse == nil {
		parse = NewParseStage(nil, logger)
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// Process extracts the five statement fields from page one of the PDF at path.
// The returned error is non-nil only for invalid input, a malformed document or a
// cancelled context. Degraded text and unresolved fields are reported in the Result.
func (p *Processor) Process(ctx context.Context, path string, enableOCR bool) (extract.Result, error) {
	start := time.Now()
	docID := common.DocumentIDFromContext(ctx)
	if docID == "" {
		docID = uuid.NewString()
		ctx = common.WithDocumentID(ctx, docID)
	}

	text, err := p.OCR.Run(ctx, path, enableOCR)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, common.ErrMalformedDocument) {
			level = slog.LevelError
		}
		p.Logger.Log(ctx, level, "process.acquire.failed", "document_id", docID, "path", path, "error", err)
		return extract.Result{}, err
	}

	scan, res := p.Parse.Run(ctx, text.Text)
	out := extract.Assemble(docID, path, text, scan.Candidates, res)
	if err := extract.ValidateResult(out); err != nil {
		p.Logger.Error("process.invalid_result", "document_id", docID, "path", path, "error", err)
		return out, err
	}

	resolved := len(constants.AllFields()) - len(res.Unresolved())
	p.Logger.Info("process.ok",
		"document_id", docID,
		"path", path,
		"method", out.Source,
		"degraded", out.Degraded,
		"resolved", resolved,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
