package processor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
	"github.com/joseph-ayodele/statement-extractor/internal/extract"
)

// OCRStage acquires the page-one text of a document.
type OCRStage struct {
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{TextExtractor: tx, Logger: logger}
}

// Run validates the path and runs the text extractor. Errors are limited to
// invalid input, malformed documents and context cancellation.
func (s *OCRStage) Run(ctx context.Context, path string, enableOCR bool) (extract.TextExtractionResult, error) {
	if strings.TrimSpace(path) == "" {
		return extract.TextExtractionResult{Method: constants.MethodNone},
			common.NewAppError(common.CodeInvalidInput, "path is required", common.ErrInvalidInput)
	}
	res, err := s.TextExtractor.Extract(ctx, path, enableOCR)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if res.Method == "" {
		res.Method = constants.MethodNone
	}

	s.Logger.Debug("ocr stage done",
		"document_id", common.DocumentIDFromContext(ctx),
		"method", res.Method,
		"chars", len(res.Text),
		"degraded", res.Degraded,
		"warnings", len(res.Warnings),
	)
	return res, nil
}
