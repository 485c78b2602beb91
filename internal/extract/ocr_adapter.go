package extract

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/statement-extractor/internal/ocr"
)

type OCRAdapter struct {
	e      *ocr.Extractor
	logger *slog.Logger
}

func NewOCRAdapter(e *ocr.Extractor, logger *slog.Logger) *OCRAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRAdapter{e: e, logger: logger}
}

func (a *OCRAdapter) Extract(ctx context.Context, path string, enableOCR bool) (TextExtractionResult, error) {
	r, err := a.e.ExtractFirstPage(ctx, path, enableOCR)
	if err != nil {
		a.logger.Warn("extract.text.failed", "path", path, "error", err)
	} else {
		a.logger.Debug("extract.text.ok",
			"path", path,
			"method", r.Method,
			"chars", len(r.Text),
			"degraded", r.Degraded,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
	return TextExtractionResult{
		Text:     r.Text,
		Pages:    r.Pages,
		Method:   r.Method,
		Duration: r.Duration,
		Warnings: r.Warnings,
		Degraded: r.Degraded,
	}, err
}
