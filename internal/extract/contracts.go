package extract

import (
	"context"
	"time"

	"github.com/joseph-ayodele/statement-extractor/constants"
)

// TextExtractor is Stage 1: file -> page-one text.
type TextExtractor interface {
	Extract(ctx context.Context, path string, enableOCR bool) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   constants.Method // "pdf-text" | "pdf-native" | "pdf-ocr" | "none"
	Duration time.Duration
	Warnings []string
	// Degraded is set when the text is known to be insufficient.
	Degraded bool
}
