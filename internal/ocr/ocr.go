package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned pages, default 300

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default

	// MinTextChars is the trimmed length below which direct extraction counts as insufficient.
	MinTextChars int
	// MinOCRChars is the trimmed length OCR output needs before it replaces the direct text.
	MinOCRChars int
}

// Acquisition is the page-one text of one document plus how it was obtained.
type Acquisition struct {
	Text     string
	Method   constants.Method
	Pages    int
	Duration time.Duration
	Warnings []string
	// Degraded is set when neither the text layer nor OCR produced sufficient text.
	Degraded bool
}

type Extractor struct {
	cfg    Config
	runner Runner
	reader PageReader
	logger *slog.Logger
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithRunner replaces the os/exec runner used for poppler and tesseract.
func WithRunner(r Runner) Option {
	return func(e *Extractor) {
		if r != nil {
			e.runner = r
		}
	}
}

// WithPageReader replaces the in-process PDF reader.
func WithPageReader(r PageReader) Option {
	return func(e *Extractor) {
		if r != nil {
			e.reader = r
		}
	}
}

func NewExtractor(cfg Config, logger *slog.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinTextChars <= 0 {
		cfg.MinTextChars = 40
	}
	if cfg.MinOCRChars <= 0 {
		cfg.MinOCRChars = 20
	}
	e := &Extractor{
		cfg:    cfg,
		runner: execRunner{logger: logger},
		reader: nativeReader{},
		logger: logger,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// ExtractFirstPage returns the text of page one. Direct extraction is tried first;
// OCR is attempted only when that text is insufficient and enableOCR is set.
// The only error returned is a malformed (unopenable) document or an invalid path;
// every other shortfall is reported through Degraded and Warnings.
func (e *Extractor) ExtractFirstPage(ctx context.Context, path string, enableOCR bool) (Acquisition, error) {
	start := time.Now()
	if strings.TrimSpace(path) == "" {
		return Acquisition{Method: constants.MethodNone}, common.NewAppError(common.CodeInvalidInput, "path is required", common.ErrInvalidInput)
	}
	e.logger.Debug("acquire.start", "path", path, "ocr", enableOCR)

	res, err := e.directText(ctx, path)
	if err != nil {
		res.Duration = time.Since(start)
		return res, err
	}
	if e.sufficient(res.Text, e.cfg.MinTextChars) {
		res.Duration = time.Since(start)
		e.logger.Debug("acquire.direct.ok", "path", path, "method", res.Method, "chars", len(res.Text))
		return res, nil
	}

	e.logger.Info("acquire.direct.insufficient", "path", path, "chars", len(strings.TrimSpace(res.Text)))
	res.Warnings = append(res.Warnings, fmt.Sprintf("direct extraction returned %d chars (< %d)",
		len(strings.TrimSpace(res.Text)), e.cfg.MinTextChars))

	if !enableOCR {
		res.Degraded = true
		res.Warnings = append(res.Warnings, "ocr fallback disabled")
		if strings.TrimSpace(res.Text) == "" {
			res.Method = constants.MethodNone
		}
		res.Duration = time.Since(start)
		return res, nil
	}

	txt, warns, err := e.pageOneOCR(ctx, path)
	for _, w := range warns {
		if w = strings.TrimSpace(w); w != "" {
			res.Warnings = append(res.Warnings, truncate(w, 512))
		}
	}
	switch {
	case err != nil:
		e.logger.Warn("acquire.ocr.failed", "path", path, "error", err)
		res.Warnings = append(res.Warnings, common.Degraded("ocr fallback failed", err).Error())
		res.Degraded = true
	case !e.sufficient(txt, e.cfg.MinOCRChars):
		e.logger.Warn("acquire.ocr.insufficient", "path", path, "chars", len(strings.TrimSpace(txt)))
		res.Warnings = append(res.Warnings, common.Degraded("ocr output insufficient", common.ErrInsufficientText).Error())
		res.Degraded = true
	default:
		res.Text = txt
		res.Method = constants.MethodPDFOCR
	}
	if res.Degraded && strings.TrimSpace(res.Text) == "" {
		res.Method = constants.MethodNone
	}
	res.Duration = time.Since(start)
	e.logger.Info("acquire.done", "path", path, "method", res.Method, "degraded", res.Degraded,
		"duration_ms", res.Duration.Milliseconds())
	return res, nil
}

func (e *Extractor) sufficient(text string, min int) bool {
	return len(strings.TrimSpace(text)) >= min
}
