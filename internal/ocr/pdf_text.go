package ocr

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
)

// directText reads the text layer of page one, preferring pdftotext and falling back
// to the in-process reader. Failing both means the file cannot be parsed at all.
func (e *Extractor) directText(ctx context.Context, path string) (Acquisition, error) {
	var warns []string

	text, err := e.pdfToText(ctx, path)
	if err == nil {
		return Acquisition{Text: text, Method: constants.MethodPDFText}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Acquisition{Method: constants.MethodNone}, ctxErr
	}
	warns = append(warns, describeToolError(e.cfg.Pdftotext, err))

	text, pages, err := e.reader.FirstPage(path)
	if err != nil {
		e.logger.Error("acquire.malformed", "path", path, "error", err)
		return Acquisition{Method: constants.MethodNone, Warnings: warns}, common.MalformedDocument(path, err)
	}
	return Acquisition{
		Text:     Normalize(text),
		Method:   constants.MethodPDFNative,
		Pages:    pages,
		Warnings: warns,
	}, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (string, error) {
	// pdftotext -f 1 -l 1 -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-f", "1", "-l", "1", "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		if msg := strings.TrimSpace(string(errb)); msg != "" {
			return "", fmt.Errorf("%w: %s", err, truncate(msg, 512))
		}
		return "", err
	}
	text := string(out)
	// a form-feed terminates each page
	if i := strings.IndexByte(text, '\f'); i >= 0 {
		text = text[:i]
	}
	return Normalize(text), nil
}

func describeToolError(tool string, err error) string {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Sprintf("%s not installed", tool)
	}
	return fmt.Sprintf("%s failed: %v", tool, err)
}
