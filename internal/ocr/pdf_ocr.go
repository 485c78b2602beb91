package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/joseph-ayodele/statement-extractor/internal/common"
)

// pageOneOCR rasterizes page one and runs tesseract on the image.
func (e *Extractor) pageOneOCR(ctx context.Context, path string) (string, []string, error) {
	tmpDir, err := os.MkdirTemp("", "se-pp-*")
	if err != nil {
		return "", nil, err
	}
	defer func(dir string) {
		if err := os.RemoveAll(dir); err != nil {
			e.logger.Warn("failed to remove temp dir", "dir", dir, "error", err)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f 1 -l 1 -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-f", "1", "-l", "1", "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", []string{string(errb)}, toolError(e.cfg.Pdftoppm, err)
	}

	// pdftoppm pads the page number to the page count width: page-1.png, page-01.png, ...
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	txt, warns, err := e.tesseractOCR(ctx, matches[0])
	if err != nil {
		return "", warns, err
	}
	return Normalize(txt), warns, nil
}

// toolError marks a missing rasterizer/recognizer binary as ErrOCRUnavailable.
func toolError(tool string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w: %w", tool, common.ErrOCRUnavailable, err)
	}
	return fmt.Errorf("%s: %w", tool, err)
}
