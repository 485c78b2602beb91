package ingest

import (
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/statement-extractor/constants"
)

// AllowedExt checks if a file extension names a PDF.
func AllowedExt(ext string) bool {
	return constants.IsPDFExt(ext)
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
