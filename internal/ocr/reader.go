package ocr

import (
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PageReader reads the embedded text layer of page one in-process.
type PageReader interface {
	FirstPage(path string) (text string, pages int, err error)
}

type nativeReader struct{}

func (nativeReader) FirstPage(path string) (text string, pages int, err error) {
	// the parser panics on some broken xref tables
	defer func() {
		if r := recover(); r != nil {
			text, pages, err = "", 0, fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	pages = r.NumPage()
	if pages == 0 {
		return "", 0, errors.New("pdf has no pages")
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return "", pages, nil
	}
	text, err = page.GetPlainText(nil)
	if err != nil {
		// an unreadable content stream is a sparse page, not a broken file
		return "", pages, nil
	}
	return text, pages, nil
}
