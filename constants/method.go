package constants

// Method records how the page-one text of a document was obtained.
type Method string

// Stable values, reported in results and exports.
const (
	MethodPDFText   Method = "pdf-text"   // pdftotext on the embedded text layer
	MethodPDFNative Method = "pdf-native" // in-process text layer reader
	MethodPDFOCR    Method = "pdf-ocr"    // pdftoppm + tesseract
	MethodNone      Method = "none"       // no usable text
)
