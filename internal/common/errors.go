package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes carried by AppError.
const (
	CodeMalformedDocument   = "MALFORMED_DOCUMENT"
	CodeAcquisitionDegraded = "ACQUISITION_DEGRADED"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeConfig              = "CONFIG_ERROR"
)

// Common application errors
var (
	// ErrMalformedDocument is the only extraction failure surfaced to callers:
	// the PDF could not be opened or parsed at all.
	ErrMalformedDocument = errors.New("malformed document")
	ErrOCRUnavailable    = errors.New("ocr unavailable")
	ErrInsufficientText  = errors.New("insufficient text")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidResult     = errors.New("result does not match schema")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// MalformedDocument wraps cause so that errors.Is(err, ErrMalformedDocument) holds.
func MalformedDocument(path string, cause error) error {
	return NewAppError(CodeMalformedDocument, fmt.Sprintf("cannot open %q", path),
		fmt.Errorf("%w: %w", ErrMalformedDocument, cause))
}

// Degraded builds the diagnostic error recorded when acquisition fell short.
func Degraded(message string, cause error) *AppError {
	return NewAppError(CodeAcquisitionDegraded, message, cause)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
