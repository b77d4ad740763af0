package services

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInternalProcessing = errors.New("internal processing error")
	ErrFileTooLarge       = errors.New("file too large")
)

// ScreeningError ties a failure to the document and step it happened in.
type ScreeningError struct {
	Document string
	Op       string
	BaseErr  error
	Detail   string
}

func (e *ScreeningError) Error() string {
	msg := e.BaseErr.Error()
	if e.Op != "" {
		msg = fmt.Sprintf("%s (op: %s)", msg, e.Op)
	}
	if e.Document != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Document)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func (e *ScreeningError) Unwrap() error {
	return e.BaseErr
}

func (e *ScreeningError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

func newUnsupportedFormatError(document, format string) error {
	return &ScreeningError{
		Document: document,
		Op:       "extract",
		BaseErr:  ErrUnsupportedFormat,
		Detail:   fmt.Sprintf("format %q", format),
	}
}

func newInvalidRequestError(detail string) error {
	return &ScreeningError{
		Op:      "validate",
		BaseErr: ErrInvalidRequest,
		Detail:  detail,
	}
}

func newInternalError(document, op string, cause error) error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &ScreeningError{
		Document: document,
		Op:       op,
		BaseErr:  ErrInternalProcessing,
		Detail:   detail,
	}
}
