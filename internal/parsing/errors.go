package parsing

import "fmt"

// SyntaxError reports a syntax-level failure in a JSON or YAML input.
// The underlying decoder error is carried so its message reaches the
// caller verbatim.
type SyntaxError struct {
	Format Format
	Cause  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Format, e.Cause)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// DocumentError reports a structurally invalid document, such as a
// missing name or an empty input.
type DocumentError struct {
	Message string
}

func (e *DocumentError) Error() string {
	return e.Message
}

// UnsupportedFormatError reports a format tag outside the supported set.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

func errMissingName() *DocumentError {
	return &DocumentError{Message: "invalid resume format: missing name field"}
}

func errEmptyDocument() *DocumentError {
	return &DocumentError{Message: "invalid format: empty document"}
}
