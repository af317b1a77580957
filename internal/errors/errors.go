// Package errors provides standardized error types for the seed generator.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code represents a generator error code.
type Code string

const (
	CodeInvalidCatalog   Code = "INVALID_CATALOG"
	CodeInvalidRecord    Code = "INVALID_RECORD"
	CodeMalformedLiteral Code = "MALFORMED_LITERAL"
	CodeWriteFailed      Code = "WRITE_FAILED"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
)

// GenError represents a structured generator error.
type GenError struct {
	Code    Code
	Message string
	Err     error
}

func (e *GenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GenError) Unwrap() error {
	return e.Err
}

// Is matches any GenError carrying the same code.
func (e *GenError) Is(target error) bool {
	t, ok := target.(*GenError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors, one per code. Compare with errors.Is.
var (
	ErrInvalidCatalog   = &GenError{Code: CodeInvalidCatalog, Message: "invalid prompt catalog"}
	ErrInvalidRecord    = &GenError{Code: CodeInvalidRecord, Message: "invalid prompt record"}
	ErrMalformedLiteral = &GenError{Code: CodeMalformedLiteral, Message: "malformed dollar-quoted literal"}
	ErrWriteFailed      = &GenError{Code: CodeWriteFailed, Message: "failed to write seed script"}
	ErrInvalidConfig    = &GenError{Code: CodeInvalidConfig, Message: "invalid configuration"}
)

// InvalidCatalog creates a catalog error with a custom message.
func InvalidCatalog(format string, args ...any) *GenError {
	return &GenError{Code: CodeInvalidCatalog, Message: fmt.Sprintf(format, args...)}
}

// InvalidRecord wraps a validation failure for a rendered row.
func InvalidRecord(name string, err error) *GenError {
	return &GenError{
		Code:    CodeInvalidRecord,
		Message: fmt.Sprintf("invalid record %q", name),
		Err:     err,
	}
}

// MalformedLiteral creates a literal parsing error with context.
func MalformedLiteral(reason string) *GenError {
	return &GenError{Code: CodeMalformedLiteral, Message: "malformed dollar-quoted literal: " + reason}
}

// WriteFailed wraps a filesystem failure for the given path.
func WriteFailed(path string, err error) *GenError {
	return &GenError{
		Code:    CodeWriteFailed,
		Message: fmt.Sprintf("failed to write %s", path),
		Err:     err,
	}
}

// InvalidConfig creates a configuration error with a custom message.
func InvalidConfig(format string, args ...any) *GenError {
	return &GenError{Code: CodeInvalidConfig, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of the first GenError in err's chain, or "".
func CodeOf(err error) Code {
	var ge *GenError
	if stderrors.As(err, &ge) {
		return ge.Code
	}
	return ""
}
