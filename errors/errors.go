// Package errors provides the error types used across the pipeline.
// Capture is the single entry point for wrapping a failure: it records
// the file and line of the call site once and renders a stable message.
package errors

import (
	"fmt"
	"runtime"
)

// Placeholder values used when the caller frame cannot be resolved.
const (
	unknownFile = "unknown"
	unknownLine = 0
)

// OperationError is the terminal error value propagated to the process
// boundary. The rendered message is computed once, at Capture time, because
// the call-site information is only meaningful at the point of failure.
type OperationError struct {
	file    string
	line    int
	message string
	err     error
}

// Capture wraps err with the file and line of the caller. A nil err returns
// nil. An err that is already an *OperationError is returned unchanged, so
// the innermost failure location is reported exactly once no matter how many
// layers re-wrap on the way up.
func Capture(err error) error {
	if err == nil {
		return nil
	}
	if oe, ok := err.(*OperationError); ok {
		return oe
	}
	return capture(err, 2)
}

// capture resolves the frame `skip` levels up the stack. It never fails:
// when no frame resolves, the location fields degrade to placeholders.
func capture(err error, skip int) *OperationError {
	file := unknownFile
	line := unknownLine
	if _, f, l, ok := runtime.Caller(skip); ok {
		file = f
		line = l
	}
	return &OperationError{
		file: file,
		line: line,
		message: fmt.Sprintf(
			"Error occurred in script [%s] line number [%d] error message [%s]",
			file, line, err.Error(),
		),
		err: err,
	}
}

// Error returns the message rendered at Capture time. Repeated calls return
// the identical string.
func (e *OperationError) Error() string {
	return e.message
}

func (e *OperationError) Unwrap() error {
	return e.err
}

// Filename reports the source file of the capture site, or "unknown" if the
// frame lookup failed.
func (e *OperationError) Filename() string {
	return e.file
}

// LineNumber reports the line of the capture site, or 0 if the frame lookup
// failed.
func (e *OperationError) LineNumber() int {
	return e.line
}

// RowError wraps a per-record failure with context about where in the input
// it occurred.
type RowError struct {
	Line   int
	Record []string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Define specific error types for better error handling
var (
	ErrEmptyDataset  = fmt.Errorf("empty dataset")
	ErrMissingHeader = fmt.Errorf("missing header row")
	ErrFieldCount    = fmt.Errorf("invalid field count")
	ErrTestSize      = fmt.Errorf("test size must be between 0 and 1")
)
