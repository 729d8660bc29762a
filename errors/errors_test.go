package errors_test

import (
	"fmt"
	"io"
	"runtime"
	"testing"

	stderrors "errors"

	pipelineerrors "ml-pipeline/errors"

	"github.com/stretchr/testify/assert"
)

// captureHere wraps err and reports the file and line of the Capture call
// so tests can assert on the exact rendered template.
func captureHere(err error) (error, string, int) {
	wrapped := pipelineerrors.Capture(err)
	_, file, line, _ := runtime.Caller(0)
	return wrapped, file, line - 1
}

func TestCaptureTemplate(t *testing.T) {
	underlying := fmt.Errorf("read artifacts/data.csv: no such file")
	wrapped, file, line := captureHere(underlying)

	expected := fmt.Sprintf(
		"Error occurred in script [%s] line number [%d] error message [%s]",
		file, line, underlying.Error(),
	)
	assert.Equal(t, expected, wrapped.Error())
}

func TestCaptureIdempotentRendering(t *testing.T) {
	wrapped := pipelineerrors.Capture(io.ErrUnexpectedEOF)

	first := wrapped.Error()
	second := wrapped.Error()
	assert.Equal(t, first, second)
}

func TestCaptureNilReturnsNil(t *testing.T) {
	assert.Nil(t, pipelineerrors.Capture(nil))
}

func TestCaptureGuardsAgainstDoubleWrap(t *testing.T) {
	inner, innerFile, innerLine := captureHere(fmt.Errorf("split failed"))

	// A second Capture on the way up must not overwrite the original site.
	outer := pipelineerrors.Capture(inner)

	assert.Same(t, inner, outer)
	oe, ok := outer.(*pipelineerrors.OperationError)
	assert.True(t, ok)
	assert.Equal(t, innerFile, oe.Filename())
	assert.Equal(t, innerLine, oe.LineNumber())
}

func TestCaptureUnwrapsToUnderlying(t *testing.T) {
	wrapped := pipelineerrors.Capture(fmt.Errorf("load: %w", pipelineerrors.ErrEmptyDataset))

	assert.True(t, stderrors.Is(wrapped, pipelineerrors.ErrEmptyDataset))
}

func TestCaptureDivisionByZero(t *testing.T) {
	divide := func(a, b int) (result int, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = pipelineerrors.Capture(fmt.Errorf("%v", r))
			}
		}()
		result = a / b
		return result, nil
	}

	_, err := divide(1, 0)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error message [runtime error: integer divide by zero]")
	assert.Contains(t, err.Error(), "line number [")
	assert.Contains(t, err.Error(), "errors_test.go")
}

func TestRowError(t *testing.T) {
	tests := map[string]struct {
		rowErr   *pipelineerrors.RowError
		contains []string
		sentinel error
	}{
		"FieldCount": {
			rowErr: &pipelineerrors.RowError{
				Line:   4,
				Record: []string{"math", "72"},
				Err:    pipelineerrors.ErrFieldCount,
			},
			contains: []string{"line 4", "invalid field count", "math"},
			sentinel: pipelineerrors.ErrFieldCount,
		},
		"WrappedCause": {
			rowErr: &pipelineerrors.RowError{
				Line:   9,
				Record: []string{"reading", "abc"},
				Err:    fmt.Errorf("%w: column 1", pipelineerrors.ErrFieldCount),
			},
			contains: []string{"line 9", "column 1"},
			sentinel: pipelineerrors.ErrFieldCount,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for _, want := range tc.contains {
				assert.Contains(t, tc.rowErr.Error(), want)
			}
			assert.True(t, stderrors.Is(tc.rowErr, tc.sentinel))
		})
	}
}
