package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Capturing with no resolvable frame must degrade to placeholders, not panic.
func TestCapturePlaceholderWhenFrameMissing(t *testing.T) {
	oe := capture(fmt.Errorf("no active frame"), 1<<16)

	assert.Equal(t, unknownFile, oe.Filename())
	assert.Equal(t, unknownLine, oe.LineNumber())
	assert.Equal(t,
		"Error occurred in script [unknown] line number [0] error message [no active frame]",
		oe.Error(),
	)
}
