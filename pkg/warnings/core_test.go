package warnings

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSetWarningWriterRestoresAndCaptures tests the behavior of SetWarningWriter.
//
// It verifies:
//   - Original writer is restored after calling restore function
//   - Warning messages are captured by the new writer
//   - nil writer defaults to os.Stderr
func TestSetWarningWriterRestoresAndCaptures(t *testing.T) {
	original := WarningWriter()

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	Warnf("test message")
	restore()

	assert.Equal(t, original, WarningWriter())
	assert.Equal(t, "test message\n", buf.String())

	restore = SetWarningWriter(nil)
	assert.Equal(t, os.Stderr, WarningWriter())
	restore()
}

// TestDomainWarnings tests the catalog-specific warning helpers.
func TestDomainWarnings(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	defer restore()

	UnknownCategories([]string{"cli", "ghosts"})
	UnknownPaidMode("cheap")

	out := buf.String()
	assert.Contains(t, out, "Category 'cli' is not in the catalog and was ignored\n")
	assert.Contains(t, out, "Category 'ghosts'")
	assert.Contains(t, out, "Unknown pricing filter 'cheap'")
}
