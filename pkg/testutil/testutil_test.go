package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntryBuilder tests the fluent entry builder.
func TestEntryBuilder(t *testing.T) {
	e := NewEntry("tool").
		WithLanguage("Go").
		WithTechnologies("Kafka", "AMQP").
		WithDescription("desc").
		WithRepo("https://example.com/repo").
		Owned().
		Paid().
		Build()

	assert.Equal(t, "tool", e.Title)
	assert.Equal(t, "Go", e.Filters.LanguageName())
	assert.Equal(t, []string{"Kafka", "AMQP"}, e.Filters.TechnologyNames())
	assert.True(t, e.Filters.IsAsyncAPIOwner)
	paid, known := e.Filters.Commercial()
	assert.True(t, known)
	assert.True(t, paid)
	assert.Equal(t, "https://example.com/repo", e.Links.RepoURL)

	_, known = NewEntry("unset").Build().Filters.Commercial()
	assert.False(t, known)
}

// TestSampleCatalog tests the shared fixture layout.
func TestSampleCatalog(t *testing.T) {
	c := SampleCatalog()
	assert.Equal(t, []string{"APIs", "Generators", "Validators"}, c.Keys())
	assert.Equal(t, 7, c.EntryCount())

	apis, ok := c.Get("APIs")
	require.True(t, ok)
	assert.Equal(t, "APIs", apis.Entries[0].Category)
}

// TestCaptureStdout tests stdout capture.
func TestCaptureStdout(t *testing.T) {
	out := CaptureStdout(t, func() {
		fmt.Print("hello stdout")
	})
	assert.Equal(t, "hello stdout", out)
}

// TestCaptureStderr tests stderr capture.
func TestCaptureStderr(t *testing.T) {
	out := CaptureStderr(t, func() {
		fmt.Fprint(os.Stderr, "hello stderr")
	})
	assert.Equal(t, "hello stderr", out)
}

// TestCaptureOutput tests capturing both streams, including output larger than a pipe buffer.
func TestCaptureOutput(t *testing.T) {
	big := strings.Repeat("x", 256*1024)
	stdout, stderr := CaptureOutput(t, func() {
		fmt.Print(big)
		fmt.Fprint(os.Stderr, "err")
	})
	assert.Len(t, stdout, len(big))
	assert.Equal(t, "err", stderr)
}
