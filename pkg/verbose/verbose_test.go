package verbose

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withBuffer enables verbose output into a fresh buffer for the duration of the test.
func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetWriter(buf)
	Enable()
	t.Cleanup(func() {
		Disable()
		SetWriter(os.Stderr)
	})
	return buf
}

// TestEnableDisable tests the behavior of Enable and Disable functions.
//
// It verifies:
//   - Disable sets enabled state to false
//   - Enable sets enabled state to true
func TestEnableDisable(t *testing.T) {
	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestSetWriter tests the behavior of SetWriter.
//
// It verifies:
//   - Messages are written to the configured writer
//   - nil writer parameter is ignored
func TestSetWriter(t *testing.T) {
	buf := withBuffer(t)

	Printf("test message")
	assert.Contains(t, buf.String(), "[DEBUG] test message")

	SetWriter(nil)
	buf.Reset()
	Printf("another message")
	assert.Contains(t, buf.String(), "[DEBUG] another message")
}

// TestDisabledIsSilent tests that nothing is written while disabled.
func TestDisabledIsSilent(t *testing.T) {
	buf := withBuffer(t)
	Disable()

	Printf("a %d", 1)
	Info("b")
	Infof("c %s", "d")
	WithDocRef("config", "e")
	ConfigLoaded("f")
	CatalogLoaded("g", 1, 2)
	EntryFiltered("h", "i", "j")
	Recomputed(1, 2, 3)

	assert.Empty(t, buf.String())
}

// TestHelpers tests the formatted helper messages.
//
// It verifies:
//   - Each helper includes its identifying values
//   - WithDocRef appends a reference only for known topics
func TestHelpers(t *testing.T) {
	buf := withBuffer(t)

	CatalogLoaded("catalogs/tools.json", 3, 12)
	assert.Contains(t, buf.String(), "catalogs/tools.json (3 categories, 12 tools)")

	buf.Reset()
	EntryFiltered("apis", "AsyncAPI Studio", "language")
	assert.Contains(t, buf.String(), "Tool 'AsyncAPI Studio' in 'apis' filtered: language")

	buf.Reset()
	Recomputed(4, 2, 10)
	assert.Contains(t, buf.String(), "pass 4): 2 of 10 tools match")

	buf.Reset()
	ConfigLoaded(".toolcatalog.yml")
	assert.Contains(t, buf.String(), "Config loaded: .toolcatalog.yml")

	buf.Reset()
	WithDocRef("catalog", "bad catalog")
	assert.Contains(t, buf.String(), "bad catalog")
	assert.Contains(t, buf.String(), "docs/catalog.md")

	buf.Reset()
	WithDocRef("unknown", "plain")
	assert.Equal(t, "[DEBUG] plain\n", buf.String())
}
