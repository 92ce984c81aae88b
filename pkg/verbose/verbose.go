// Package verbose provides debug logging with documentation references.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// state returns the writer and enabled flag under a single read lock.
func state() (io.Writer, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return writer, enabled
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if w, on := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
func Info(msg string) {
	if w, on := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
func Infof(format string, args ...any) {
	if w, on := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] "+format+"\n", args...)
	}
}

// DocRef represents a documentation reference for a specific topic.
//
// Fields:
//   - Topic: A human-readable name for the documentation topic
//   - DocPath: The relative path to the documentation file or section
//   - Hint: A brief description of what the documentation covers
type DocRef struct {
	Topic   string
	DocPath string
	Hint    string
}

var docRefs = map[string]DocRef{
	"config": {
		Topic:   "Configuration",
		DocPath: "docs/configuration.md",
		Hint:    "See configuration guide for YAML schema and options",
	},
	"catalog": {
		Topic:   "Catalog Format",
		DocPath: "docs/catalog.md",
		Hint:    "Categories map to {name, description, toolsList}",
	},
	"filters": {
		Topic:   "Filtering",
		DocPath: "docs/filtering.md",
		Hint:    "Clauses are ANDed; multi-select values are ORed",
	},
	"cli": {
		Topic:   "CLI Reference",
		DocPath: "docs/cli.md",
		Hint:    "See all available commands and flags",
	},
}

// WithDocRef prints a verbose message followed by a documentation reference
// when the topic is known.
//
// Parameters:
//   - topic: The documentation topic key (e.g., "config", "catalog", "filters")
//   - message: The main message to print
func WithDocRef(topic, message string) {
	w, on := state()
	if !on {
		return
	}
	_, _ = fmt.Fprintf(w, "[DEBUG] %s\n", message)
	if ref, ok := docRefs[strings.ToLower(topic)]; ok {
		_, _ = fmt.Fprintf(w, "        📖 %s: %s\n", ref.Topic, ref.DocPath)
		_, _ = fmt.Fprintf(w, "        💡 %s\n", ref.Hint)
	}
}

// ConfigLoaded logs which config file was loaded if enabled.
//
// Parameters:
//   - path: The file path to the configuration file that was loaded
func ConfigLoaded(path string) {
	if w, on := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] Config loaded: %s\n", path)
	}
}

// CatalogLoaded logs a loaded catalog source with its size if enabled.
//
// Parameters:
//   - source: File path, or "embedded" for the built-in catalog
//   - categories: Number of categories read
//   - entries: Number of entries read across all categories
func CatalogLoaded(source string, categories, entries int) {
	if w, on := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] Catalog loaded: %s (%d categories, %d tools)\n", source, categories, entries)
	}
}

// EntryFiltered logs when an entry is excluded by a filter clause if enabled.
//
// Parameters:
//   - category: Category key the entry belongs to
//   - title: Entry title
//   - clause: Name of the first clause that rejected the entry
func EntryFiltered(category, title, clause string) {
	if w, on := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] Tool '%s' in '%s' filtered: %s\n", title, category, clause)
	}
}

// Recomputed logs a completed filter pass if enabled.
//
// Parameters:
//   - pass: Sequence number of the pass within the session
//   - matched: Number of entries kept
//   - total: Number of entries scanned
func Recomputed(pass, matched, total int) {
	if w, on := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] Recomputed (pass %d): %d of %d tools match\n", pass, matched, total)
	}
}
