// Package warnings routes non-fatal notices (unknown filter values, ignored
// catalog fields) to a swappable writer so commands can collect them and
// print them after the results.
package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning line to the configured warning writer.
// A trailing newline is added when the format does not end with one.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	msg := fmt.Sprintf(format, args...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	_, _ = io.WriteString(w, msg)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): Restores the previous writer when called
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}

// UnknownCategories reports selected category keys that the catalog does not contain.
// The filter ignores them; the warning only tells the user why they had no effect.
func UnknownCategories(keys []string) {
	for _, k := range keys {
		Warnf("Category '%s' is not in the catalog and was ignored", k)
	}
}

// UnknownPaidMode reports a pricing filter value that fell back to "all".
func UnknownPaidMode(value string) {
	Warnf("Unknown pricing filter '%s', showing paid and free tools", value)
}
