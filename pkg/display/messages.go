package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/toolcatalog/pkg/constants"
)

// PrintWarnings prints warning messages to the writer.
//
// Formats each warning on its own line with a warning icon prefix.
// Does nothing if warnings slice is empty.
// Prints a blank line before the warnings for separation.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - warnings: Slice of warning messages
//
// Example output:
//
//	<blank line>
//	⚠️ Category 'ides' is not in the catalog and was ignored
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	PrintWarningsInline(w, warnings)
}

// PrintWarningsInline prints warning messages without a leading blank line.
func PrintWarningsInline(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// PrintNoResults prints the message shown when no tool matches the filters.
func PrintNoResults(w io.Writer) {
	_, _ = fmt.Fprintln(w, constants.NoResultsMessage)
}

// Summary holds the counts of one filter pass.
type Summary struct {
	// MatchedTools is the number of tools that passed every filter.
	MatchedTools int

	// TotalTools is the number of tools in the catalog.
	TotalTools int

	// MatchedCategories is the number of categories with at least one match.
	MatchedCategories int

	// TotalCategories is the number of categories considered.
	TotalCategories int
}

// PrintSummary prints a one-line summary of a filter pass.
//
// Example output:
//
//	Showing 3 of 11 tools in 2 of 4 categories
func PrintSummary(w io.Writer, summary Summary) {
	_, _ = fmt.Fprintf(w, "Showing %d of %d %s in %d of %d %s\n",
		summary.MatchedTools, summary.TotalTools, plural(summary.TotalTools, "tool", "tools"),
		summary.MatchedCategories, summary.TotalCategories, plural(summary.TotalCategories, "category", "categories"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// WarningCollector captures warnings for deferred output.
//
// Implements io.Writer so it can be used as a warning sink.
// Warnings are collected and can be printed later using Messages().
type WarningCollector struct {
	messages []string
}

// Write implements io.Writer for capturing warning messages.
//
// Splits input on newlines and stores non-empty trimmed lines.
func (c *WarningCollector) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns a copy of all collected warning messages.
func (c *WarningCollector) Messages() []string {
	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Reset clears all collected messages.
func (c *WarningCollector) Reset() {
	c.messages = nil
}

// NewWarningCollector creates a new WarningCollector.
//
// Example:
//
//	collector := display.NewWarningCollector()
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
//	// ... operations that may produce warnings ...
//	display.PrintWarnings(os.Stderr, collector.Messages())
func NewWarningCollector() *WarningCollector {
	return &WarningCollector{}
}
