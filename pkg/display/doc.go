// Package display renders filter results for people.
//
// Structured formats (json, csv, xml) are written by pkg/output; this
// package covers the table format:
//
//	display.RenderResult(os.Stdout, result, display.RenderOptions{
//	    Styled: display.StyleEnabled(os.Stdout),
//	})
//
// Category headings are styled with lipgloss when stdout is a terminal.
// When no tool matches, the no-results message is printed instead of tables.
//
// Warnings raised while loading or filtering are captured with a
// WarningCollector and printed after the results:
//
//	collector := display.NewWarningCollector()
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
//	// ... load and filter ...
//	display.PrintWarnings(os.Stderr, collector.Messages())
package display
