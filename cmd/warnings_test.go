package cmd

import (
	"testing"

	"github.com/ajxudir/toolcatalog/pkg/display"
	"github.com/ajxudir/toolcatalog/pkg/warnings"
)

// captureWarnings routes warnings into a collector until the returned
// function is called; it returns the collected messages.
func captureWarnings(t *testing.T) func() []string {
	t.Helper()
	collector := display.NewWarningCollector()
	restore := warnings.SetWarningWriter(collector)
	t.Cleanup(restore)
	return func() []string {
		restore()
		return collector.Messages()
	}
}
