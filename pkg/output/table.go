package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/toolcatalog/pkg/utils"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
//   - MaxWidth: Upper bound for Width; longer values are truncated. Zero means unbounded
//   - hidden: Whether this column should be excluded from output
type Column struct {
	Header   string
	Width    int
	MaxWidth int
	hidden   bool
}

// Table provides a flexible table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter with a two-space separator.
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator sets a custom column separator and returns the table.
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn adds a column with the given header and returns the table.
//
// The initial width is set to the display width of the header using
// Unicode-aware width calculation.
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
	})
	return t
}

// AddColumnWithMaxWidth adds a column whose values are truncated past maxWidth.
//
// Parameters:
//   - header: The text to display in the column header
//   - maxWidth: Largest width the column may grow to
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumnWithMaxWidth(header string, maxWidth int) *Table {
	t.columns = append(t.columns, Column{
		Header:   header,
		Width:    utils.DisplayWidth(header),
		MaxWidth: maxWidth,
	})
	return t
}

// AddConditionalColumn adds a column with configurable visibility and returns the table.
//
// This is useful for columns that should only appear when certain data exists,
// such as a DESCRIPTION column that's hidden in compact output.
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: !visible,
	})
	return t
}

// LimitLastColumn caps the width of the most recently added column and returns the table.
func (t *Table) LimitLastColumn(maxWidth int) *Table {
	if n := len(t.columns); n > 0 {
		t.columns[n-1].MaxWidth = maxWidth
	}
	return t
}

// UpdateWidths grows column widths to fit a data row and returns the table.
//
// Widths never exceed a column's MaxWidth.
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i >= len(t.columns) {
			break
		}
		col := &t.columns[i]
		width := utils.DisplayWidth(val)
		if col.MaxWidth > 0 && width > col.MaxWidth {
			width = col.MaxWidth
		}
		if width > col.Width {
			col.Width = width
		}
	}
	return t
}

// HeaderRow returns the formatted header row string.
func (t *Table) HeaderRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, utils.ToWidth(col.Header, col.Width))
		}
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// SeparatorRow returns a separator row with dashes matching column widths.
func (t *Table) SeparatorRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, strings.Repeat("-", col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats a data row with proper padding for each column.
//
// Values for hidden columns must still be passed and are skipped. Values
// wider than a column's MaxWidth are truncated with "...". Missing values
// are treated as empty strings. Trailing padding is removed.
func (t *Table) FormatRow(values ...string) string {
	var parts []string
	for i, col := range t.columns {
		if col.hidden {
			continue
		}
		val := ""
		if i < len(values) {
			val = values[i]
		}
		if col.MaxWidth > 0 && utils.DisplayWidth(val) > col.MaxWidth {
			val = utils.Truncate(val, col.MaxWidth)
		}
		parts = append(parts, utils.ToWidth(val, col.Width))
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// ColumnCount returns the total number of columns including hidden ones.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// VisibleColumnCount returns the number of visible columns.
func (t *Table) VisibleColumnCount() int {
	count := 0
	for _, col := range t.columns {
		if !col.hidden {
			count++
		}
	}
	return count
}

// GetColumnWidth returns the width of a column by index, or 0 when out of range.
func (t *Table) GetColumnWidth(index int) int {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].Width
	}
	return 0
}

// Fprint outputs the table header and separator to the given writer.
//
// Parameters:
//   - w: The writer to output to (e.g., os.Stdout, os.Stderr, or a buffer)
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}
