package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/output"
)

// RenderOptions controls table rendering of a filter result.
type RenderOptions struct {
	// ShowEmpty prints categories that have no matching tool.
	ShowEmpty bool

	// ShowDescription adds the DESCRIPTION column.
	ShowDescription bool

	// Styled enables lipgloss styling of headings. See StyleEnabled.
	Styled bool
}

// RenderResult writes a filter result as one table per category.
//
// Categories keep result order. Categories without matches are skipped
// unless ShowEmpty is set. When nothing matched, only the no-results
// message is written.
//
// Parameters:
//   - w: Writer to output to
//   - result: Filter result built by output.NewFilterResult
//   - opts: Rendering options
//
// Example output:
//
//	APIs (1)
//	TITLE     LANGUAGE  TECHNOLOGIES  PRICING  OWNER
//	--------  --------  ------------  -------  -----
//	Microcks  Java      Docker        free
//
//	Showing 1 of 11 tools in 1 of 4 categories
func RenderResult(w io.Writer, result *output.FilterResult, opts RenderOptions) {
	if result == nil || !result.Summary.AnyResults {
		PrintNoResults(w)
		return
	}

	for _, cat := range result.Categories {
		if len(cat.Tools) == 0 && !opts.ShowEmpty {
			continue
		}
		_, _ = fmt.Fprintln(w, heading(w, opts.Styled, categoryTitle(cat), len(cat.Tools)))
		if len(cat.Tools) == 0 {
			_, _ = fmt.Fprintln(w, "  no matching tools")
			_, _ = fmt.Fprintln(w)
			continue
		}

		table := NewToolTable(opts.ShowDescription)
		rows := make([][]string, 0, len(cat.Tools))
		for _, tool := range cat.Tools {
			row := ToolRow(tool)
			rows = append(rows, row)
			table.UpdateWidths(row...)
		}
		table.Fprint(w)
		for _, row := range rows {
			_, _ = fmt.Fprintln(w, table.FormatRow(row...))
		}
		_, _ = fmt.Fprintln(w)
	}

	PrintSummary(w, Summary{
		MatchedTools:      result.Summary.MatchedTools,
		TotalTools:        result.Summary.TotalTools,
		MatchedCategories: result.Summary.MatchedCategories,
		TotalCategories:   result.Summary.TotalCategories,
	})
}

// ToolRow returns the table cells for one tool, in ToolSchema column order.
func ToolRow(tool output.ToolOutput) []string {
	return []string{
		tool.Title,
		SafeValue(tool.Language),
		SafeValue(strings.Join(tool.Technologies, ", ")),
		FormatPricing(tool.Commercial),
		FormatOwner(tool.AsyncAPIOwner),
		tool.Description,
	}
}

// FormatPricing returns the PRICING cell for a commercial label.
func FormatPricing(label string) string {
	switch label {
	case output.CommercialPaid:
		return constants.IconPaid + " paid"
	case output.CommercialFree:
		return "free"
	default:
		return "-"
	}
}

// FormatOwner returns the OWNER cell.
func FormatOwner(owned bool) string {
	if owned {
		return constants.IconOwner
	}
	return ""
}

// SafeValue returns "-" for an empty value.
func SafeValue(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func categoryTitle(cat output.CategoryOutput) string {
	if cat.Name != "" {
		return cat.Name
	}
	return cat.Key
}

// RenderFacets writes each facet list as its own table.
//
// Only the lists present in result are written.
func RenderFacets(w io.Writer, result *output.FacetsResult, opts RenderOptions) {
	if result == nil {
		return
	}

	sections := []struct {
		title  string
		values []output.FacetCount
	}{
		{"Categories", result.Categories},
		{"Languages", result.Languages},
		{"Technologies", result.Technologies},
	}
	for _, section := range sections {
		if section.values == nil {
			continue
		}
		_, _ = fmt.Fprintln(w, heading(w, opts.Styled, section.title, len(section.values)))
		table := NewFacetTable()
		for _, v := range section.values {
			table.UpdateWidths(v.Name, fmt.Sprint(v.Count))
		}
		table.Fprint(w)
		for _, v := range section.values {
			_, _ = fmt.Fprintln(w, table.FormatRow(v.Name, fmt.Sprint(v.Count)))
		}
		_, _ = fmt.Fprintln(w)
	}

	if p := result.Pricing; p != nil {
		_, _ = fmt.Fprintf(w, "Pricing: %d paid, %d free, %d unknown\n", p.Paid, p.Free, p.Unknown)
		_, _ = fmt.Fprintf(w, "AsyncAPI-owned: %d\n", p.AsyncAPIOwned)
	}
}
