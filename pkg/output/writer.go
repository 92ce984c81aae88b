package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteFilterResult writes list results in the specified format.
//
// It performs the following operations:
//   - Step 1: Creates a formatter for the requested format
//   - Step 2: Writes the filter result using format-specific logic
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Filter result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteFilterResult(w io.Writer, format Format, result *FilterResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeFilterCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeFilterCSV writes one row per matching tool.
//
// Categories without matches produce no rows.
func writeFilterCSV(f *Formatter, result *FilterResult) error {
	headers := []string{"CATEGORY", "TITLE", "LANGUAGE", "TECHNOLOGIES", "ASYNCAPI_OWNER", "COMMERCIAL", "WEBSITE", "DOCS", "REPO"}
	rows := make([][]string, 0, result.Summary.MatchedTools)
	for _, cat := range result.Categories {
		for _, tool := range cat.Tools {
			rows = append(rows, []string{
				cat.Key,
				tool.Title,
				tool.Language,
				strings.Join(tool.Technologies, ";"),
				strconv.FormatBool(tool.AsyncAPIOwner),
				tool.Commercial,
				tool.Website,
				tool.Docs,
				tool.Repo,
			})
		}
	}
	return f.WriteCSV(headers, rows)
}

// WriteFacetsResult writes facets results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Facets data to write
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteFacetsResult(w io.Writer, format Format, result *FacetsResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeFacetsCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeFacetsCSV writes one row per facet value.
func writeFacetsCSV(f *Formatter, result *FacetsResult) error {
	headers := []string{"FACET", "VALUE", "COUNT"}
	var rows [][]string
	add := func(facet string, values []FacetCount) {
		for _, v := range values {
			rows = append(rows, []string{facet, v.Name, strconv.Itoa(v.Count)})
		}
	}
	add("category", result.Categories)
	add("language", result.Languages)
	add("technology", result.Technologies)
	if result.Pricing != nil {
		add("pricing", []FacetCount{
			{Name: CommercialPaid, Count: result.Pricing.Paid},
			{Name: CommercialFree, Count: result.Pricing.Free},
			{Name: CommercialUnknown, Count: result.Pricing.Unknown},
		})
	}
	return f.WriteCSV(headers, rows)
}
