package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/filtering"
	"github.com/ajxudir/toolcatalog/pkg/testutil"
)

func sampleResult(t *testing.T, state filtering.FilterState) *FilterResult {
	t.Helper()
	c := testutil.SampleCatalog()
	c.Source = "sample"
	return NewFilterResult(c, state, filtering.ComputeFilteredCatalog(c, state))
}

// TestParseFormat tests format parsing.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" csv ", FormatCSV, false},
		{"XmL", FormatXML, false},
		{"yaml", FormatTable, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.True(t, IsValidFormat("Csv"))
	assert.False(t, IsValidFormat("yaml"))
	assert.True(t, IsStructuredFormat(FormatXML))
	assert.False(t, IsStructuredFormat(FormatTable))
}

// TestNewFilterResult tests conversion of an engine result.
//
// It verifies:
//   - Summary counts reflect matched and total tools
//   - Empty categories are kept with zero count
//   - Tool fields are flattened
func TestNewFilterResult(t *testing.T) {
	r := sampleResult(t, filtering.FilterState{Languages: []string{"Java", "Go"}, IsPaid: filtering.PaidFree})

	assert.Equal(t, "sample", r.Summary.Source)
	assert.Equal(t, 3, r.Summary.TotalCategories)
	assert.Equal(t, 1, r.Summary.MatchedCategories)
	assert.Equal(t, 7, r.Summary.TotalTools)
	assert.Equal(t, 1, r.Summary.MatchedTools)
	assert.True(t, r.Summary.AnyResults)
	assert.Equal(t, []string{"Java", "Go"}, r.Summary.Filters.Languages)
	assert.Equal(t, "free", r.Summary.Filters.Paid)

	require.Len(t, r.Categories, 3)
	assert.Equal(t, "APIs", r.Categories[0].Key)
	assert.Equal(t, 1, r.Categories[0].Count)
	assert.Equal(t, "Microcks", r.Categories[0].Tools[0].Title)
	assert.Equal(t, "Java", r.Categories[0].Tools[0].Language)
	assert.Equal(t, CommercialFree, r.Categories[0].Tools[0].Commercial)
	assert.Equal(t, 0, r.Categories[1].Count)
	assert.NotNil(t, r.Categories[1].Tools)
}

// TestCommercialLabel tests the commercial flag labels.
func TestCommercialLabel(t *testing.T) {
	assert.Equal(t, CommercialPaid, CommercialLabel(catalog.Filters{HasCommercial: catalog.Bool(true)}))
	assert.Equal(t, CommercialFree, CommercialLabel(catalog.Filters{HasCommercial: catalog.Bool(false)}))
	assert.Equal(t, CommercialUnknown, CommercialLabel(catalog.Filters{}))
}

// TestWriteFilterResultJSON tests JSON output.
//
// It verifies:
//   - Categories are an object in catalog order
//   - Empty categories have an empty tools list
//   - HTML characters are not escaped
func TestWriteFilterResultJSON(t *testing.T) {
	c := catalog.New(
		testutil.NewCategory("Zeta", testutil.NewEntry("<Z> & co").Free()),
		testutil.NewCategory("Alpha"),
	)
	state := filtering.FilterState{}
	result := NewFilterResult(c, state, filtering.ComputeFilteredCatalog(c, state))

	var buf bytes.Buffer
	require.NoError(t, WriteFilterResult(&buf, FormatJSON, result))
	out := buf.String()

	assert.Less(t, strings.Index(out, `"Zeta"`), strings.Index(out, `"Alpha"`))
	assert.Contains(t, out, `"<Z> & co"`)
	assert.Contains(t, out, `"tools":[]`)
	assert.Contains(t, out, `"any_results":true`)
	assert.NotContains(t, out, "warnings")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	cats := decoded["categories"].(map[string]interface{})
	assert.Len(t, cats, 2)
}

// TestWriteFilterResultJSONNoResults tests the structured no-results outcome.
func TestWriteFilterResultJSONNoResults(t *testing.T) {
	result := sampleResult(t, filtering.FilterState{Languages: []string{"Rust"}})
	result.Warnings = []string{"careful"}

	var buf bytes.Buffer
	require.NoError(t, WriteFilterResult(&buf, FormatJSON, result))
	assert.Contains(t, buf.String(), `"any_results":false`)
	assert.Contains(t, buf.String(), `"warnings":["careful"]`)
}

// TestWriteFilterResultCSV tests CSV output.
func TestWriteFilterResultCSV(t *testing.T) {
	result := sampleResult(t, filtering.FilterState{Technologies: []string{"Node.js"}})

	var buf bytes.Buffer
	require.NoError(t, WriteFilterResult(&buf, FormatCSV, result))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "CATEGORY", records[0][0])
	assert.Equal(t, []string{"APIs", "AsyncAPI Studio", "TypeScript", "React JS;Node.js", "true", "free", "", "", ""}, records[1])
	assert.Equal(t, "Modelina", records[3][1])
}

// TestWriteFilterResultXML tests XML output.
func TestWriteFilterResultXML(t *testing.T) {
	result := sampleResult(t, filtering.FilterState{SearchName: "parser"})

	var buf bytes.Buffer
	require.NoError(t, WriteFilterResult(&buf, FormatXML, result))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<filterResult>")
	assert.Contains(t, out, `<category key="Validators">`)
	assert.Contains(t, out, "<title>Parser Go</title>")
	assert.Contains(t, out, "<commercial>unknown</commercial>")
	assert.Contains(t, out, "<search>parser</search>")
}

// TestWriteFilterResultUnsupported tests the table format error.
func TestWriteFilterResultUnsupported(t *testing.T) {
	err := WriteFilterResult(&bytes.Buffer{}, FormatTable, &FilterResult{})
	assert.Error(t, err)
	err = WriteFacetsResult(&bytes.Buffer{}, FormatTable, &FacetsResult{})
	assert.Error(t, err)
}

// TestWriteFacetsResult tests facets output in every structured format.
func TestWriteFacetsResult(t *testing.T) {
	f := catalog.CollectFacets(testutil.SampleCatalog())

	all := NewFacetsResult("sample", f, "")
	require.NotNil(t, all.Pricing)
	assert.Equal(t, 2, all.Pricing.Paid)
	assert.Equal(t, 4, all.Pricing.Free)
	assert.Equal(t, 1, all.Pricing.Unknown)
	assert.Equal(t, 4, all.Pricing.AsyncAPIOwned)

	langs := NewFacetsResult("sample", f, "languages")
	assert.Nil(t, langs.Pricing)
	assert.Empty(t, langs.Categories)
	assert.Equal(t, "Go", langs.Languages[0].Name)

	var buf bytes.Buffer
	require.NoError(t, WriteFacetsResult(&buf, FormatCSV, all))
	assert.Contains(t, buf.String(), "language,TypeScript,2")
	assert.Contains(t, buf.String(), "pricing,unknown,1")

	buf.Reset()
	require.NoError(t, WriteFacetsResult(&buf, FormatJSON, langs))
	assert.Contains(t, buf.String(), `"languages":[{"name":"Go","count":1}`)

	buf.Reset()
	require.NoError(t, WriteFacetsResult(&buf, FormatXML, langs))
	assert.Contains(t, buf.String(), `<language name="Go" count="1"></language>`)
}

// TestTable tests column sizing, truncation and hidden columns.
func TestTable(t *testing.T) {
	table := NewTable().
		AddColumn("TITLE").
		AddColumnWithMaxWidth("DESCRIPTION", 12).
		AddConditionalColumn("HIDDEN", false)

	table.UpdateWidths("Modelina", "Data models for every language", "x")
	table.UpdateWidths("Studio", "short", "y")

	assert.Equal(t, 3, table.ColumnCount())
	assert.Equal(t, 2, table.VisibleColumnCount())
	assert.Equal(t, 8, table.GetColumnWidth(0))
	assert.Equal(t, 12, table.GetColumnWidth(1))
	assert.Equal(t, 0, table.GetColumnWidth(9))

	assert.Equal(t, "TITLE     DESCRIPTION", table.HeaderRow())
	assert.Equal(t, "--------  ------------", table.SeparatorRow())
	assert.Equal(t, "Modelina  Data mode...", table.FormatRow("Modelina", "Data models for every language", "x"))
	assert.Equal(t, "Studio    short", table.FormatRow("Studio", "short", "y"))

	var buf bytes.Buffer
	table.WithSeparator(" | ").Fprint(&buf)
	assert.Equal(t, "TITLE    | DESCRIPTION\n-------- | ------------\n", buf.String())
}

// TestTableWideRunes tests that CJK text is measured in display cells.
func TestTableWideRunes(t *testing.T) {
	table := NewTable().AddColumn("N")
	table.UpdateWidths("工具")
	assert.Equal(t, 4, table.GetColumnWidth(0))
	assert.Equal(t, "工具", table.FormatRow("工具"))
}

// TestTableLimitLastColumn tests capping a conditional column.
func TestTableLimitLastColumn(t *testing.T) {
	table := NewTable().
		AddColumn("A").
		AddConditionalColumn("NOTES", true).
		LimitLastColumn(6)

	table.UpdateWidths("x", "a long note")
	assert.Equal(t, 6, table.GetColumnWidth(1))
	assert.Equal(t, "x  a l...", table.FormatRow("x", "a long note"))

	empty := NewTable().LimitLastColumn(3)
	assert.Equal(t, 0, empty.ColumnCount())
}
