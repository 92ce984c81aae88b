package display

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/filtering"
	"github.com/ajxudir/toolcatalog/pkg/output"
	"github.com/ajxudir/toolcatalog/pkg/testutil"
)

func sampleResult(state filtering.FilterState) *output.FilterResult {
	c := testutil.SampleCatalog()
	return output.NewFilterResult(c, state, filtering.ComputeFilteredCatalog(c, state))
}

// TestRenderResultSingleMatch tests the exact table layout for one match.
//
// It verifies:
//   - Only the matching category is printed
//   - The DESCRIPTION column is hidden by default
//   - The summary line counts tools and categories
func TestRenderResultSingleMatch(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, sampleResult(filtering.FilterState{}.WithSearchName("microcks")), RenderOptions{})

	expected := "APIs (1)\n" +
		"TITLE     LANGUAGE  TECHNOLOGIES  PRICING  OWNER\n" +
		"--------  --------  ------------  -------  -----\n" +
		"Microcks  Java      Docker        free\n" +
		"\n" +
		"Showing 1 of 7 tools in 1 of 3 categories\n"
	assert.Equal(t, expected, buf.String())
}

// TestRenderResultNoResults tests the no-results message.
func TestRenderResultNoResults(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, sampleResult(filtering.FilterState{}.WithSearchName("zzz")), RenderOptions{ShowEmpty: true})
	assert.Equal(t, constants.NoResultsMessage+"\n", buf.String())

	buf.Reset()
	RenderResult(&buf, nil, RenderOptions{})
	assert.Equal(t, constants.NoResultsMessage+"\n", buf.String())
}

// TestRenderResultShowEmpty tests that empty categories are printed on request.
//
// It verifies:
//   - Empty categories are hidden by default
//   - ShowEmpty prints them with a placeholder line in catalog order
func TestRenderResultShowEmpty(t *testing.T) {
	state := filtering.FilterState{}.WithLanguages("Java")

	var buf bytes.Buffer
	RenderResult(&buf, sampleResult(state), RenderOptions{})
	assert.NotContains(t, buf.String(), "Generators")

	buf.Reset()
	RenderResult(&buf, sampleResult(state), RenderOptions{ShowEmpty: true})
	out := buf.String()
	assert.Contains(t, out, "Generators (0)\n  no matching tools\n")
	assert.Contains(t, out, "Validators (0)\n  no matching tools\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("APIs")), bytes.Index(buf.Bytes(), []byte("Generators")))
	assert.Contains(t, out, "Showing 2 of 7 tools in 1 of 3 categories")
}

// TestRenderResultDescription tests the optional description column.
func TestRenderResultDescription(t *testing.T) {
	c := catalog.New(testutil.NewCategory("Docs",
		testutil.NewEntry("Viewer").WithDescription("Renders documents").Free(),
	))
	state := filtering.FilterState{}
	result := output.NewFilterResult(c, state, filtering.ComputeFilteredCatalog(c, state))

	var buf bytes.Buffer
	RenderResult(&buf, result, RenderOptions{ShowDescription: true})
	assert.Contains(t, buf.String(), "DESCRIPTION")
	assert.Contains(t, buf.String(), "Renders documents")
	assert.Contains(t, buf.String(), "Showing 1 of 1 tool in 1 of 1 category")
}

// TestToolRow tests cell formatting for a tool.
func TestToolRow(t *testing.T) {
	tests := []struct {
		name     string
		tool     output.ToolOutput
		expected []string
	}{
		{
			name:     "paid owned tool",
			tool:     output.ToolOutput{Title: "A", Language: "Go", Technologies: []string{"Kafka", "Docker"}, Commercial: output.CommercialPaid, AsyncAPIOwner: true},
			expected: []string{"A", "Go", "Kafka, Docker", constants.IconPaid + " paid", constants.IconOwner, ""},
		},
		{
			name:     "untagged tool",
			tool:     output.ToolOutput{Title: "B", Commercial: output.CommercialUnknown, Description: "d"},
			expected: []string{"B", "-", "-", "-", "", "d"},
		},
		{
			name:     "free tool",
			tool:     output.ToolOutput{Title: "C", Commercial: output.CommercialFree},
			expected: []string{"C", "-", "-", "free", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToolRow(tt.tool))
		})
	}
}

// TestRenderFacets tests the facet tables.
//
// It verifies:
//   - Only lists present in the result are printed
//   - Pricing lines follow the tables when present
func TestRenderFacets(t *testing.T) {
	facets := catalog.CollectFacets(testutil.SampleCatalog())

	var buf bytes.Buffer
	RenderFacets(&buf, output.NewFacetsResult("test", facets, "languages"), RenderOptions{})
	expected := "Languages (4)\n" +
		"VALUE       TOOLS\n" +
		"----------  -----\n" +
		"Go          1\n" +
		"Java        2\n" +
		"JavaScript  1\n" +
		"TypeScript  2\n" +
		"\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	RenderFacets(&buf, output.NewFacetsResult("test", facets, ""), RenderOptions{})
	out := buf.String()
	assert.Contains(t, out, "Categories (3)")
	assert.Contains(t, out, "Technologies (")
	assert.Contains(t, out, "Pricing: 2 paid, 4 free, 1 unknown\n")
	assert.Contains(t, out, "AsyncAPI-owned: 4\n")

	buf.Reset()
	RenderFacets(&buf, nil, RenderOptions{})
	assert.Empty(t, buf.String())
}

// TestHeadingStyled tests that styled headings still carry the text.
func TestHeadingStyled(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "APIs (2)", heading(&buf, false, "APIs", 2))
	styled := heading(&buf, true, "APIs", 2)
	assert.Contains(t, styled, "APIs")
	assert.Contains(t, styled, "(2)")
}

// TestStyleEnabled tests terminal detection.
func TestStyleEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, StyleEnabled(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, StyleEnabled(f))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, StyleEnabled(os.Stdout))
}

// TestPrintWarnings tests warning formatting.
func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	PrintWarnings(&buf, nil)
	assert.Empty(t, buf.String())

	PrintWarnings(&buf, []string{"first", "second"})
	assert.Equal(t, "\n"+constants.IconWarn+" first\n"+constants.IconWarn+" second\n", buf.String())

	buf.Reset()
	PrintWarningsInline(&buf, []string{"only"})
	assert.Equal(t, constants.IconWarn+" only\n", buf.String())
}

// TestPrintSummary tests singular and plural wording.
func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, Summary{MatchedTools: 0, TotalTools: 1, MatchedCategories: 0, TotalCategories: 2})
	assert.Equal(t, "Showing 0 of 1 tool in 0 of 2 categories\n", buf.String())
}

// TestWarningCollector tests collecting warnings as an io.Writer.
//
// It verifies:
//   - Lines are split and trimmed
//   - Messages returns a copy
//   - Reset clears the collector
func TestWarningCollector(t *testing.T) {
	c := NewWarningCollector()
	n, err := c.Write([]byte("  one \n\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, []string{"one", "two"}, c.Messages())

	msgs := c.Messages()
	msgs[0] = "changed"
	assert.Equal(t, "one", c.Messages()[0])

	c.Reset()
	assert.Empty(t, c.Messages())
}

// TestNewTableFromSchema tests optional and capped columns.
func TestNewTableFromSchema(t *testing.T) {
	table := NewToolTable(false)
	assert.Equal(t, len(ToolSchema.Columns), table.ColumnCount())
	assert.Equal(t, len(ToolSchema.Columns)-1, table.VisibleColumnCount())

	table = NewToolTable(true)
	assert.Equal(t, len(ToolSchema.Columns), table.VisibleColumnCount())
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	table.UpdateWidths(string(long))
	assert.Equal(t, 40, table.GetColumnWidth(0))
}
