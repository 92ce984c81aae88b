package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"

	"github.com/iancoleman/orderedmap"
)

// Commercial flag values used in output.
const (
	CommercialPaid    = "paid"
	CommercialFree    = "free"
	CommercialUnknown = "unknown"
)

// FilterResult represents the output data for the list command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Counts and the applied filters
//   - Categories: Filtered categories in result order, including empty ones
//   - Warnings: Warning messages generated while filtering (omitted if empty)
type FilterResult struct {
	XMLName    xml.Name         `json:"-" xml:"filterResult"`
	Summary    FilterSummary    `json:"summary" xml:"summary"`
	Categories []CategoryOutput `json:"categories" xml:"categories>category"`
	Warnings   []string         `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// FilterSummary holds counts for a filter pass.
//
// Fields:
//   - Source: Catalog source (file path, merged description, or "embedded")
//   - TotalCategories: Categories considered after category narrowing
//   - MatchedCategories: Categories with at least one matching tool
//   - TotalTools: Tools in the whole catalog
//   - MatchedTools: Tools that passed every filter
//   - AnyResults: Whether any tool matched
//   - Filters: The normalized filter state that produced the result
type FilterSummary struct {
	Source            string         `json:"source" xml:"source"`
	TotalCategories   int            `json:"total_categories" xml:"totalCategories"`
	MatchedCategories int            `json:"matched_categories" xml:"matchedCategories"`
	TotalTools        int            `json:"total_tools" xml:"totalTools"`
	MatchedTools      int            `json:"matched_tools" xml:"matchedTools"`
	AnyResults        bool           `json:"any_results" xml:"anyResults"`
	Filters           AppliedFilters `json:"filters" xml:"filters"`
}

// AppliedFilters echoes the filter selections in output.
type AppliedFilters struct {
	Search        string   `json:"search,omitempty" xml:"search,omitempty"`
	Languages     []string `json:"languages,omitempty" xml:"languages>language,omitempty"`
	Technologies  []string `json:"technologies,omitempty" xml:"technologies>technology,omitempty"`
	Categories    []string `json:"categories,omitempty" xml:"categories>category,omitempty"`
	Paid          string   `json:"paid" xml:"paid"`
	AsyncAPIOwner bool     `json:"asyncapi_owner" xml:"asyncapiOwner"`
}

// CategoryOutput is one category of a filter result.
type CategoryOutput struct {
	Key         string       `json:"-" xml:"key,attr"`
	Name        string       `json:"name" xml:"name"`
	Description string       `json:"description,omitempty" xml:"description,omitempty"`
	Count       int          `json:"count" xml:"count"`
	Tools       []ToolOutput `json:"tools" xml:"tools>tool"`
}

// ToolOutput is one matching tool.
//
// Commercial is "paid", "free" or "unknown" when the catalog does not say.
type ToolOutput struct {
	Category      string   `json:"-" xml:"-"`
	Title         string   `json:"title" xml:"title"`
	Description   string   `json:"description,omitempty" xml:"description,omitempty"`
	Language      string   `json:"language,omitempty" xml:"language,omitempty"`
	Technologies  []string `json:"technologies,omitempty" xml:"technologies>technology,omitempty"`
	AsyncAPIOwner bool     `json:"asyncapi_owner" xml:"asyncapiOwner"`
	Commercial    string   `json:"commercial" xml:"commercial"`
	Website       string   `json:"website,omitempty" xml:"website,omitempty"`
	Docs          string   `json:"docs,omitempty" xml:"docs,omitempty"`
	Repo          string   `json:"repo,omitempty" xml:"repo,omitempty"`
}

// MarshalJSON encodes categories as an object keyed by category key, in
// result order, so consumers can address a category directly.
func (r FilterResult) MarshalJSON() ([]byte, error) {
	categories := orderedmap.New()
	categories.SetEscapeHTML(false)
	for _, c := range r.Categories {
		tools := c.Tools
		if tools == nil {
			tools = []ToolOutput{}
		}
		c.Tools = tools
		categories.Set(c.Key, c)
	}

	root := orderedmap.New()
	root.SetEscapeHTML(false)
	root.Set("summary", r.Summary)
	root.Set("categories", categories)
	if len(r.Warnings) > 0 {
		root.Set("warnings", r.Warnings)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// FacetsResult represents the output data for the facets command.
type FacetsResult struct {
	XMLName      xml.Name     `json:"-" xml:"facetsResult"`
	Source       string       `json:"source" xml:"source"`
	Categories   []FacetCount `json:"categories,omitempty" xml:"categories>category,omitempty"`
	Languages    []FacetCount `json:"languages,omitempty" xml:"languages>language,omitempty"`
	Technologies []FacetCount `json:"technologies,omitempty" xml:"technologies>technology,omitempty"`
	Pricing      *PricingMix  `json:"pricing,omitempty" xml:"pricing,omitempty"`
}

// FacetCount is one filter value with the number of tools carrying it.
type FacetCount struct {
	Name  string `json:"name" xml:"name,attr"`
	Count int    `json:"count" xml:"count,attr"`
}

// PricingMix counts tools by commercial flag and ownership.
type PricingMix struct {
	Paid          int `json:"paid" xml:"paid"`
	Free          int `json:"free" xml:"free"`
	Unknown       int `json:"unknown" xml:"unknown"`
	AsyncAPIOwned int `json:"asyncapi_owned" xml:"asyncapiOwned"`
}
