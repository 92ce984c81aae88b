package output

import (
	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/filtering"
)

// NewFilterResult converts an engine result into its output form.
//
// Parameters:
//   - c: Catalog the result was computed from
//   - state: Filter state that produced r
//   - r: Engine result
//
// Returns:
//   - *FilterResult: Output data with counts; every category of r is kept
func NewFilterResult(c *catalog.Catalog, state filtering.FilterState, r filtering.Result) *FilterResult {
	state = state.Normalize()
	out := &FilterResult{
		Summary: FilterSummary{
			Source:          c.Source,
			TotalCategories: len(r.Categories),
			TotalTools:      c.EntryCount(),
			MatchedTools:    r.Total(),
			AnyResults:      r.AnyResults,
			Filters: AppliedFilters{
				Search:        state.SearchName,
				Languages:     state.Languages,
				Technologies:  state.Technologies,
				Categories:    state.Categories,
				Paid:          string(state.IsPaid),
				AsyncAPIOwner: state.IsAsyncAPIOwner,
			},
		},
		Categories: make([]CategoryOutput, 0, len(r.Categories)),
	}

	for _, cat := range r.Categories {
		if len(cat.Entries) > 0 {
			out.Summary.MatchedCategories++
		}
		co := CategoryOutput{
			Key:         cat.Key,
			Name:        cat.Name,
			Description: cat.Description,
			Count:       len(cat.Entries),
			Tools:       make([]ToolOutput, 0, len(cat.Entries)),
		}
		for _, e := range cat.Entries {
			co.Tools = append(co.Tools, NewToolOutput(e))
		}
		out.Categories = append(out.Categories, co)
	}
	return out
}

// NewToolOutput converts a catalog entry into its output form.
func NewToolOutput(e catalog.Entry) ToolOutput {
	return ToolOutput{
		Category:      e.Category,
		Title:         e.Title,
		Description:   e.Description,
		Language:      e.Filters.LanguageName(),
		Technologies:  e.Filters.TechnologyNames(),
		AsyncAPIOwner: e.Filters.IsAsyncAPIOwner,
		Commercial:    CommercialLabel(e.Filters),
		Website:       e.Links.WebsiteURL,
		Docs:          e.Links.DocsURL,
		Repo:          e.Links.RepoURL,
	}
}

// CommercialLabel returns "paid", "free" or "unknown" for an entry's filters.
func CommercialLabel(f catalog.Filters) string {
	v, known := f.Commercial()
	switch {
	case !known:
		return CommercialUnknown
	case v:
		return CommercialPaid
	default:
		return CommercialFree
	}
}

// NewFacetsResult converts catalog facets into output form.
//
// Parameters:
//   - source: Catalog source
//   - f: Facets collected from the catalog
//   - only: "categories", "languages", "technologies", or "" for everything
//
// Returns:
//   - *FacetsResult: Selected facet lists; pricing is included only when only is ""
func NewFacetsResult(source string, f catalog.Facets, only string) *FacetsResult {
	out := &FacetsResult{Source: source}
	if only == "" || only == "categories" {
		out.Categories = facetCounts(f.Categories)
	}
	if only == "" || only == "languages" {
		out.Languages = facetCounts(f.Languages)
	}
	if only == "" || only == "technologies" {
		out.Technologies = facetCounts(f.Technologies)
	}
	if only == "" {
		out.Pricing = &PricingMix{
			Paid:          f.Paid,
			Free:          f.Free,
			Unknown:       f.Unpriced,
			AsyncAPIOwned: f.Owned,
		}
	}
	return out
}

func facetCounts(values []catalog.FacetValue) []FacetCount {
	out := make([]FacetCount, 0, len(values))
	for _, v := range values {
		out = append(out, FacetCount{Name: v.Name, Count: v.Count})
	}
	return out
}
