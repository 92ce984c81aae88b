package catalog

import "sort"

// FacetValue is one selectable filter value and how many tools carry it.
type FacetValue struct {
	Name  string `json:"name" xml:"name,attr"`
	Count int    `json:"count" xml:"count,attr"`
}

// Facets lists the values a user can pick in each filter dimension.
type Facets struct {
	Categories   []FacetValue `json:"categories"`
	Languages    []FacetValue `json:"languages"`
	Technologies []FacetValue `json:"technologies"`
	Paid         int          `json:"paid"`
	Free         int          `json:"free"`
	Unpriced     int          `json:"unpriced"`
	Owned        int          `json:"asyncapiOwned"`
}

// CollectFacets derives the filter vocabulary from a catalog.
// Categories keep catalog order; languages and technologies are sorted by name.
func CollectFacets(c *Catalog) Facets {
	var f Facets
	languages := make(map[string]int)
	technologies := make(map[string]int)

	for _, cat := range c.Categories() {
		f.Categories = append(f.Categories, FacetValue{Name: cat.Key, Count: len(cat.Entries)})
		for _, e := range cat.Entries {
			if name := e.Filters.LanguageName(); name != "" {
				languages[name]++
			}
			for _, tech := range e.Filters.TechnologyNames() {
				technologies[tech]++
			}
			switch v, known := e.Filters.Commercial(); {
			case !known:
				f.Unpriced++
			case v:
				f.Paid++
			default:
				f.Free++
			}
			if e.Filters.IsAsyncAPIOwner {
				f.Owned++
			}
		}
	}

	f.Languages = sortedFacet(languages)
	f.Technologies = sortedFacet(technologies)
	return f
}

func sortedFacet(counts map[string]int) []FacetValue {
	out := make([]FacetValue, 0, len(counts))
	for name, n := range counts {
		out = append(out, FacetValue{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
