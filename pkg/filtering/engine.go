package filtering

import (
	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
)

// CategoryResult is one category of a filtered catalog.
//
// Entries is never nil, so a category with no matches is still present and
// serializes as an empty list.
type CategoryResult struct {
	Key         string
	Name        string
	Description string
	Entries     []catalog.Entry
}

// Result is the filtered view of a catalog.
type Result struct {
	// Categories in selection order (catalog order when none are selected),
	// including those with no matching entry.
	Categories []CategoryResult

	// AnyResults is true when at least one category has an entry.
	AnyResults bool
}

// Get returns the filtered category stored under key.
func (r Result) Get(key string) (CategoryResult, bool) {
	for _, c := range r.Categories {
		if c.Key == key {
			return c, true
		}
	}
	return CategoryResult{}, false
}

// Keys returns the category keys in result order.
func (r Result) Keys() []string {
	keys := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		keys[i] = c.Key
	}
	return keys
}

// Total returns the number of matching entries across all categories.
func (r Result) Total() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Entries)
	}
	return n
}

// ComputeFilteredCatalog filters a catalog by the given state.
//
// It performs the following operations:
//   - Step 1: Narrows to the selected categories (all when none selected;
//     keys not in the catalog are ignored)
//   - Step 2: Keeps each entry that passes every clause (language,
//     technology, search, AsyncAPI owner, paid)
//   - Step 3: Assembles categories in selection order and sets AnyResults
//
// The catalog is not modified. Entries come from catalog.Get, which returns
// deep copies, so the result shares no pointers or slices with it.
// Entries keep their catalog order within each category.
//
// Parameters:
//   - c: Source catalog; nil yields an empty result
//   - s: Filter state; normalized before use
//
// Returns:
//   - Result: Filtered categories and the any-results flag
func ComputeFilteredCatalog(c *catalog.Catalog, s FilterState) Result {
	s = s.Normalize()
	p := compile(s)
	debug := verbose.IsEnabled()

	keys := c.Keys()
	if len(s.Categories) > 0 {
		keys = narrowCategories(c, s.Categories)
	}

	result := Result{Categories: make([]CategoryResult, 0, len(keys))}
	for _, key := range keys {
		cat, _ := c.Get(key)
		entries := make([]catalog.Entry, 0, len(cat.Entries))
		for _, e := range cat.Entries {
			if clause := p.reject(e); clause != "" {
				if debug {
					verbose.EntryFiltered(key, e.Title, clause)
				}
				continue
			}
			entries = append(entries, e)
		}

		if len(entries) > 0 {
			result.AnyResults = true
		}
		result.Categories = append(result.Categories, CategoryResult{
			Key:         cat.Key,
			Name:        cat.DisplayName(),
			Description: cat.Description,
			Entries:     entries,
		})
	}
	return result
}

// narrowCategories keeps selected keys the catalog has, in selection order.
// selected must already be deduplicated.
func narrowCategories(c *catalog.Catalog, selected []string) []string {
	var keys []string
	for _, k := range selected {
		if c.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// UnknownCategories returns selected category keys the catalog does not have.
func UnknownCategories(c *catalog.Catalog, selected []string) []string {
	var unknown []string
	for _, k := range selected {
		if !c.Has(k) {
			unknown = append(unknown, k)
		}
	}
	return unknown
}
