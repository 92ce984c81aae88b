package filtering

import (
	"github.com/ajxudir/toolcatalog/pkg/catalog"
)

// CatalogFilter defines the interface for filtering a catalog.
//
// This interface enables testing code that depends on catalog filtering
// by allowing mock implementations to be substituted.
//
// Example:
//
//	type mockFilter struct {
//	    result filtering.Result
//	}
//	func (m *mockFilter) Filter(c *catalog.Catalog) filtering.Result {
//	    return m.result
//	}
type CatalogFilter interface {
	// Filter applies filtering logic to a catalog.
	//
	// Parameters:
	//   - c: Catalog to filter
	//
	// Returns:
	//   - Result: Filtered view
	Filter(c *catalog.Catalog) Result
}

// StateFilter is an adapter that implements CatalogFilter using a FilterState.
//
// Example:
//
//	state := filtering.FromFlags("", "Go", "", "", "free", false)
//	filter := &filtering.StateFilter{State: state}
//	result := filter.Filter(cat)
type StateFilter struct {
	State FilterState
}

// Filter applies the state-based filtering to the catalog.
func (f *StateFilter) Filter(c *catalog.Catalog) Result {
	return ComputeFilteredCatalog(c, f.State)
}

// Verify that StateFilter implements the CatalogFilter interface.
var _ CatalogFilter = (*StateFilter)(nil)
