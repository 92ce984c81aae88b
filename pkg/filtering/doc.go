// Package filtering derives the displayed subset of a tool catalog from the
// user's current filter selections.
//
// Computing a result:
//
//	state := filtering.FromFlags("studio", "TypeScript", "", "", "free", false)
//	result := filtering.ComputeFilteredCatalog(cat, state)
//	if !result.AnyResults {
//	    fmt.Println(constants.NoResultsMessage)
//	}
//
// ComputeFilteredCatalog is a pure function of its two inputs. The catalog
// is never modified and the result owns fresh slices.
//
// Keeping a result current:
//
// A Session owns the filter state and recomputes synchronously whenever a
// setter changes it:
//
//	s := filtering.NewSession(cat, filtering.FilterState{})
//	s.ToggleLanguage("Go")
//	s.SetPaid(filtering.PaidFree)
//	render(s.Result())
package filtering
