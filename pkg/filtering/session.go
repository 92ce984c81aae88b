package filtering

import (
	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/utils"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
)

// Session owns the current filter state and keeps its result up to date.
//
// Every setter normalizes the new state and, when it differs from the
// current one, recomputes the result before returning. Setting a value
// that is already in effect does nothing. Callers read Result after a
// change or register OnChange to be told about each recomputation.
//
// A Session is not safe for concurrent use.
type Session struct {
	// OnChange, when set, is called after every recomputation.
	OnChange func(state FilterState, result Result)

	catalog *catalog.Catalog
	state   FilterState
	result  Result
	passes  int
}

// NewSession creates a session and computes the initial result.
//
// Parameters:
//   - c: Catalog to filter; read-only for the life of the session
//   - initial: Starting filter state
//
// Returns:
//   - *Session: Session with Passes() == 1
func NewSession(c *catalog.Catalog, initial FilterState) *Session {
	s := &Session{catalog: c, state: initial.Normalize()}
	s.recompute()
	return s
}

// Catalog returns the catalog being filtered.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// State returns the current filter state.
func (s *Session) State() FilterState { return s.state }

// Result returns the result for the current state.
func (s *Session) Result() Result { return s.result }

// Passes returns how many times the result has been computed.
func (s *Session) Passes() int { return s.passes }

// Apply replaces the whole filter state.
//
// Returns:
//   - bool: true when the state changed and the result was recomputed
func (s *Session) Apply(next FilterState) bool {
	next = next.Normalize()
	if next.Equal(s.state) {
		return false
	}
	s.state = next
	s.recompute()
	return true
}

// SetSearchName changes the title search text.
func (s *Session) SetSearchName(name string) bool {
	return s.Apply(s.state.WithSearchName(name))
}

// SetLanguages replaces the language selection.
func (s *Session) SetLanguages(languages ...string) bool {
	return s.Apply(s.state.WithLanguages(languages...))
}

// ToggleLanguage adds or removes one language.
func (s *Session) ToggleLanguage(name string) bool {
	return s.Apply(s.state.WithLanguages(utils.Toggle(s.state.Languages, name)...))
}

// SetTechnologies replaces the technology selection.
func (s *Session) SetTechnologies(technologies ...string) bool {
	return s.Apply(s.state.WithTechnologies(technologies...))
}

// ToggleTechnology adds or removes one technology.
func (s *Session) ToggleTechnology(name string) bool {
	return s.Apply(s.state.WithTechnologies(utils.Toggle(s.state.Technologies, name)...))
}

// SetCategories replaces the category selection.
func (s *Session) SetCategories(keys ...string) bool {
	return s.Apply(s.state.WithCategories(keys...))
}

// ToggleCategory adds or removes one category key.
func (s *Session) ToggleCategory(key string) bool {
	return s.Apply(s.state.WithCategories(utils.Toggle(s.state.Categories, key)...))
}

// SetPaid changes the pricing mode.
func (s *Session) SetPaid(mode PaidMode) bool {
	return s.Apply(s.state.WithPaid(mode))
}

// SetAsyncAPIOwner changes the AsyncAPI owner flag.
func (s *Session) SetAsyncAPIOwner(owner bool) bool {
	return s.Apply(s.state.WithAsyncAPIOwner(owner))
}

// Reset clears every selection.
func (s *Session) Reset() bool {
	return s.Apply(FilterState{})
}

func (s *Session) recompute() {
	s.result = ComputeFilteredCatalog(s.catalog, s.state)
	s.passes++
	verbose.Recomputed(s.passes, s.result.Total(), s.catalog.EntryCount())
	if s.OnChange != nil {
		s.OnChange(s.state, s.result)
	}
}
