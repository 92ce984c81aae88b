package filtering

import (
	"strings"

	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/utils"
)

// PaidMode selects tools by their commercial flag.
type PaidMode string

const (
	// PaidAll applies no pricing constraint.
	PaidAll PaidMode = constants.PaidAll

	// PaidOnly keeps tools with a commercial offering.
	PaidOnly PaidMode = constants.PaidOnly

	// PaidFree keeps tools without a commercial offering.
	PaidFree PaidMode = constants.FreeOnly
)

// ParsePaidMode parses a pricing filter value case-insensitively.
//
// Unknown values map to PaidAll. The second return value reports whether
// the input was recognised, so callers can warn about typos.
//
// Parameters:
//   - s: Raw value such as "paid", "FREE" or ""
//
// Returns:
//   - PaidMode: Parsed mode, PaidAll for empty or unknown input
//   - bool: false when s was non-empty and not a known mode
func ParsePaidMode(s string) (PaidMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", constants.PaidAll:
		return PaidAll, true
	case constants.PaidOnly:
		return PaidOnly, true
	case constants.FreeOnly:
		return PaidFree, true
	default:
		return PaidAll, false
	}
}

// normalize maps the zero value and unknown modes to PaidAll.
func (m PaidMode) normalize() PaidMode {
	switch m {
	case PaidOnly, PaidFree:
		return m
	default:
		return PaidAll
	}
}

// FilterState is a snapshot of every user filter selection.
//
// Empty lists mean "no constraint". IsAsyncAPIOwner only constrains when
// true. The zero value selects the whole catalog.
//
// Fields:
//   - SearchName: Case-insensitive substring of the tool title
//   - Languages: Accepted language names
//   - Technologies: Accepted technology names (any overlap passes)
//   - Categories: Category keys to keep; unknown keys are ignored
//   - IsAsyncAPIOwner: Keep only tools maintained by AsyncAPI when true
//   - IsPaid: Pricing constraint
type FilterState struct {
	SearchName      string
	Languages       []string
	Technologies    []string
	Categories      []string
	IsAsyncAPIOwner bool
	IsPaid          PaidMode
}

// Normalize returns a copy with trimmed, de-duplicated lists and a known paid mode.
// List order is kept. SearchName is left as typed.
func (s FilterState) Normalize() FilterState {
	return FilterState{
		SearchName:      s.SearchName,
		Languages:       utils.NormalizeList(s.Languages),
		Technologies:    utils.NormalizeList(s.Technologies),
		Categories:      utils.NormalizeList(s.Categories),
		IsAsyncAPIOwner: s.IsAsyncAPIOwner,
		IsPaid:          s.IsPaid.normalize(),
	}
}

// IsEmpty reports whether the state places no constraint on the catalog.
func (s FilterState) IsEmpty() bool {
	n := s.Normalize()
	return n.SearchName == "" &&
		len(n.Languages) == 0 &&
		len(n.Technologies) == 0 &&
		len(n.Categories) == 0 &&
		!n.IsAsyncAPIOwner &&
		n.IsPaid == PaidAll
}

// Equal reports whether two states are the same after normalization.
func (s FilterState) Equal(other FilterState) bool {
	a, b := s.Normalize(), other.Normalize()
	return a.SearchName == b.SearchName &&
		utils.EqualLists(a.Languages, b.Languages) &&
		utils.EqualLists(a.Technologies, b.Technologies) &&
		utils.EqualLists(a.Categories, b.Categories) &&
		a.IsAsyncAPIOwner == b.IsAsyncAPIOwner &&
		a.IsPaid == b.IsPaid
}

// WithSearchName returns a copy with SearchName replaced.
func (s FilterState) WithSearchName(name string) FilterState {
	s.SearchName = name
	return s
}

// WithLanguages returns a copy with Languages replaced.
func (s FilterState) WithLanguages(languages ...string) FilterState {
	s.Languages = append([]string(nil), languages...)
	return s
}

// WithTechnologies returns a copy with Technologies replaced.
func (s FilterState) WithTechnologies(technologies ...string) FilterState {
	s.Technologies = append([]string(nil), technologies...)
	return s
}

// WithCategories returns a copy with Categories replaced.
func (s FilterState) WithCategories(categories ...string) FilterState {
	s.Categories = append([]string(nil), categories...)
	return s
}

// WithAsyncAPIOwner returns a copy with IsAsyncAPIOwner replaced.
func (s FilterState) WithAsyncAPIOwner(owner bool) FilterState {
	s.IsAsyncAPIOwner = owner
	return s
}

// WithPaid returns a copy with IsPaid replaced.
func (s FilterState) WithPaid(mode PaidMode) FilterState {
	s.IsPaid = mode
	return s
}

// FromFlags builds a FilterState from command-line flag values.
//
// List flags are comma-separated; "all" or "" means no constraint.
// An unknown paid value becomes PaidAll; use ParsePaidMode first when the
// caller wants to warn about it.
//
// Parameters:
//   - search: --search value
//   - languages: --language value, e.g. "Go,TypeScript"
//   - technologies: --technology value
//   - categories: --category value
//   - paid: --paid value (all, paid, free)
//   - owner: --asyncapi-owner value
//
// Returns:
//   - FilterState: Normalized state
func FromFlags(search, languages, technologies, categories, paid string, owner bool) FilterState {
	mode, _ := ParsePaidMode(paid)
	return FilterState{
		SearchName:      search,
		Languages:       utils.TrimAndSplit(languages, ","),
		Technologies:    utils.TrimAndSplit(technologies, ","),
		Categories:      utils.TrimAndSplit(categories, ","),
		IsAsyncAPIOwner: owner,
		IsPaid:          mode,
	}.Normalize()
}

// Merge overlays the non-empty selections of override onto base.
// Used to apply command-line flags on top of configured defaults.
func Merge(base, override FilterState) FilterState {
	out := base
	if override.SearchName != "" {
		out.SearchName = override.SearchName
	}
	if len(utils.NormalizeList(override.Languages)) > 0 {
		out.Languages = override.Languages
	}
	if len(utils.NormalizeList(override.Technologies)) > 0 {
		out.Technologies = override.Technologies
	}
	if len(utils.NormalizeList(override.Categories)) > 0 {
		out.Categories = override.Categories
	}
	if override.IsAsyncAPIOwner {
		out.IsAsyncAPIOwner = true
	}
	if override.IsPaid.normalize() != PaidAll {
		out.IsPaid = override.IsPaid
	}
	return out.Normalize()
}
