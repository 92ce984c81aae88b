package filtering

import (
	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/utils"
)

// Clause names reported in verbose output when an entry is rejected.
const (
	ClauseLanguage   = "language"
	ClauseTechnology = "technology"
	ClauseSearch     = "search"
	ClauseOwner      = "asyncapi-owner"
	ClausePaid       = "paid"
)

// MatchesLanguage reports whether the entry's language is selected.
// An empty selection passes; an entry without a language fails any non-empty selection.
func MatchesLanguage(f catalog.Filters, languages map[string]struct{}) bool {
	if len(languages) == 0 {
		return true
	}
	if f.Language == nil {
		return false
	}
	_, ok := languages[f.Language.Name]
	return ok
}

// MatchesTechnology reports whether any of the entry's technologies is selected.
func MatchesTechnology(f catalog.Filters, technologies map[string]struct{}) bool {
	if len(technologies) == 0 {
		return true
	}
	for _, t := range f.Technology {
		if _, ok := technologies[t.Name]; ok {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether the title satisfies the search matcher.
// A nil matcher passes.
func MatchesSearch(title string, m Matcher) bool {
	if m == nil {
		return true
	}
	return m.Match(title)
}

// MatchesAsyncAPIOwner applies the owner flag.
// Only a true selection constrains; false never excludes an entry.
func MatchesAsyncAPIOwner(f catalog.Filters, ownerOnly bool) bool {
	return !ownerOnly || f.IsAsyncAPIOwner
}

// MatchesPaid applies the pricing mode.
// An entry without a commercial flag matches neither PaidOnly nor PaidFree.
func MatchesPaid(f catalog.Filters, mode PaidMode) bool {
	switch mode.normalize() {
	case PaidOnly:
		v, known := f.Commercial()
		return known && v
	case PaidFree:
		v, known := f.Commercial()
		return known && !v
	default:
		return true
	}
}

// predicate is a FilterState compiled for repeated evaluation.
type predicate struct {
	languages    map[string]struct{}
	technologies map[string]struct{}
	search       Matcher
	ownerOnly    bool
	paid         PaidMode
}

func compile(s FilterState) predicate {
	p := predicate{ownerOnly: s.IsAsyncAPIOwner, paid: s.IsPaid}
	if len(s.Languages) > 0 {
		p.languages = utils.Set(s.Languages)
	}
	if len(s.Technologies) > 0 {
		p.technologies = utils.Set(s.Technologies)
	}
	if s.SearchName != "" {
		p.search = NewContainsMatcher(s.SearchName)
	}
	return p
}

// reject returns the first failing clause, or "" when the entry passes.
func (p predicate) reject(e catalog.Entry) string {
	switch {
	case !MatchesLanguage(e.Filters, p.languages):
		return ClauseLanguage
	case !MatchesTechnology(e.Filters, p.technologies):
		return ClauseTechnology
	case !MatchesSearch(e.Title, p.search):
		return ClauseSearch
	case !MatchesAsyncAPIOwner(e.Filters, p.ownerOnly):
		return ClauseOwner
	case !MatchesPaid(e.Filters, p.paid):
		return ClausePaid
	default:
		return ""
	}
}
