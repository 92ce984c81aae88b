package filtering

import "strings"

// Matcher defines the interface for string matching strategies.
//
// Example:
//
//	matcher := filtering.NewContainsMatcher("studio")
//	if matcher.Match("AsyncAPI Studio") {
//	    fmt.Println("matched!")
//	}
type Matcher interface {
	// Match tests if the given value matches the pattern.
	Match(value string) bool

	// String returns a string representation of the matcher.
	String() string
}

// ExactMatcher matches strings that exactly equal the pattern.
//
// Example:
//
//	matcher := &filtering.ExactMatcher{Pattern: "Go", IgnoreCase: true}
//	matcher.Match("go")     // returns true
//	matcher.Match("Golang") // returns false
type ExactMatcher struct {
	// Pattern is the exact string to match.
	Pattern string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// Match tests if value exactly equals the pattern.
func (m *ExactMatcher) Match(value string) bool {
	if m.IgnoreCase {
		return strings.EqualFold(value, m.Pattern)
	}
	return value == m.Pattern
}

// String returns the pattern string.
func (m *ExactMatcher) String() string {
	return m.Pattern
}

// ContainsMatcher matches strings containing the substring.
//
// The lowered substring is computed once so that a filtering pass does not
// lower it again for every entry.
//
// Example:
//
//	matcher := filtering.NewContainsMatcher("gen")
//	matcher.Match("AsyncAPI Generator") // returns true
//	matcher.Match("Modelina")           // returns false
type ContainsMatcher struct {
	// Substring is the text values must contain.
	Substring string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool

	lowered string
}

// Match tests if value contains the substring.
// An empty substring matches everything.
func (m *ContainsMatcher) Match(value string) bool {
	if m.IgnoreCase {
		if m.lowered == "" && m.Substring != "" {
			m.lowered = strings.ToLower(m.Substring)
		}
		return strings.Contains(strings.ToLower(value), m.lowered)
	}
	return strings.Contains(value, m.Substring)
}

// String returns the substring wrapped in asterisks.
func (m *ContainsMatcher) String() string {
	return "*" + m.Substring + "*"
}

// NewExactMatcherIgnoreCase creates a case-insensitive exact matcher.
func NewExactMatcherIgnoreCase(pattern string) Matcher {
	return &ExactMatcher{Pattern: pattern, IgnoreCase: true}
}

// NewContainsMatcher creates a case-insensitive substring matcher.
// This is the matcher used for the title search clause.
func NewContainsMatcher(substring string) Matcher {
	return &ContainsMatcher{
		Substring:  substring,
		IgnoreCase: true,
		lowered:    strings.ToLower(substring),
	}
}

// ResolveNames maps each value to the known name it equals case-insensitively.
//
// Values with no known counterpart are kept as typed, so they simply match
// nothing. This lets "--language go" select the catalog's "Go".
//
// Parameters:
//   - values: User supplied names
//   - known: Names present in the catalog
//
// Returns:
//   - []string: Values rewritten to catalog spelling where possible
func ResolveNames(values, known []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v
		m := NewExactMatcherIgnoreCase(v)
		for _, k := range known {
			if m.Match(k) {
				out[i] = k
				break
			}
		}
	}
	return out
}
