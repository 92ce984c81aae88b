// Package catalog holds the static, category-grouped tool catalog and the
// loaders that build it from JSON or YAML files.
//
// A Catalog is read-only once loaded. Get and Categories return deep
// copies, so nothing a caller does to them reaches the catalog.
package catalog

import "fmt"

// Language is the single language tag a tool may carry.
type Language struct {
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	BorderColor string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
}

// Technology is one of the technology tags a tool may carry.
type Technology struct {
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	BorderColor string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
}

// Filters is the tag block used for filtering.
//
// HasCommercial is a pointer because an absent value must match neither the
// "paid" nor the "free" filter.
type Filters struct {
	Language        *Language    `json:"language,omitempty" yaml:"language,omitempty"`
	Technology      []Technology `json:"technology,omitempty" yaml:"technology,omitempty"`
	IsAsyncAPIOwner bool         `json:"isAsyncAPIOwner,omitempty" yaml:"isAsyncAPIOwner,omitempty"`
	HasCommercial   *bool        `json:"hasCommercial,omitempty" yaml:"hasCommercial,omitempty"`
}

// LanguageName returns the language tag name, or "" when the tool has none.
func (f Filters) LanguageName() string {
	if f.Language == nil {
		return ""
	}
	return f.Language.Name
}

// TechnologyNames returns the technology tag names in catalog order.
func (f Filters) TechnologyNames() []string {
	names := make([]string, 0, len(f.Technology))
	for _, t := range f.Technology {
		names = append(names, t.Name)
	}
	return names
}

// Commercial reports the commercial flag and whether the catalog set it at all.
func (f Filters) Commercial() (value bool, known bool) {
	if f.HasCommercial == nil {
		return false, false
	}
	return *f.HasCommercial, true
}

// Links are the optional URLs shown next to a tool.
type Links struct {
	WebsiteURL string `json:"websiteUrl,omitempty" yaml:"websiteUrl,omitempty"`
	DocsURL    string `json:"docsUrl,omitempty" yaml:"docsUrl,omitempty"`
	RepoURL    string `json:"repoUrl,omitempty" yaml:"repoUrl,omitempty"`
}

// Entry is one listed tool.
//
// Category is not read from the file; loaders set it to the key of the
// category the entry was listed under.
type Entry struct {
	Category    string  `json:"-" yaml:"-"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Links       Links   `json:"links,omitempty" yaml:"links,omitempty"`
	Filters     Filters `json:"filters" yaml:"filters"`
}

// Category groups entries under a key.
type Category struct {
	Key         string
	Name        string
	Description string
	Entries     []Entry
}

// DisplayName returns Name, falling back to the key.
func (c Category) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Key
}

// Catalog is an ordered collection of categories.
type Catalog struct {
	SchemaVersion string
	Source        string

	categories []Category
	index      map[string]int
}

// New builds a catalog from categories in the given order.
// A repeated key merges into the first occurrence: entries are appended and
// the first non-empty name and description win.
func New(categories ...Category) *Catalog {
	c := &Catalog{index: make(map[string]int, len(categories))}
	for _, cat := range categories {
		c.add(cat)
	}
	return c
}

func (c *Catalog) add(cat Category) {
	entries := make([]Entry, len(cat.Entries))
	for i, e := range cat.Entries {
		e = e.Clone()
		e.Category = cat.Key
		entries[i] = e
	}

	if i, ok := c.index[cat.Key]; ok {
		existing := &c.categories[i]
		existing.Entries = append(existing.Entries, entries...)
		if existing.Name == "" {
			existing.Name = cat.Name
		}
		if existing.Description == "" {
			existing.Description = cat.Description
		}
		return
	}

	cat.Entries = entries
	c.index[cat.Key] = len(c.categories)
	c.categories = append(c.categories, cat)
}

// Keys returns the category keys in catalog order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.categories))
	for i, cat := range c.categories {
		keys[i] = cat.Key
	}
	return keys
}

// Get returns a copy of the category stored under key.
func (c *Catalog) Get(key string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return Category{}, false
	}
	return c.categories[i].clone(), true
}

// Has reports whether key is a category of the catalog.
func (c *Catalog) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[key]
	return ok
}

// Categories returns copies of the categories in catalog order.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.clone()
	}
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.categories)
}

// EntryCount returns the number of entries across all categories.
func (c *Catalog) EntryCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Entries)
	}
	return n
}

// Clone returns a deep copy that shares no memory with c.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{
		SchemaVersion: c.SchemaVersion,
		Source:        c.Source,
		categories:    make([]Category, len(c.categories)),
		index:         make(map[string]int, len(c.index)),
	}
	for i, cat := range c.categories {
		out.categories[i] = cat.clone()
		out.index[cat.Key] = i
	}
	return out
}

func (cat Category) clone() Category {
	if cat.Entries == nil {
		return cat
	}
	entries := make([]Entry, len(cat.Entries))
	for i, e := range cat.Entries {
		entries[i] = e.Clone()
	}
	cat.Entries = entries
	return cat
}

// Clone returns a copy of e that shares no pointers or slices with it.
func (e Entry) Clone() Entry {
	if e.Filters.Language != nil {
		lang := *e.Filters.Language
		e.Filters.Language = &lang
	}
	if e.Filters.Technology != nil {
		techs := make([]Technology, len(e.Filters.Technology))
		copy(techs, e.Filters.Technology)
		e.Filters.Technology = techs
	}
	if e.Filters.HasCommercial != nil {
		v := *e.Filters.HasCommercial
		e.Filters.HasCommercial = &v
	}
	return e
}

// Merge combines catalogs in order into a new catalog. Categories seen
// again append their entries to the first occurrence.
func Merge(catalogs ...*Catalog) *Catalog {
	out := New()
	var sources []string
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		if out.SchemaVersion == "" {
			out.SchemaVersion = c.SchemaVersion
		}
		if c.Source != "" {
			sources = append(sources, c.Source)
		}
		for _, cat := range c.Clone().categories {
			out.add(cat)
		}
	}
	if len(sources) == 1 {
		out.Source = sources[0]
	} else if len(sources) > 1 {
		out.Source = sources[0] + fmt.Sprintf(" (+%d more)", len(sources)-1)
	}
	return out
}

// Bool returns a pointer to v, for building Filters.HasCommercial.
func Bool(v bool) *bool {
	return &v
}
