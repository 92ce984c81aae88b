package testutil

import (
	"github.com/ajxudir/toolcatalog/pkg/catalog"
)

// EntryBuilder provides a fluent API for building catalog entries.
//
// Use this builder to construct Entry values for tests without filling
// the nested Filters struct by hand.
type EntryBuilder struct {
	entry catalog.Entry
}

// NewEntry creates a new EntryBuilder with the given title.
//
// The commercial flag starts unset, which matches neither the paid nor
// the free filter; call Free or Paid to set it.
func NewEntry(title string) *EntryBuilder {
	return &EntryBuilder{entry: catalog.Entry{Title: title}}
}

// WithLanguage sets the language tag.
func (b *EntryBuilder) WithLanguage(name string) *EntryBuilder {
	b.entry.Filters.Language = &catalog.Language{Name: name}
	return b
}

// WithTechnologies appends technology tags.
func (b *EntryBuilder) WithTechnologies(names ...string) *EntryBuilder {
	for _, n := range names {
		b.entry.Filters.Technology = append(b.entry.Filters.Technology, catalog.Technology{Name: n})
	}
	return b
}

// Owned marks the entry as maintained by AsyncAPI.
func (b *EntryBuilder) Owned() *EntryBuilder {
	b.entry.Filters.IsAsyncAPIOwner = true
	return b
}

// Paid sets hasCommercial to true.
func (b *EntryBuilder) Paid() *EntryBuilder {
	b.entry.Filters.HasCommercial = catalog.Bool(true)
	return b
}

// Free sets hasCommercial to false.
func (b *EntryBuilder) Free() *EntryBuilder {
	b.entry.Filters.HasCommercial = catalog.Bool(false)
	return b
}

// WithDescription sets the description.
func (b *EntryBuilder) WithDescription(desc string) *EntryBuilder {
	b.entry.Description = desc
	return b
}

// WithRepo sets the repository link.
func (b *EntryBuilder) WithRepo(url string) *EntryBuilder {
	b.entry.Links.RepoURL = url
	return b
}

// Build returns the constructed entry.
func (b *EntryBuilder) Build() catalog.Entry {
	return b.entry
}

// NewCategory builds a category whose display name equals its key.
func NewCategory(key string, entries ...*EntryBuilder) catalog.Category {
	cat := catalog.Category{Key: key, Name: key}
	for _, e := range entries {
		cat.Entries = append(cat.Entries, e.Build())
	}
	return cat
}

// SampleCatalog returns a small catalog covering every filter dimension.
//
// Layout:
//
//	APIs:       Studio (TypeScript, React JS+Node.js, owned, free)
//	            Microcks (Java, Docker, free)
//	            Registry (Java, Kafka, paid)
//	Generators: Generator (JavaScript, Node.js, owned, free)
//	            Modelina (TypeScript, Node.js+Go, owned, free)
//	            Hosted Docs (no language, Ruby, paid)
//	Validators: Parser Go (Go, no technology, owned, commercial flag unset)
func SampleCatalog() *catalog.Catalog {
	return catalog.New(
		NewCategory("APIs",
			NewEntry("AsyncAPI Studio").WithLanguage("TypeScript").WithTechnologies("React JS", "Node.js").Owned().Free(),
			NewEntry("Microcks").WithLanguage("Java").WithTechnologies("Docker").Free(),
			NewEntry("Apicurio Registry").WithLanguage("Java").WithTechnologies("Kafka").Paid(),
		),
		NewCategory("Generators",
			NewEntry("AsyncAPI Generator").WithLanguage("JavaScript").WithTechnologies("Node.js").Owned().Free(),
			NewEntry("Modelina").WithLanguage("TypeScript").WithTechnologies("Node.js", "Go").Owned().Free(),
			NewEntry("Hosted Docs").WithTechnologies("Ruby").Paid(),
		),
		NewCategory("Validators",
			NewEntry("Parser Go").WithLanguage("Go").Owned(),
		),
	)
}
