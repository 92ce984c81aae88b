// Package config handles loading and validation of .toolcatalog.yml.
//
// The file names the catalog sources, the filter selections applied before
// command-line flags, output preferences, and file size limits.
package config

import (
	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/filtering"
)

// DefaultMaxConfigFileSize caps the size of .toolcatalog.yml (1 MiB).
const DefaultMaxConfigFileSize int64 = 1024 * 1024

// Config is the root configuration.
//
// Fields:
//   - Catalog: Glob patterns of catalog files; empty uses the embedded catalog
//   - Defaults: Filter selections applied before flags
//   - Output: Output preferences
//   - Security: File size limits
//   - WorkingDir: Directory relative catalog patterns resolve against (not read from YAML)
//   - Source: Path the config was read from, empty for built-in defaults (not read from YAML)
type Config struct {
	Catalog  []string    `yaml:"catalog,omitempty"`
	Defaults DefaultsCfg `yaml:"defaults,omitempty"`
	Output   OutputCfg   `yaml:"output,omitempty"`
	Security SecurityCfg `yaml:"security,omitempty"`

	WorkingDir string `yaml:"-"`
	Source     string `yaml:"-"`
}

// DefaultsCfg holds the filter selections a session starts from.
type DefaultsCfg struct {
	Search        string   `yaml:"search,omitempty"`
	Languages     []string `yaml:"languages,omitempty"`
	Technologies  []string `yaml:"technologies,omitempty"`
	Categories    []string `yaml:"categories,omitempty"`
	Paid          string   `yaml:"paid,omitempty"`
	AsyncAPIOwner bool     `yaml:"asyncapi_owner,omitempty"`
}

// OutputCfg holds output preferences.
type OutputCfg struct {
	// Format is the default output format: table, json, csv or xml.
	Format string `yaml:"format,omitempty"`

	// ShowEmptyCategories prints categories with no match in table output.
	ShowEmptyCategories bool `yaml:"show_empty_categories,omitempty"`
}

// SecurityCfg holds file size limits.
type SecurityCfg struct {
	MaxCatalogFileSize int64 `yaml:"max_catalog_file_size,omitempty"`
	MaxConfigFileSize  int64 `yaml:"max_config_file_size,omitempty"`
}

// DefaultState converts the configured defaults into a filter state.
//
// An unknown paid value becomes "all"; Validate reports it as a warning.
func (c *Config) DefaultState() filtering.FilterState {
	if c == nil {
		return filtering.FilterState{}
	}
	mode, _ := filtering.ParsePaidMode(c.Defaults.Paid)
	return filtering.FilterState{
		SearchName:      c.Defaults.Search,
		Languages:       c.Defaults.Languages,
		Technologies:    c.Defaults.Technologies,
		Categories:      c.Defaults.Categories,
		IsAsyncAPIOwner: c.Defaults.AsyncAPIOwner,
		IsPaid:          mode,
	}.Normalize()
}

// GetMaxCatalogFileSize returns the per-file catalog size limit.
func (c *Config) GetMaxCatalogFileSize() int64 {
	if c == nil || c.Security.MaxCatalogFileSize <= 0 {
		return constants.DefaultMaxCatalogFileSize
	}
	return c.Security.MaxCatalogFileSize
}

// GetMaxConfigFileSize returns the config file size limit.
func (c *Config) GetMaxConfigFileSize() int64 {
	if c == nil || c.Security.MaxConfigFileSize <= 0 {
		return DefaultMaxConfigFileSize
	}
	return c.Security.MaxConfigFileSize
}

// GetOutputFormat returns the configured output format, "table" when unset.
func (c *Config) GetOutputFormat() string {
	if c == nil || c.Output.Format == "" {
		return "table"
	}
	return c.Output.Format
}

// UsesEmbeddedCatalog reports whether no catalog pattern is configured.
func (c *Config) UsesEmbeddedCatalog() bool {
	return c == nil || len(c.Catalog) == 0
}
