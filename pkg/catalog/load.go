package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
	"github.com/ajxudir/toolcatalog/pkg/warnings"
)

//go:embed data/tools.json
var embeddedCatalog []byte

// LoadOptions controls catalog file loading.
type LoadOptions struct {
	// MaxFileSize caps each file read. Zero means constants.DefaultMaxCatalogFileSize.
	MaxFileSize int64

	// SkipSchema disables JSON Schema validation.
	SkipSchema bool
}

func (o LoadOptions) maxFileSize() int64 {
	if o.MaxFileSize <= 0 {
		return constants.DefaultMaxCatalogFileSize
	}
	return o.MaxFileSize
}

// readFileFunc is the file reader, swappable in tests.
var readFileFunc = readFileWithLimit

// Default returns the catalog embedded in the binary.
//
// The embedded catalog is validated by tests; if it ever fails to parse an
// empty catalog is returned and the failure is logged in verbose mode.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog, FormatJSON, constants.EmbeddedCatalogSource)
	if err != nil {
		verbose.Printf("Embedded catalog failed to parse: %v\n", err)
		c = New()
		c.Source = constants.EmbeddedCatalogSource
		return c
	}
	verbose.CatalogLoaded(c.Source, c.Len(), c.EntryCount())
	return c
}

// LoadFile reads, validates and parses one catalog file.
//
// It performs the following operations:
//   - Step 1: Picks the format from the file extension
//   - Step 2: Reads the file, refusing anything over the size limit
//   - Step 3: Validates against the catalog JSON Schema
//   - Step 4: Parses categories in document order
//   - Step 5: Checks $schemaVersion compatibility
//
// Parameters:
//   - path: Catalog file path
//   - opts: Size limit and schema toggle
//
// Returns:
//   - *Catalog: The parsed catalog with Source set to path
//   - error: Any read, validation or parse failure
func LoadFile(path string, opts LoadOptions) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	data, err := readFileFunc(path, opts.maxFileSize())
	if err != nil {
		return nil, err
	}

	if !opts.SkipSchema {
		if err := ValidateShape(data, format, path); err != nil {
			return nil, err
		}
	}

	c, err := Parse(data, format, path)
	if err != nil {
		return nil, err
	}

	if err := CheckSchemaVersion(c.SchemaVersion); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if IsNewerSchema(c.SchemaVersion) {
		warnings.Warnf("%s Catalog %s declares schema %s, newer than %s; unknown fields are ignored\n",
			constants.IconWarn, path, c.SchemaVersion, SupportedSchemaVersion)
	}

	verbose.CatalogLoaded(path, c.Len(), c.EntryCount())
	return c, nil
}

// LoadGlob loads every file matching the patterns and merges them.
//
// Relative patterns are resolved against baseDir. Patterns support "**"
// via doublestar. Files are loaded in lexical path order so the merged
// category order is stable.
//
// Parameters:
//   - patterns: Glob patterns such as "catalogs/**/*.json"
//   - baseDir: Directory relative patterns are anchored to
//   - opts: Per-file load options
//
// Returns:
//   - *Catalog: Merged catalog
//   - error: When no file matched or any file failed to load
func LoadGlob(patterns []string, baseDir string, opts LoadOptions) (*Catalog, error) {
	paths, err := ResolvePatterns(patterns, baseDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files matched %s", strings.Join(patterns, ", "))
	}

	catalogs := make([]*Catalog, 0, len(paths))
	for _, path := range paths {
		c, err := LoadFile(path, opts)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, c)
	}

	if len(catalogs) == 1 {
		return catalogs[0], nil
	}
	merged := Merge(catalogs...)
	verbose.CatalogLoaded(merged.Source, merged.Len(), merged.EntryCount())
	return merged, nil
}

// ResolvePatterns expands glob patterns into a sorted, de-duplicated list of files.
func ResolvePatterns(patterns []string, baseDir string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !filepath.IsAbs(pattern) && baseDir != "" {
			pattern = filepath.Join(baseDir, pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid catalog pattern %q: %w", pattern, err)
		}
		verbose.Printf("Catalog pattern %s matched %d file(s)\n", pattern, len(matches))

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// readFileWithLimit reads a file, failing when it exceeds maxSize bytes.
func readFileWithLimit(path string, maxSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog %s: %w", path, err)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("catalog %s is too large (%d bytes, max %d)", path, info.Size(), maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("catalog %s is too large (max %d bytes)", path, maxSize)
	}
	return data, nil
}
