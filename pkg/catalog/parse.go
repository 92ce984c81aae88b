package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/toolcatalog/pkg/errors"
)

// SchemaVersionKey is the optional top-level key carrying the catalog schema version.
const SchemaVersionKey = "$schemaVersion"

// Format identifies the encoding of a catalog file.
type Format string

const (
	// FormatJSON is a JSON catalog (tools.json).
	FormatJSON Format = "json"

	// FormatYAML is a YAML catalog.
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the catalog format from a file extension.
//
// Parameters:
//   - path: Catalog file path
//
// Returns:
//   - Format: FormatJSON for .json, FormatYAML for .yml/.yaml
//   - error: When the extension is not recognised
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension %q (use .json, .yml or .yaml)", filepath.Ext(path))
	}
}

// categoryDoc is the on-disk shape of one category.
type categoryDoc struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	ToolsList   []Entry `json:"toolsList" yaml:"toolsList"`
}

func (d categoryDoc) category(key string) Category {
	return Category{
		Key:         key,
		Name:        d.Name,
		Description: d.Description,
		Entries:     d.ToolsList,
	}
}

// Parse decodes catalog data, keeping categories in the order they appear in the document.
//
// It performs the following operations:
//   - Step 1: Reads the top-level key order (orderedmap for JSON, yaml.Node for YAML)
//   - Step 2: Decodes each category body into entries
//   - Step 3: Records the optional $schemaVersion value
//
// Shape problems in a category body are reported as catalog ValidationErrors;
// syntax errors are wrapped with "invalid JSON" or "invalid YAML".
//
// Parameters:
//   - data: Raw file contents
//   - format: FormatJSON or FormatYAML
//   - source: Name used in error messages and Catalog.Source
//
// Returns:
//   - *Catalog: The decoded catalog
//   - error: Syntax or shape error
func Parse(data []byte, format Format, source string) (*Catalog, error) {
	var (
		c   *Catalog
		err error
	)
	switch format {
	case FormatJSON:
		c, err = parseJSON(data, source)
	case FormatYAML:
		c, err = parseYAML(data, source)
	default:
		return nil, fmt.Errorf("%s: unsupported catalog format %q", source, format)
	}
	if err != nil {
		return nil, err
	}
	c.Source = source
	return c, nil
}

func parseJSON(data []byte, source string) (*Catalog, error) {
	order := orderedmap.New()
	if err := json.Unmarshal(data, order); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", source, err)
	}

	var bodies map[string]json.RawMessage
	if err := json.Unmarshal(data, &bodies); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", source, err)
	}

	c := New()
	for _, key := range order.Keys() {
		body := bodies[key]
		if key == SchemaVersionKey {
			if err := json.Unmarshal(body, &c.SchemaVersion); err != nil {
				return nil, errors.NewCatalogValidationError(source, key, "must be a string")
			}
			continue
		}

		var doc categoryDoc
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, errors.NewCatalogValidationError(source, key, err.Error())
		}
		c.add(doc.category(key))
	}
	return c, nil
}

func parseYAML(data []byte, source string) (*Catalog, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%s: invalid YAML: %w", source, err)
	}

	c := New()
	if len(root.Content) == 0 {
		return c, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.NewCatalogValidationError(source, "", "top level must be a mapping of category keys")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		value := doc.Content[i+1]

		if key == SchemaVersionKey {
			if value.Kind != yaml.ScalarNode {
				return nil, errors.NewCatalogValidationError(source, key, "must be a string")
			}
			c.SchemaVersion = value.Value
			continue
		}

		var body categoryDoc
		if err := value.Decode(&body); err != nil {
			return nil, errors.NewCatalogValidationError(source, key, err.Error())
		}
		c.add(body.category(key))
	}
	return c, nil
}

// MarshalJSON encodes the catalog in the same shape Parse reads, with
// categories in catalog order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	out := orderedmap.New()
	out.SetEscapeHTML(false)
	if c.SchemaVersion != "" {
		out.Set(SchemaVersionKey, c.SchemaVersion)
	}
	for _, cat := range c.categories {
		entries := cat.Entries
		if entries == nil {
			entries = []Entry{}
		}
		out.Set(cat.Key, categoryDoc{
			Name:        cat.Name,
			Description: cat.Description,
			ToolsList:   entries,
		})
	}
	return json.Marshal(out)
}
