package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/toolcatalog/pkg/errors"
)

//go:embed data/catalog.schema.json
var schemaJSON string

const schemaURL = "https://toolcatalog.dev/schema/catalog.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString(schemaURL, schemaJSON)
	})
	return compiledSchema, schemaErr
}

// SchemaDocument returns the embedded JSON Schema for catalog files.
func SchemaDocument() string {
	return schemaJSON
}

// ValidateShape checks raw catalog data against the embedded JSON Schema.
//
// All schema violations are collected into a single catalog ValidationError
// so the user sees every problem in one run.
//
// Parameters:
//   - data: Raw file contents
//   - format: FormatJSON or FormatYAML
//   - source: Name used in error messages
//
// Returns:
//   - error: Syntax error, or *errors.ValidationError listing violations; nil when valid
func ValidateShape(data []byte, format Format, source string) error {
	schema, err := catalogSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	var doc interface{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%s: invalid JSON: %w", source, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%s: invalid YAML: %w", source, err)
		}
		if doc == nil {
			doc = map[string]interface{}{}
		}
	default:
		return fmt.Errorf("%s: unsupported catalog format %q", source, format)
	}

	if err := schema.Validate(doc); err != nil {
		verr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return fmt.Errorf("%s: schema validation: %w", source, err)
		}
		problems := collectViolations(verr)
		sort.Strings(problems)
		return errors.NewCatalogValidationError(source, "", "schema violations: "+strings.Join(problems, "; "))
	}
	return nil
}

// collectViolations flattens a jsonschema error tree into leaf messages.
func collectViolations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := verr.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{fmt.Sprintf("%s: %s", loc, verr.Message)}
	}
	var out []string
	for _, cause := range verr.Causes {
		out = append(out, collectViolations(cause)...)
	}
	return out
}
