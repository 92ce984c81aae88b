package config

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/toolcatalog/pkg/errors"
	"github.com/ajxudir/toolcatalog/pkg/filtering"
	"github.com/ajxudir/toolcatalog/pkg/output"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
)

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors   []*errors.ValidationError
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorMessages returns all error messages as a formatted string.
//
// Returns:
//   - string: formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+e.Error())
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// VerboseErrorMessages returns detailed error messages with schema hints.
func (r *ValidationResult) VerboseErrorMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+e.VerboseError())
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

func (r *ValidationResult) addError(field, message string) *errors.ValidationError {
	verr := errors.NewConfigValidationError(field, message)
	r.Errors = append(r.Errors, verr)
	return verr
}

// Schema information for validation errors, keyed by Go type name.
var configSchema = map[string]schemaInfo{
	"Config": {
		fields: []string{"catalog", "defaults", "output", "security"},
		doc:    "docs/configuration.md",
	},
	"DefaultsCfg": {
		fields: []string{"search", "languages", "technologies", "categories", "paid", "asyncapi_owner"},
		doc:    "docs/configuration.md#defaults",
	},
	"OutputCfg": {
		fields: []string{"format", "show_empty_categories"},
		doc:    "docs/configuration.md#output",
	},
	"SecurityCfg": {
		fields: []string{"max_catalog_file_size", "max_config_file_size"},
		doc:    "docs/configuration.md#security",
	},
}

type schemaInfo struct {
	fields []string
	doc    string
}

// ValidateConfigFile validates a YAML configuration file for syntax errors and unknown fields.
//
// This performs strict validation using KnownFields(true) to detect typos and
// unknown configuration options, then checks field values.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func ValidateConfigFile(data []byte) *ValidationResult {
	result := &ValidationResult{}

	verbose.Printf("Config validation: starting YAML parsing with strict field checking\n")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		// An empty document is a valid, empty config.
		if err == io.EOF {
			return result
		}
		verbose.Printf("Config validation FAILED: YAML decode error: %v\n", err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "field") && strings.Contains(errMsg, "not found"):
			fieldName, typeName := extractFieldAndType(errMsg)
			lineNum := extractLineNumber(errMsg)

			msg := fmt.Sprintf("unknown field '%s'", fieldName)
			if lineNum > 0 {
				msg = fmt.Sprintf("unknown field '%s' (line %d)", fieldName, lineNum)
			}
			if suggestion := suggestSimilarField(fieldName, typeName); suggestion != "" {
				msg += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
			}

			verr := result.addError("", msg)
			if schema, ok := configSchema[typeName]; ok {
				verr.ValidKeys = schema.fields
				verr.DocSection = schema.doc
			} else if typeName != "" {
				verr.Expected = fmt.Sprintf("valid field for %s", typeName)
			}
		case strings.Contains(errMsg, "cannot unmarshal"):
			verr := result.addError("", errMsg)
			verr.Expected = extractExpectedType(errMsg)
		case strings.Contains(errMsg, "yaml:"):
			result.addError("", fmt.Sprintf("YAML syntax error: %s", errMsg))
		default:
			result.addError("", errMsg)
		}
		return result
	}

	verbose.Printf("Config validation: YAML parsed successfully, validating values\n")
	validateConfigStruct(&cfg, result)

	if len(result.Errors) == 0 {
		verbose.Printf("Config validation PASSED: no errors found\n")
	} else {
		verbose.Printf("Config validation FAILED: %d errors found\n", len(result.Errors))
	}
	if len(result.Warnings) > 0 {
		verbose.Printf("Config validation: %d warnings\n", len(result.Warnings))
	}

	return result
}

// Validate validates a loaded Config struct.
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateConfigStruct(c, result)
	return result
}

// validateConfigStruct checks field values that YAML decoding cannot.
func validateConfigStruct(cfg *Config, result *ValidationResult) {
	for i, pattern := range cfg.Catalog {
		field := fmt.Sprintf("catalog[%d]", i)
		if strings.TrimSpace(pattern) == "" {
			result.addError(field, "pattern must not be empty")
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			verr := result.addError(field, fmt.Sprintf("invalid glob pattern '%s'", pattern))
			verr.Expected = "glob such as catalogs/**/*.json"
		}
	}

	if cfg.Defaults.Paid != "" {
		if _, known := filtering.ParsePaidMode(cfg.Defaults.Paid); !known {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("defaults.paid: unknown value '%s' is treated as 'all'", cfg.Defaults.Paid))
		}
	}
	if cfg.Defaults.Search != strings.TrimSpace(cfg.Defaults.Search) {
		result.Warnings = append(result.Warnings, "defaults.search: leading or trailing spaces are part of the search text")
	}

	if cfg.Output.Format != "" && !output.IsValidFormat(cfg.Output.Format) {
		verr := result.addError("output.format", fmt.Sprintf("unknown output format '%s'", cfg.Output.Format))
		verr.ValidKeys = output.ValidFormats()
		verr.DocSection = configSchema["OutputCfg"].doc
	}

	if cfg.Security.MaxCatalogFileSize < 0 {
		result.addError("security.max_catalog_file_size", "must not be negative")
	}
	if cfg.Security.MaxConfigFileSize < 0 {
		result.addError("security.max_config_file_size", "must not be negative")
	}
}

// extractFieldAndType extracts the unknown field name and type from a YAML error.
//
// Parameters:
//   - errMsg: YAML error message
//
// Returns:
//   - field: the unknown field name
//   - typeName: the type name where the field was found
func extractFieldAndType(errMsg string) (field, typeName string) {
	// Error format: "yaml: unmarshal errors:\n  line X: field foo not found in type config.Type"
	parts := strings.Split(errMsg, "field ")
	if len(parts) >= 2 {
		fieldPart := parts[1]
		if spaceIdx := strings.Index(fieldPart, " "); spaceIdx > 0 {
			field = fieldPart[:spaceIdx]
		} else {
			field = fieldPart
		}
	}

	if idx := strings.Index(errMsg, "in type config."); idx >= 0 {
		typePart := errMsg[idx+len("in type config."):]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			typeName = typePart[:endIdx]
		} else {
			typeName = typePart
		}
	}

	return field, typeName
}

var lineNumberPattern = regexp.MustCompile(`line (\d+):`)

// extractLineNumber extracts the line number from a YAML error message, or 0.
func extractLineNumber(errMsg string) int {
	matches := lineNumberPattern.FindStringSubmatch(errMsg)
	if len(matches) >= 2 {
		var lineNum int
		_, _ = fmt.Sscanf(matches[1], "%d", &lineNum)
		return lineNum
	}
	return 0
}

// extractExpectedType extracts Y from "cannot unmarshal X into Y".
func extractExpectedType(errMsg string) string {
	if idx := strings.Index(errMsg, "into "); idx >= 0 {
		typePart := errMsg[idx+5:]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			return typePart[:endIdx]
		}
		return typePart
	}
	return ""
}

// commonTypos maps common typos to correct field names.
var commonTypos = map[string]map[string]string{
	"Config": {
		"catalogs": "catalog",
		"default":  "defaults",
		"filters":  "defaults",
		"format":   "output",
	},
	"DefaultsCfg": {
		"language":        "languages",
		"technology":      "technologies",
		"category":        "categories",
		"pricing":         "paid",
		"owner":           "asyncapi_owner",
		"asyncapiOwner":   "asyncapi_owner",
		"isAsyncAPIOwner": "asyncapi_owner",
		"searchName":      "search",
	},
	"OutputCfg": {
		"show_empty":          "show_empty_categories",
		"showEmptyCategories": "show_empty_categories",
	},
	"SecurityCfg": {
		"maxCatalogFileSize": "max_catalog_file_size",
		"maxConfigFileSize":  "max_config_file_size",
	},
}

// suggestSimilarField returns a suggested field name if the input looks like a typo.
//
// This checks common typos and kebab-case spellings of snake_case keys.
func suggestSimilarField(field, typeName string) string {
	if typos, ok := commonTypos[typeName]; ok {
		if suggestion, found := typos[field]; found {
			return suggestion
		}
	}

	if strings.Contains(field, "-") {
		snakeCase := strings.ReplaceAll(field, "-", "_")
		if schema, ok := configSchema[typeName]; ok {
			for _, f := range schema.fields {
				if f == snakeCase {
					return snakeCase
				}
			}
		}
	}

	return ""
}
