package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCategory identifies the source of a validation error.
type ValidationCategory string

const (
	// ValidationCategoryConfig indicates a .toolcatalog.yml validation error.
	ValidationCategoryConfig ValidationCategory = "config"

	// ValidationCategoryCatalog indicates a catalog file shape or version error.
	ValidationCategoryCatalog ValidationCategory = "catalog"
)

// ValidationError represents a config or catalog validation failure.
//
// Fields:
//   - Category: Source of validation
//   - Source: File the error was found in, if any
//   - Field: Name of the invalid field or setting
//   - Message: Description of what's wrong
//   - Expected: What a valid value should look like
//   - ValidKeys: Valid options for enum-like fields
//   - DocSection: Documentation section for this setting
//
// Example:
//
//	return &ValidationError{
//	    Category:  ValidationCategoryConfig,
//	    Field:     "output.format",
//	    Message:   "unknown output format 'yaml'",
//	    ValidKeys: []string{"table", "json", "csv", "xml"},
//	}
type ValidationError struct {
	Category   ValidationCategory
	Source     string
	Field      string
	Message    string
	Expected   string
	ValidKeys  []string
	DocSection string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Source != "" {
		sb.WriteString(e.Source)
		sb.WriteString(": ")
	}
	if e.Field != "" {
		sb.WriteString(fmt.Sprintf("%s: %s", e.Field, e.Message))
	} else {
		sb.WriteString(e.Message)
	}
	return sb.String()
}

// VerboseError returns a detailed error message with schema hints.
//
// Returns:
//   - string: Error message followed by expected value, valid keys and documentation reference
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}
	if len(e.ValidKeys) > 0 {
		sb.WriteString(fmt.Sprintf("\n    Valid values: %s", strings.Join(e.ValidKeys, ", ")))
	}
	if e.DocSection != "" {
		sb.WriteString(fmt.Sprintf("\n    📖 See: %s", e.DocSection))
	}
	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewConfigValidationError creates a config-category ValidationError.
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Category:   ValidationCategoryConfig,
		Field:      field,
		Message:    message,
		DocSection: "docs/configuration.md",
	}
}

// NewCatalogValidationError creates a catalog-category ValidationError.
//
// Parameters:
//   - source: Catalog file path, or "embedded"
//   - field: Location of the problem inside the catalog, may be empty
//   - message: Description of the problem
func NewCatalogValidationError(source, field, message string) *ValidationError {
	return &ValidationError{
		Category:   ValidationCategoryCatalog,
		Source:     source,
		Field:      field,
		Message:    message,
		DocSection: "docs/catalog.md",
	}
}
