package errors

import (
	"fmt"
	"io"
	"strings"
)

// ErrorHint provides an actionable resolution for errors whose message
// contains Pattern (case-insensitive).
type ErrorHint struct {
	Pattern    string
	Hint       string
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "invalid json",
		Hint:       "Catalog is not valid JSON",
		Resolution: "Validate the file with 'toolcatalog catalog validate <file>'",
	},
	{
		Pattern:    "invalid yaml",
		Hint:       "File is not valid YAML",
		Resolution: "Check indentation and quoting; run 'toolcatalog config --validate'",
	},
	{
		Pattern:    "schema version",
		Hint:       "Catalog was written for a different toolcatalog release",
		Resolution: "Upgrade toolcatalog or fix $schemaVersion in the catalog",
	},
	{
		Pattern:    "too large",
		Hint:       "Catalog exceeds the size limit",
		Resolution: "Raise security.max_catalog_file_size in .toolcatalog.yml",
	},
	{
		Pattern:    "no catalog files matched",
		Hint:       "Catalog glob did not match any file",
		Resolution: "Check the 'catalog' patterns in .toolcatalog.yml or the --catalog flag",
	},
}

// EnhanceErrorWithHint adds an actionable hint to an error message if a
// matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	lower := strings.ToLower(errStr)
	for _, hint := range CommonErrorHints {
		if strings.Contains(lower, hint.Pattern) {
			return errStr + "\n  💡 " + hint.Hint + ": " + hint.Resolution
		}
	}

	return errStr
}

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Errors to display
//   - verbose: If true, validation errors include expected values and doc links
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if ve, ok := IsValidationError(err); ok {
			if verbose {
				_, _ = fmt.Fprintf(w, "Validation Error: %s\n", ve.VerboseError())
			} else {
				_, _ = fmt.Fprintf(w, "Validation Error: %s\n", ve.Error())
			}
			continue
		}
		_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
	}
}
