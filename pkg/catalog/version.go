package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedSchemaVersion is the catalog schema this build understands.
// Catalogs declaring another major version are rejected.
const SupportedSchemaVersion = "v1.0.0"

// CheckSchemaVersion validates a $schemaVersion value.
//
// An empty value means the current schema. A leading "v" is optional.
//
// Parameters:
//   - version: Value of $schemaVersion
//
// Returns:
//   - error: When the value is not semver or its major version differs from SupportedSchemaVersion
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	canonical := version
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return fmt.Errorf("invalid schema version %q: expected semantic version like %s", version, SupportedSchemaVersion)
	}
	if semver.Major(canonical) != semver.Major(SupportedSchemaVersion) {
		return fmt.Errorf("unsupported schema version %s: this build reads %s.x catalogs", version, semver.Major(SupportedSchemaVersion))
	}
	return nil
}

// IsNewerSchema reports whether version is a later minor/patch of the supported major.
// Newer minors may carry fields this build ignores.
func IsNewerSchema(version string) bool {
	if version == "" {
		return false
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return semver.IsValid(version) && semver.Compare(version, SupportedSchemaVersion) > 0
}
