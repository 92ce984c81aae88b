// Package constants provides centralized string constants used throughout the application.
package constants

// Pricing filter literals accepted by --paid and the config file.
const (
	// PaidAll shows commercial and free tools alike.
	PaidAll = "all"

	// PaidOnly keeps only tools with a commercial offering.
	PaidOnly = "paid"

	// FreeOnly keeps only tools without a commercial offering.
	FreeOnly = "free"
)

// File names and limits.
const (
	// ConfigFileName is the per-directory configuration file.
	ConfigFileName = ".toolcatalog.yml"

	// DefaultMaxCatalogFileSize caps a single catalog file read (10 MiB).
	DefaultMaxCatalogFileSize int64 = 10 * 1024 * 1024

	// EmbeddedCatalogSource names the built-in catalog in logs and output.
	EmbeddedCatalogSource = "embedded"
)

// NoResultsMessage is shown when no category has a matching tool.
const NoResultsMessage = "Sorry, we don't have tools according to your needs."

// Icon constants for CLI output.
const (
	// IconSuccess indicates a successful or positive state.
	IconSuccess = "🟢"

	// IconError indicates an error or failed state.
	IconError = "❌"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconPaid marks tools with a commercial offering.
	IconPaid = "💲"

	// IconOwner marks tools maintained by the AsyncAPI initiative.
	IconOwner = "⭐"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"

	// IconCheckmarkBox indicates successful validation.
	IconCheckmarkBox = "✅"
)
