package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/toolcatalog/pkg/config"
	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/errors"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configPathFlag          string
	configDirFlag           string
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

// loadAndValidateConfig loads the configuration and validates it for unknown fields.
//
// A config file with errors stops the command before any catalog is read,
// so typos in filter defaults never silently change results.
//
// Parameters:
//   - configPath: Path to custom config file, or empty for default location
//   - workDir: Working directory to search for default config
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: ExitError with ExitConfigError on validation failure
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(workDir, constants.ConfigFileName)
	}

	data, err := readFileFunc(path)
	switch {
	case err == nil:
		if err := checkConfigData(path, data); err != nil {
			return nil, err
		}
	case configPath != "":
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}
	return cfg, nil
}

// checkConfigData returns an ExitError listing every validation error in data.
func checkConfigData(path string, data []byte) error {
	result := config.ValidateConfigFile(data)
	if !result.HasErrors() {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "configuration validation failed for %s:\n", path)
	for _, e := range result.Errors {
		fmt.Fprintf(&b, "  - %s\n", e.Error())
	}
	fmt.Fprintf(&b, "\n%s Run 'toolcatalog config --validate' for details, or see docs/configuration.md", constants.IconLightbulb)
	verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, path)
	return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("%s", b.String()))
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
	Long:  `Show, validate or create the .toolcatalog.yml configuration file.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .toolcatalog.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path")
	configCmd.Flags().StringVarP(&configDirFlag, "directory", "d", ".", "Directory to look for .toolcatalog.yml")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .toolcatalog.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the configuration commands would use
func runConfig(cmd *cobra.Command, args []string) error {
	switch {
	case configInitFlag:
		return createConfigTemplate(configDirFlag)
	case configValidateFlag:
		return validateConfigFile()
	case configShowDefaultsFlag:
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	case configShowEffectiveFlag:
		return showEffectiveConfig()
	}
	return cmd.Help()
}

// showEffectiveConfig prints the loaded configuration and where it came from.
func showEffectiveConfig() error {
	cfg, err := loadAndValidateConfig(configPathFlag, configDirFlag)
	if err != nil {
		return err
	}

	body, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	source := cfg.Source
	if source == "" {
		source = "built-in defaults"
	}
	catalogSource := constants.EmbeddedCatalogSource
	if !cfg.UsesEmbeddedCatalog() {
		catalogSource = strings.Join(cfg.Catalog, ", ") + " (relative to " + cfg.CatalogBaseDir() + ")"
	}

	fmt.Println("Effective configuration:")
	fmt.Println()
	fmt.Printf("Source: %s\n", source)
	fmt.Printf("Working Directory: %s\n", cfg.WorkingDir)
	fmt.Printf("Catalog: %s\n", catalogSource)
	fmt.Printf("Output Format: %s\n", cfg.GetOutputFormat())
	fmt.Println()
	fmt.Print(body)
	return nil
}

// validateConfigFile validates the configuration file at the specified path.
//
// If no path is specified via --config flag, validates .toolcatalog.yml in the
// --directory folder. Reports validation errors and warnings.
//
// Returns:
//   - error: Returns ExitError with ExitConfigError code on validation failure
func validateConfigFile() error {
	configPath := configPathFlag
	if configPath == "" {
		configPath = filepath.Join(configDirFlag, constants.ConfigFileName)
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	result := config.ValidateConfigFile(data)

	if result.HasErrors() {
		fmt.Printf("%s Configuration validation failed for: %s\n\n", constants.IconError, configPath)
		for _, e := range result.Errors {
			if verbose.IsEnabled() {
				fmt.Printf("  ERROR: %s\n", e.VerboseError())
			} else {
				fmt.Printf("  ERROR: %s\n", e.Error())
			}
		}
		printConfigWarnings(result.Warnings)
		fmt.Println()
		if !verbose.IsEnabled() {
			fmt.Printf("%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		fmt.Printf("%s See docs/configuration.md for valid configuration options\n", constants.IconLightbulb)
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("configuration validation failed"))
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("%s Configuration valid with warnings: %s\n", constants.IconWarn, configPath)
		printConfigWarnings(result.Warnings)
		fmt.Println()
		return nil
	}

	fmt.Printf("%s Configuration valid: %s\n", constants.IconCheckmarkBox, configPath)
	return nil
}

func printConfigWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println()
	for _, w := range warnings {
		fmt.Printf("  WARNING: %s\n", w)
	}
}

// createConfigTemplate writes the .toolcatalog.yml template into dir.
//
// Fails if a config file already exists at that location.
func createConfigTemplate(dir string) error {
	configPath := filepath.Join(dir, constants.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	// Owner read/write only.
	if err := writeFileFunc(configPath, []byte(config.GetTemplateConfig()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", configPath)
	return nil
}
