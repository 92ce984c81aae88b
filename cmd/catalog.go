package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/config"
	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/errors"
	"github.com/ajxudir/toolcatalog/pkg/utils"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
)

var (
	catalogSkipSchemaFlag bool
)

var (
	loadCatalogFileFunc = catalog.LoadFile
	loadCatalogGlobFunc = catalog.LoadGlob
	defaultCatalogFunc  = catalog.Default
)

// loadCatalog returns the catalog a command filters.
//
// Patterns given on the command line win over the config file's catalog
// list. Flag patterns resolve against the working directory; config
// patterns resolve against the config file's directory. With neither, the
// embedded catalog is used.
//
// Parameters:
//   - cfg: Loaded configuration
//   - flagPatterns: Comma-separated patterns from --catalog, or empty
//
// Returns:
//   - *catalog.Catalog: The loaded (and possibly merged) catalog
//   - error: ExitError with ExitConfigError when a catalog cannot be loaded
func loadCatalog(cfg *config.Config, flagPatterns string) (*catalog.Catalog, error) {
	opts := catalog.LoadOptions{MaxFileSize: cfg.GetMaxCatalogFileSize()}

	var patterns []string
	baseDir := cfg.WorkingDir
	if flagPatterns != "" {
		patterns = utils.TrimAndSplit(flagPatterns, ",")
	} else if !cfg.UsesEmbeddedCatalog() {
		patterns = cfg.Catalog
		baseDir = cfg.CatalogBaseDir()
	}

	if len(patterns) == 0 {
		verbose.Info("Using embedded catalog")
		return defaultCatalogFunc(), nil
	}

	c, err := loadCatalogGlobFunc(patterns, baseDir, opts)
	if err != nil {
		verbose.Infof("Exit code %d (catalog error): %v", errors.ExitConfigError, err)
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load catalog: %w", err))
	}
	return c, nil
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate catalog files or print the catalog schema",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file...>",
	Short: "Validate catalog files against the schema",
	Long:  `Check each catalog file against the JSON Schema and the supported $schemaVersion.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCatalogValidate,
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the catalog JSON Schema",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(catalog.SchemaDocument())
	},
}

func init() {
	catalogValidateCmd.Flags().BoolVar(&catalogSkipSchemaFlag, "skip-schema", false, "Only check that files parse and declare a supported version")
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogSchemaCmd)
}

// runCatalogValidate validates every file and reports each result.
//
// All files are checked even after a failure so one run lists every
// broken file.
//
// Returns:
//   - error: ExitError with ExitConfigError when any file is invalid
func runCatalogValidate(cmd *cobra.Command, args []string) error {
	opts := catalog.LoadOptions{
		MaxFileSize: constants.DefaultMaxCatalogFileSize,
		SkipSchema:  catalogSkipSchemaFlag,
	}

	failed := 0
	for _, path := range args {
		c, err := loadCatalogFileFunc(filepath.Clean(path), opts)
		if err != nil {
			failed++
			if verr, ok := errors.IsValidationError(err); ok && verbose.IsEnabled() {
				fmt.Printf("%s %s\n", constants.IconError, verr.VerboseError())
			} else {
				fmt.Printf("%s %v\n", constants.IconError, err)
			}
			continue
		}
		fmt.Printf("%s %s: %d categories, %d tools\n", constants.IconCheckmarkBox, path, c.Len(), c.EntryCount())
	}

	if failed > 0 {
		return errors.NewExitErrorf(errors.ExitConfigError, "%d of %d catalog files invalid", failed, len(args))
	}
	return nil
}
