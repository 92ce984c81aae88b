package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/config"
	"github.com/ajxudir/toolcatalog/pkg/display"
	"github.com/ajxudir/toolcatalog/pkg/errors"
	"github.com/ajxudir/toolcatalog/pkg/filtering"
	"github.com/ajxudir/toolcatalog/pkg/output"
	"github.com/ajxudir/toolcatalog/pkg/warnings"
)

var (
	listSearchFlag      string
	listLanguageFlag    string
	listTechnologyFlag  string
	listCategoryFlag    string
	listPaidFlag        string
	listOwnerFlag       bool
	listCatalogFlag     string
	listConfigFlag      string
	listDirFlag         string
	listOutputFlag      string
	listShowEmptyFlag   bool
	listDescriptionFlag bool
)

// newFilterFunc builds the filter list applies; replaced in tests.
var newFilterFunc = func(state filtering.FilterState) filtering.CatalogFilter {
	return &filtering.StateFilter{State: state}
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tools matching the filters",
	Long: `List catalog tools grouped by category.

Filters combine with AND. Within --language, --technology and --category a
tool matches when it has any of the listed values. Flags override the
defaults in .toolcatalog.yml.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearchFlag, "search", "s", "", "Filter by tool title (case-insensitive substring)")
	listCmd.Flags().StringVarP(&listLanguageFlag, "language", "l", "", "Filter by language (comma-separated)")
	listCmd.Flags().StringVarP(&listTechnologyFlag, "technology", "t", "", "Filter by technology (comma-separated)")
	listCmd.Flags().StringVarP(&listCategoryFlag, "category", "c", "", "Limit to category keys (comma-separated)")
	listCmd.Flags().StringVarP(&listPaidFlag, "paid", "p", "", "Filter by pricing: all, paid, free")
	listCmd.Flags().BoolVar(&listOwnerFlag, "asyncapi-owner", false, "Only tools maintained by AsyncAPI")
	listCmd.Flags().StringVar(&listCatalogFlag, "catalog", "", "Catalog file patterns (comma-separated, supports **)")
	listCmd.Flags().StringVar(&listConfigFlag, "config", "", "Config file path")
	listCmd.Flags().StringVarP(&listDirFlag, "directory", "d", ".", "Directory to look for .toolcatalog.yml")
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
	listCmd.Flags().BoolVar(&listShowEmptyFlag, "show-empty", false, "Show categories without matching tools")
	listCmd.Flags().BoolVar(&listDescriptionFlag, "description", false, "Add a DESCRIPTION column to table output")
}

// runList executes the list command.
//
// It performs the following operations:
//   - Step 1: Loads and validates the config
//   - Step 2: Loads the catalog (embedded, configured, or --catalog)
//   - Step 3: Merges configured defaults with flags into one filter state
//   - Step 4: Computes the filtered catalog
//   - Step 5: Writes a table or a structured document
//
// An empty result is not an error.
func runList(cmd *cobra.Command, args []string) error {
	collector := display.NewWarningCollector()
	restoreWarnings := warnings.SetWarningWriter(collector)
	defer restoreWarnings()

	cfg, c, err := loadConfigAndCatalog(listConfigFlag, listDirFlag, listCatalogFlag)
	if err != nil {
		return err
	}

	format, err := resolveOutputFormat(listOutputFlag, cfg)
	if err != nil {
		return err
	}

	flags := filtering.FromFlags(listSearchFlag, listLanguageFlag, listTechnologyFlag, listCategoryFlag, listPaidFlag, listOwnerFlag)
	state := mergeFlagState(cmd, cfg.DefaultState(), flags)
	state = resolveState(c, state, listPaidFlag)

	r := newFilterFunc(state).Filter(c)
	result := output.NewFilterResult(c, state, r)

	if output.IsStructuredFormat(format) {
		result.Warnings = collector.Messages()
		if err := output.WriteFilterResult(os.Stdout, format, result); err != nil {
			return errors.NewExitError(errors.ExitFailure, err)
		}
		return nil
	}

	display.RenderResult(os.Stdout, result, display.RenderOptions{
		ShowEmpty:       listShowEmptyFlag || cfg.Output.ShowEmptyCategories,
		ShowDescription: listDescriptionFlag,
		Styled:          display.StyleEnabled(os.Stdout),
	})
	display.PrintWarnings(os.Stderr, collector.Messages())
	return nil
}

// loadConfigAndCatalog runs the config and catalog loading shared by every
// filtering command.
func loadConfigAndCatalog(configPath, workDir, catalogPatterns string) (*config.Config, *catalog.Catalog, error) {
	cfg, err := loadAndValidateConfig(configPath, workDir)
	if err != nil {
		return nil, nil, err
	}
	c, err := loadCatalog(cfg, catalogPatterns)
	if err != nil {
		return nil, nil, err
	}
	return cfg, c, nil
}

// resolveOutputFormat picks the --output value, falling back to the config.
func resolveOutputFormat(flagValue string, cfg *config.Config) (output.Format, error) {
	value := flagValue
	if value == "" {
		value = cfg.GetOutputFormat()
	}
	format, err := output.ParseFormat(value)
	if err != nil {
		return "", errors.NewExitError(errors.ExitConfigError, err)
	}
	return format, nil
}

// mergeFlagState overlays flag selections onto configured defaults.
//
// filtering.Merge only lets non-empty values override. An explicitly set
// --paid or --asyncapi-owner also overrides, so "--paid all" can widen a
// configured "paid: free".
func mergeFlagState(cmd *cobra.Command, defaults, flags filtering.FilterState) filtering.FilterState {
	state := filtering.Merge(defaults, flags)
	if cmd != nil {
		if cmd.Flags().Changed("paid") {
			state.IsPaid = flags.IsPaid
		}
		if cmd.Flags().Changed("asyncapi-owner") {
			state.IsAsyncAPIOwner = flags.IsAsyncAPIOwner
		}
	}
	return state.Normalize()
}

// resolveState rewrites selections to the catalog's spelling and warns about
// values that cannot match.
//
// Languages, technologies and category keys are compared exactly by the
// filter, so "go" is resolved to "Go" here. Unknown category keys and an
// unknown --paid value are reported as warnings.
func resolveState(c *catalog.Catalog, state filtering.FilterState, paidFlag string) filtering.FilterState {
	facets := catalog.CollectFacets(c)
	state.Languages = filtering.ResolveNames(state.Languages, valueNames(facets.Languages))
	state.Technologies = filtering.ResolveNames(state.Technologies, valueNames(facets.Technologies))
	state.Categories = filtering.ResolveNames(state.Categories, c.Keys())

	if unknown := filtering.UnknownCategories(c, state.Categories); len(unknown) > 0 {
		warnings.UnknownCategories(unknown)
	}
	if _, known := filtering.ParsePaidMode(paidFlag); !known {
		warnings.UnknownPaidMode(paidFlag)
	}
	return state.Normalize()
}

func valueNames(values []catalog.FacetValue) []string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.Name)
	}
	return names
}
