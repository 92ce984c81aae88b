package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/display"
	"github.com/ajxudir/toolcatalog/pkg/errors"
	"github.com/ajxudir/toolcatalog/pkg/output"
	"github.com/ajxudir/toolcatalog/pkg/warnings"
)

var (
	facetsCatalogFlag string
	facetsConfigFlag  string
	facetsDirFlag     string
	facetsOutputFlag  string
)

var facetNames = []string{"categories", "languages", "technologies"}

var facetsCmd = &cobra.Command{
	Use:       "facets [categories|languages|technologies]",
	Short:     "Show the values each filter accepts",
	Long:      `List categories, languages and technologies present in the catalog with the number of tools carrying each.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: facetNames,
	RunE:      runFacets,
}

func init() {
	facetsCmd.Flags().StringVar(&facetsCatalogFlag, "catalog", "", "Catalog file patterns (comma-separated, supports **)")
	facetsCmd.Flags().StringVar(&facetsConfigFlag, "config", "", "Config file path")
	facetsCmd.Flags().StringVarP(&facetsDirFlag, "directory", "d", ".", "Directory to look for .toolcatalog.yml")
	facetsCmd.Flags().StringVarP(&facetsOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
}

// runFacets prints the filter vocabulary of the loaded catalog.
func runFacets(cmd *cobra.Command, args []string) error {
	collector := display.NewWarningCollector()
	restoreWarnings := warnings.SetWarningWriter(collector)
	defer restoreWarnings()

	cfg, c, err := loadConfigAndCatalog(facetsConfigFlag, facetsDirFlag, facetsCatalogFlag)
	if err != nil {
		return err
	}

	format, err := resolveOutputFormat(facetsOutputFlag, cfg)
	if err != nil {
		return err
	}

	only := ""
	if len(args) == 1 {
		only = args[0]
	}
	result := output.NewFacetsResult(c.Source, catalog.CollectFacets(c), only)

	if output.IsStructuredFormat(format) {
		if err := output.WriteFacetsResult(os.Stdout, format, result); err != nil {
			return errors.NewExitError(errors.ExitFailure, err)
		}
		return nil
	}

	fmt.Printf("Catalog: %s\n\n", c.Source)
	display.RenderFacets(os.Stdout, result, display.RenderOptions{Styled: display.StyleEnabled(os.Stdout)})
	display.PrintWarnings(os.Stderr, collector.Messages())
	return nil
}
