package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/display"
	"github.com/ajxudir/toolcatalog/pkg/filtering"
	"github.com/ajxudir/toolcatalog/pkg/output"
	"github.com/ajxudir/toolcatalog/pkg/warnings"
)

var (
	browseCatalogFlag     string
	browseConfigFlag      string
	browseDirFlag         string
	browseShowEmptyFlag   bool
	browseDescriptionFlag bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Change filters one at a time and see the result after each change",
	Long: `Read filter commands from stdin, one per line, and print the filtered
catalog after every change. Commands:

  search <text>          set the title search (no text clears it)
  lang <name>            toggle a language
  tech <name>            toggle a technology
  cat <key>              toggle a category
  paid all|paid|free     set the pricing filter
  owner on|off           only AsyncAPI-maintained tools
  reset                  clear every filter
  show                   print the current result again
  help                   list commands
  quit                   leave`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseCatalogFlag, "catalog", "", "Catalog file patterns (comma-separated, supports **)")
	browseCmd.Flags().StringVar(&browseConfigFlag, "config", "", "Config file path")
	browseCmd.Flags().StringVarP(&browseDirFlag, "directory", "d", ".", "Directory to look for .toolcatalog.yml")
	browseCmd.Flags().BoolVar(&browseShowEmptyFlag, "show-empty", false, "Show categories without matching tools")
	browseCmd.Flags().BoolVar(&browseDescriptionFlag, "description", false, "Add a DESCRIPTION column")
}

// runBrowse starts a session from the configured defaults and hands stdin
// to the browser loop.
func runBrowse(cmd *cobra.Command, args []string) error {
	collector := display.NewWarningCollector()
	restoreWarnings := warnings.SetWarningWriter(collector)
	defer restoreWarnings()

	cfg, c, err := loadConfigAndCatalog(browseConfigFlag, browseDirFlag, browseCatalogFlag)
	if err != nil {
		return err
	}

	b := newBrowser(c, resolveState(c, cfg.DefaultState(), ""), os.Stdout, display.RenderOptions{
		ShowEmpty:       browseShowEmptyFlag || cfg.Output.ShowEmptyCategories,
		ShowDescription: browseDescriptionFlag,
		Styled:          display.StyleEnabled(os.Stdout),
	})
	b.warnings = collector
	return b.run(cmd.InOrStdin())
}

// browser drives a filtering.Session from line commands.
//
// The session re-renders through OnChange, so a command that leaves the
// filters unchanged prints nothing but a note.
type browser struct {
	session  *filtering.Session
	out      io.Writer
	opts     display.RenderOptions
	facets   catalog.Facets
	warnings *display.WarningCollector
}

func newBrowser(c *catalog.Catalog, initial filtering.FilterState, out io.Writer, opts display.RenderOptions) *browser {
	b := &browser{
		session: filtering.NewSession(c, initial),
		out:     out,
		opts:    opts,
		facets:  catalog.CollectFacets(c),
	}
	b.session.OnChange = func(state filtering.FilterState, result filtering.Result) {
		b.render(state, result)
	}
	return b
}

// run prints the initial result and processes commands until quit or EOF.
func (b *browser) run(in io.Reader) error {
	b.render(b.session.State(), b.session.Result())
	b.flushWarnings()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !b.handle(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// handle applies one command line. It returns false when the user quits.
func (b *browser) handle(line string) bool {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	s := b.session

	var changed bool
	switch strings.ToLower(verb) {
	case "":
		return true
	case "quit", "exit", "q":
		return false
	case "help", "?":
		b.printf("Commands: search <text>, lang <name>, tech <name>, cat <key>, paid all|paid|free, owner on|off, reset, show, quit\n")
		return true
	case "show":
		b.render(s.State(), s.Result())
		return true
	case "search":
		changed = s.SetSearchName(arg)
	case "lang", "language":
		if !b.requireArg(verb, arg) {
			return true
		}
		changed = s.ToggleLanguage(resolveOne(arg, valueNames(b.facets.Languages)))
	case "tech", "technology":
		if !b.requireArg(verb, arg) {
			return true
		}
		changed = s.ToggleTechnology(resolveOne(arg, valueNames(b.facets.Technologies)))
	case "cat", "category":
		if !b.requireArg(verb, arg) {
			return true
		}
		key := resolveOne(arg, s.Catalog().Keys())
		if !s.Catalog().Has(key) {
			warnings.UnknownCategories([]string{key})
		}
		changed = s.ToggleCategory(key)
	case "paid":
		mode, known := filtering.ParsePaidMode(arg)
		if !known {
			warnings.UnknownPaidMode(arg)
		}
		changed = s.SetPaid(mode)
	case "owner":
		switch strings.ToLower(arg) {
		case "on", "true", "yes":
			changed = s.SetAsyncAPIOwner(true)
		case "off", "false", "no":
			changed = s.SetAsyncAPIOwner(false)
		default:
			b.printf("owner takes on or off\n")
			return true
		}
	case "reset":
		changed = s.Reset()
	default:
		b.printf("Unknown command %q, type help for the list\n", verb)
		return true
	}

	if !changed {
		b.printf("No change (%s)\n", describeState(s.State()))
	}
	b.flushWarnings()
	return true
}

func (b *browser) requireArg(verb, arg string) bool {
	if arg == "" {
		b.printf("%s needs a value\n", verb)
		return false
	}
	return true
}

// render prints one result with a line describing the active filters.
func (b *browser) render(state filtering.FilterState, result filtering.Result) {
	b.printf("== Filters: %s\n", describeState(state))
	fr := output.NewFilterResult(b.session.Catalog(), state, result)
	display.RenderResult(b.out, fr, b.opts)
	b.printf("\n")
}

func (b *browser) flushWarnings() {
	if b.warnings == nil {
		return
	}
	display.PrintWarningsInline(b.out, b.warnings.Messages())
	b.warnings.Reset()
}

func (b *browser) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(b.out, format, args...)
}

// resolveOne maps a single name to its catalog spelling.
func resolveOne(name string, known []string) string {
	return filtering.ResolveNames([]string{name}, known)[0]
}

// describeState renders a filter state as `search="x" lang=Go`.
func describeState(s filtering.FilterState) string {
	s = s.Normalize()
	if s.IsEmpty() {
		return "none"
	}
	var parts []string
	if s.SearchName != "" {
		parts = append(parts, fmt.Sprintf("search=%q", s.SearchName))
	}
	if len(s.Languages) > 0 {
		parts = append(parts, "lang="+strings.Join(s.Languages, ","))
	}
	if len(s.Technologies) > 0 {
		parts = append(parts, "tech="+strings.Join(s.Technologies, ","))
	}
	if len(s.Categories) > 0 {
		parts = append(parts, "cat="+strings.Join(s.Categories, ","))
	}
	if s.IsPaid != filtering.PaidAll {
		parts = append(parts, "paid="+string(s.IsPaid))
	}
	if s.IsAsyncAPIOwner {
		parts = append(parts, "owner=on")
	}
	return strings.Join(parts, " ")
}
