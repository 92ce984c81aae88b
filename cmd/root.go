// Package cmd implements the command-line interface for toolcatalog.
// It provides commands for listing, browsing and inspecting a catalog of
// AsyncAPI tools filtered by language, technology, category, pricing and
// ownership.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajxudir/toolcatalog/pkg/errors"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var skipBuildChecksFlag bool

var rootCmd = &cobra.Command{
	Use:   "toolcatalog",
	Short: "Filter the AsyncAPI tool catalog",
	Long:  `Search and filter a catalog of AsyncAPI tools by language, technology, category, pricing and ownership.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		if !skipBuildChecksFlag {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(os.Stderr, warnings)
				fmt.Fprintln(os.Stderr)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput()
			return
		}
		_ = cmd.Help()
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success, including an empty filter result
//   - 2: Failure
//   - 3: Configuration or catalog error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")

	// Local to root so "toolcatalog list -v" is not ambiguous.
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(facetsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(catalogCmd)
}

// printVersionOutput prints version, build, and runtime information to stdout.
func printVersionOutput() {
	for _, line := range versionLines() {
		fmt.Println(line)
	}
}

// versionLines returns the lines printed by "version" and "--version".
//
// The runtime platform is listed only when it differs from the build target.
func versionLines() []string {
	buildOS, buildArch := getBuildTarget()
	lines := []string{fmt.Sprintf("  Build:   %s/%s", buildOS, buildArch)}
	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		lines = append(lines, fmt.Sprintf("  Runtime: %s/%s", runtime.GOOS, runtime.GOARCH))
	}
	lines = append(lines, fmt.Sprintf("  Go:      %s", runtime.Version()))
	if BuildTime != "" {
		lines = append(lines, fmt.Sprintf("  Date:    %s", BuildTime))
	}
	lines = append(lines, "")
	if GitCommit != "" {
		lines = append(lines, fmt.Sprintf("  Git:     %s", GitCommit))
	}
	return append(lines, fmt.Sprintf("  Version: %s", Version))
}
