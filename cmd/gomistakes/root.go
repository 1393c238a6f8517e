package gomistakes

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagNoColor         bool
	flagVerbose         bool
	flagInclude         string
	flagExclude         string
	flagDefaultExcludes bool
	flagGitignore       bool

	version = "0.1.0"
)

// rootCmd scans the directory given as its only argument.
var rootCmd = &cobra.Command{
	Use:   "gomistakes [path]",
	Short: "Report common Go mistakes in a source tree",
	Long: "gomistakes walks a directory (default: the current one), matches every .go file " +
		"against a fixed catalog of heuristic patterns and prints each occurrence with its line.",
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

// Execute runs the gomistakes CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs (relative to path)")
	rootCmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs (relative to path)")
	rootCmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", false, "skip vendor, testdata, dot/underscore dirs and generated files")
	rootCmd.Flags().BoolVar(&flagGitignore, "gitignore", false, "skip paths matched by the root .gitignore")
}
