package gomistakes

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gomistakes/gomistakes/internal/config"
	"github.com/gomistakes/gomistakes/internal/engine"
	"github.com/gomistakes/gomistakes/internal/logging"
	"github.com/gomistakes/gomistakes/internal/report"
)

func runScan(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	// Load configs: CLI > local > global
	lcfg, gcfg, err := config.Load(root)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	flags := cmd.Flags()
	verbose := pickBool(flags.Changed("verbose"), flagVerbose, lcfg.Verbose, gcfg.Verbose)
	log := logging.New("gomistakes", verbose, cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	cfg := engine.Config{
		Root:             root,
		IncludeGlobs:     pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:     pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		DefaultExcludes:  pickBool(flags.Changed("default-excludes"), flagDefaultExcludes, lcfg.DefaultExcludes, gcfg.DefaultExcludes),
		RespectGitignore: pickBool(flags.Changed("gitignore"), flagGitignore, lcfg.RespectGitignore, gcfg.RespectGitignore),
		Diagnostics:      out,
		Logger:           log,
	}
	noColor := pickBool(flags.Changed("no-color"), flagNoColor, lcfg.NoColor, gcfg.NoColor) || !isTerminal(out)
	return scan(out, cfg, report.PrintOptions{NoColor: noColor}, log)
}

// scan prints the banner, runs the scan and prints the findings. Per-file
// read errors are written to w while the scan runs.
func scan(w io.Writer, cfg engine.Config, opts report.PrintOptions, log hclog.Logger) error {
	log.Debug("starting scan",
		"root", cfg.Root,
		"include", cfg.IncludeGlobs,
		"exclude", cfg.ExcludeGlobs,
		"default_excludes", cfg.DefaultExcludes,
		"gitignore", cfg.RespectGitignore)

	report.PrintHeader(w, cfg.Root)
	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if res.FilesFailed > 0 {
		log.Warn("some files could not be read", "failed", res.FilesFailed, "scanned", res.FilesScanned)
	}
	report.PrintFindings(w, res.Findings, opts)
	return nil
}

func resolveRoot(args []string) (string, error) {
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", args[0], err)
	}
	return abs, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}
