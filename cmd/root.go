package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"thoreinstein.com/hop/pkg/bootstrap"
	"thoreinstein.com/hop/pkg/config"
	"thoreinstein.com/hop/pkg/discovery"
	hoperrors "thoreinstein.com/hop/pkg/errors"
	"thoreinstein.com/hop/pkg/resolve"
	"thoreinstein.com/hop/pkg/rules"
)

var cfgFile string
var verbose bool
var rebuild bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hop [flags] DIR CODEBASE [FILTER]",
	Short: "Hop - jump to a codebase by name",
	Long: `Hop resolves a partial codebase name to the path of a git repository
nested under a search directory, so a shell alias can jump straight to it.

DIR is the root directory to search. CODEBASE is the codebase name to look
for, optionally followed by /subpath to append verbatim to the result, or
the sentinel '_' to list every known codebase name (for shell completion).
FILTER narrows multiple matches: a number picks from the numbered candidate
list, any other string keeps only candidates whose parent path contains it.

Scan results are cached per search root; the cache is rebuilt automatically
when the root changes identity or a lookup against it comes up empty.

Examples:
  hop ~/src proj
  hop ~/src proj/cmd/server
  hop ~/src proj work
  hop ~/src proj 2
  hop -f ~/src proj`,
	Args:          cobra.RangeArgs(2, 3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) == 3 {
			filter = args[2]
		}
		return runResolve(os.Stdout, args[0], args[1], filter)
	},
}

// Execute parses flags, initializes configuration and runs the root command.
// This is called by main.main(). Any error is reported once on stderr and
// the process exits non-zero.
func Execute() {
	// Pre-parse global flags to initialize config early.
	cfgFile, verbose = bootstrap.PreParseGlobalFlags(os.Args)

	if err := initConfig(); err != nil {
		fail(err)
	}

	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/hop/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().BoolVarP(&rebuild, "rebuild", "f", false, "force rebuild of the scan cache")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	_, _, err := bootstrap.InitConfig(cfgFile, verbose)
	return err
}

// runResolve wires the discovery engine, default rules and resolver
// together and writes the final path to out.
func runResolve(out io.Writer, dir, codebase, filter string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return hoperrors.Wrapf(err, "cannot access %s", dir)
	}
	if !info.IsDir() {
		return hoperrors.NewInputErrorf("%s is not a directory", dir)
	}

	// The cache directory must already exist; hop does not create it.
	cacheDir := filepath.Dir(cfg.Cache.Path)
	if info, err := os.Stat(cacheDir); err != nil || !info.IsDir() {
		return hoperrors.NewNotFoundErrorf("cache directory %s not found", cacheDir)
	}

	defaults, err := rules.Load(cfg.Defaults.Path)
	if err != nil {
		return err
	}

	engine := discovery.NewEngine(dir, cfg.Cache.Path, rebuild, verbose)
	resolver := resolve.New(dir, defaults, out)

	path, err := resolver.Resolve(engine, resolve.ParseQuery(codebase, filter))
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintln(out, path)
	}
	return nil
}
