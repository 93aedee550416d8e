package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"iconsearch-go/internal/app"
	"iconsearch-go/internal/config"
	"iconsearch-go/internal/ctxlog"
	"iconsearch-go/internal/search"
)

// compareCommand is only recognised as the first argument; anywhere else
// the word is an ordinary search term.
const compareCommand = "compare"

// bareSearch is what a valueless --search records. CleanTerms drops it, so
// "--search" alone matches everything and "--search a b" leaves a and b
// as positional terms.
const bareSearch = " "

type rootOptions struct {
	configPath string
	verbose    bool
	terms      []string
	maxResults int
	validate   bool
	rawBase    string
}

func addCommonFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.StringVarP(&opts.configPath, "config", "c", "iconsearch.yaml", "Config file path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")
}

func attachLogger(cmd *cobra.Command, stderr io.Writer, opts *rootOptions) {
	logger := ctxlog.New(stderr, opts.verbose)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "iconsearch-go [flags] [term...]",
		Short: "Search the draw.io Azure2 icon set on GitHub",
		Long: `Search the Azure2 icons bundled in the jgraph/drawio GitHub repository.

Fetches the repository tree once, keeps the icon paths that contain any of
the search terms (case-insensitive) and prints them. --search takes zero or
more terms: "--search blob network" matches either word and a bare
"--search" matches everything. Use --search=TERM to pass a term that starts
with a dash.

Run "iconsearch-go compare <index-file>" to check a local icon index
against the repository.`,
		Example: `  iconsearch-go --search blob network
  iconsearch-go --search "virtual machine" --max-results 10 --validate
  iconsearch-go compare drawio-azure2-index.yaml`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			attachLogger(cmd, stderr, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return app.Search(cmd.Context(), app.SearchOptions{
				Config:   cfg,
				Terms:    search.CleanTerms(append(opts.terms, args...)),
				Validate: opts.validate,
			}, stdout, stderr)
		},
	}

	f := root.Flags()
	addCommonFlags(f, opts)
	f.StringArrayVarP(&opts.terms, "search", "s", nil, "Keywords to match in icon path (zero or more)")
	f.Lookup("search").NoOptDefVal = bareSearch
	f.IntVar(&opts.maxResults, "max-results", config.DefaultMaxResults, "Maximum results to print")
	f.BoolVar(&opts.validate, "validate", false, "Validate each matched icon URL")
	f.StringVar(&opts.rawBase, "raw-base", config.DefaultRawBase, "Raw base URL for validation")

	return root
}

func newCompareCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "iconsearch-go compare [flags] <index-file>",
		Short: "Compare a local icon index against the GitHub listing",
		Long: `Compare a local icon index (a YAML or JSON list of icon paths) against
the Azure2 icons currently in the GitHub repository.

Exits 0 when the index is up to date and 1 when icons are missing from the
index or the index lists icons that no longer exist.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			attachLogger(cmd, stderr, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return app.Compare(cmd.Context(), app.CompareOptions{
				Config:    cfg,
				IndexPath: args[0],
			}, stdout, stderr)
		},
	}

	addCommonFlags(cmd.Flags(), opts)

	return cmd
}

// loadConfig layers defaults, the config file, ICONSEARCH_* variables and
// explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("max-results") {
		cfg.MaxResults = opts.maxResults
	}
	if flags.Changed("raw-base") {
		cfg.RawBase = opts.rawBase
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cmd *cobra.Command
	if len(args) > 0 && args[0] == compareCommand {
		cmd = newCompareCommand(stdout, stderr)
		args = args[1:]
	} else {
		cmd = newRootCommand(stdout, stderr)
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// Pipeline outcomes have already been reported
	var exitErr *app.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
