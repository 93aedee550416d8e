package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"iconsearch-go/internal/config"
	"iconsearch-go/internal/ctxlog"
	"iconsearch-go/internal/remote"
	"iconsearch-go/internal/search"
)

type SearchOptions struct {
	Config   *config.Config
	Terms    []string
	Validate bool
}

// Search prints the icons matching opts.Terms, at most Config.MaxResults of
// them, optionally probing each one. Per-icon probe failures are printed
// inline and do not fail the run.
func Search(ctx context.Context, opts SearchOptions, stdout, stderr io.Writer) error {
	cfg := opts.Config
	logger := ctxlog.FromContext(ctx)
	client := remote.NewClient(cfg.FetchTimeout, cfg.CheckTimeout)

	icons, err := fetchIcons(ctx, client, cfg, stderr)
	if err != nil {
		return err
	}

	matches := search.Filter(icons, opts.Terms)
	logger.Debug("filtered icons", "terms", opts.Terms, "matches", len(matches))
	if len(matches) == 0 {
		joined := "(none)"
		if len(opts.Terms) > 0 {
			joined = strings.Join(opts.Terms, ", ")
		}
		fmt.Fprintf(stdout, "No matches found for search terms: %s\n", joined)
		return &ExitError{Code: 1, Err: ErrNoMatches}
	}

	limited := matches
	if len(limited) > cfg.MaxResults {
		limited = limited[:cfg.MaxResults]
	}
	fmt.Fprintf(stdout, "Matched %d icons (showing %d)\n", len(matches), len(limited))

	for _, path := range limited {
		if !opts.Validate {
			fmt.Fprintln(stdout, path)
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		result := client.Check(ctx, remote.IconURL(cfg.RawBase, path))
		if result.OK {
			fmt.Fprintf(stdout, "OK   %d  %s\n", result.Status, path)
		} else {
			fmt.Fprintf(stdout, "FAIL      %s :: %v\n", path, result.Err)
		}
	}

	return nil
}
