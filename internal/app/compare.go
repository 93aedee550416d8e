package app

import (
	"context"
	"fmt"
	"io"

	"iconsearch-go/internal/compare"
	"iconsearch-go/internal/config"
	"iconsearch-go/internal/remote"
	"iconsearch-go/internal/tree"
)

type CompareOptions struct {
	Config    *config.Config
	IndexPath string
}

// Compare reports how the local icon index at opts.IndexPath differs from
// the remote listing. Differences exit with code 1, like a failed search.
func Compare(ctx context.Context, opts CompareOptions, stdout, stderr io.Writer) error {
	cfg := opts.Config
	client := remote.NewClient(cfg.FetchTimeout, cfg.CheckTimeout)

	icons, err := fetchIcons(ctx, client, cfg, stderr)
	if err != nil {
		return err
	}

	index, err := tree.LoadIndex(opts.IndexPath, cfg.PathPrefix)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: failed to load index: %v\n", err)
		return &ExitError{Code: 1, Err: err}
	}

	result := compare.Compare(index, icons)
	fmt.Fprint(stdout, compare.FormatReport(result))

	if result.HasChanges() {
		return &ExitError{Code: 1, Err: ErrIndexDrift}
	}
	return nil
}
