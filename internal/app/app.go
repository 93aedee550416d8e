// Package app runs the icon search and index comparison pipelines: fetch
// the repository tree, extract the icon listing, then filter and report.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"iconsearch-go/internal/config"
	"iconsearch-go/internal/ctxlog"
	"iconsearch-go/internal/remote"
	"iconsearch-go/internal/tree"
)

var (
	ErrNoIcons    = errors.New("no Azure2 icon paths found in GitHub tree")
	ErrNoMatches  = errors.New("no icons matched the search terms")
	ErrIndexDrift = errors.New("icon index differs from the remote listing")
)

// ExitError carries the process exit code for an outcome that has already
// been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// fetchIcons fetches the tree listing and extracts the icon paths. Fatal
// outcomes are written to stderr and returned as an *ExitError.
func fetchIcons(ctx context.Context, client *remote.Client, cfg *config.Config, stderr io.Writer) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	logger.Debug("fetching tree", "url", cfg.TreeAPI)
	payload, err := client.FetchTree(ctx, cfg.TreeAPI)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: unable to fetch GitHub tree: %v\n", err)
		return nil, &ExitError{Code: 1, Err: err}
	}

	icons := tree.Extract(payload, cfg.PathPrefix)
	logger.Debug("extracted icons", "prefix", cfg.PathPrefix, "count", len(icons))
	if len(icons) == 0 {
		fmt.Fprintf(stderr, "ERROR: %v\n", ErrNoIcons)
		return nil, &ExitError{Code: 1, Err: ErrNoIcons}
	}

	return icons, nil
}
