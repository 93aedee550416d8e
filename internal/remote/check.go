package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"iconsearch-go/internal/ctxlog"
)

// Result is the outcome of probing one icon URL. Status is set when OK;
// Err is set otherwise.
type Result struct {
	OK     bool
	Status int
	Err    error
}

// Check probes rawURL with HEAD and falls back to GET when HEAD fails for any
// reason, since some servers and CDNs refuse HEAD. Failures are returned in
// the Result rather than as an error.
func (c *Client) Check(ctx context.Context, rawURL string) Result {
	status, headErr := c.probe(ctx, http.MethodHead, rawURL)
	if headErr == nil {
		return Result{OK: true, Status: status}
	}
	ctxlog.FromContext(ctx).Debug("HEAD failed, retrying with GET", "url", rawURL, "error", headErr)

	status, getErr := c.probe(ctx, http.MethodGet, rawURL)
	if getErr == nil {
		return Result{OK: true, Status: status}
	}
	return Result{Err: getErr}
}

func (c *Client) probe(ctx context.Context, method, rawURL string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	// Drain a little so the connection can be reused; icons are small.
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	return resp.StatusCode, nil
}

// IconURL joins rawBase and a relative icon path, escaping each path
// segment.
func IconURL(rawBase, iconPath string) string {
	segments := strings.Split(iconPath, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return rawBase + strings.Join(segments, "/")
}
