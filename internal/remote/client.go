// Package remote talks to the code hosting service: it fetches the
// repository tree listing and probes raw icon URLs.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"iconsearch-go/internal/ctxlog"
	"iconsearch-go/internal/tree"
)

const acceptTreeJSON = "application/vnd.github+json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client issues single, unretried requests. Each call is bounded by its own
// timeout on top of whatever deadline the caller's context carries.
type Client struct {
	httpClient   *http.Client
	fetchTimeout time.Duration
	checkTimeout time.Duration
}

func NewClient(fetchTimeout, checkTimeout time.Duration) *Client {
	return &Client{
		httpClient:   &http.Client{},
		fetchTimeout: fetchTimeout,
		checkTimeout: checkTimeout,
	}
}

// FetchTree GETs the tree listing at url and decodes it. Transport errors,
// timeouts, non-2xx statuses and bodies that are not a JSON object are all
// reported as errors.
func (c *Client) FetchTree(ctx context.Context, url string) (tree.Payload, error) {
	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", acceptTreeJSON)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload tree.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode tree JSON: %w", err)
	}
	if payload == nil {
		return nil, errors.New("tree JSON is not an object")
	}

	ctxlog.FromContext(ctx).Debug("decoded tree payload", "bytes", len(body), "truncated", payload["truncated"])
	return payload, nil
}

// do executes req and turns non-2xx responses into errors. On success the
// caller owns the response body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	logger := ctxlog.FromContext(req.Context())
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	logger.Debug("received response", "method", req.Method, "url", req.URL.String(),
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{Method: req.Method, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Method     string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s", e.Method, e.Status)
}
