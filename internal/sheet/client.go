package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves the raw sheet text. *Client implements it; tests and the
// UI depend on the interface.
type Fetcher interface {
	FetchCSV(ctx context.Context) (string, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrStatus is wrapped by errors for non-2xx responses.
var ErrStatus = errors.New("unexpected status")

const (
	defaultUserAgent = "roster/0.1"
	defaultTimeout   = 15 * time.Second
	maxBodyBytes     = 8 << 20
)

// Client downloads a published spreadsheet as CSV.
type Client struct {
	sheetURL  *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for sheetURL. A non-positive timeout uses the
// default.
func NewClient(sheetURL string, timeout time.Duration) (*Client, error) {
	u, err := parseSheetURL(sheetURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		sheetURL:  u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// URL returns the sheet address.
func (c *Client) URL() string {
	if c == nil || c.sheetURL == nil {
		return ""
	}
	return c.sheetURL.String()
}

// FetchCSV performs a single GET of the sheet. There is no retry.
func (c *Client) FetchCSV(ctx context.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sheetURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("sheet returned %d %s: %w", resp.StatusCode, http.StatusText(resp.StatusCode), ErrStatus)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(body), nil
}

func parseSheetURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("sheet url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse sheet url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("sheet url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("sheet url %q: missing host", raw)
	}
	return u, nil
}
