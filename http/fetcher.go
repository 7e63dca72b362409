// Package http provides HTTP-based implementations of dsmeta.Fetcher and
// dsmeta.SitemapSource for static pages that don't require JavaScript
// rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/dsmeta"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxContentSize is the default page size cap. Pages larger than
// this are rejected with ETOOLARGE before any content goes downstream,
// matching the payload limit of the remote extraction service.
const DefaultMaxContentSize = 2 << 20 // 2 MiB

// defaultUserAgent mirrors a desktop browser; several statistics portals
// serve error pages to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements dsmeta.Fetcher at compile time.
var _ dsmeta.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static sites only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxSize   int64
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxContentSize sets the page size cap in bytes. Zero or negative
// disables the cap.
func WithMaxContentSize(n int64) Option {
	return func(f *Fetcher) {
		f.maxSize = n
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		maxSize:   DefaultMaxContentSize,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", dsmeta.Errorf(dsmeta.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", dsmeta.Errorf(dsmeta.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	if f.maxSize > 0 && resp.ContentLength > f.maxSize {
		return "", dsmeta.Errorf(dsmeta.ETOOLARGE, "page %s is %d bytes, exceeds limit of %d", url, resp.ContentLength, f.maxSize)
	}

	body := resp.Body
	if f.maxSize > 0 {
		body = io.NopCloser(io.LimitReader(resp.Body, f.maxSize+1))
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", dsmeta.Errorf(dsmeta.EUNAVAILABLE, "reading %s: %v", url, err)
	}
	if f.maxSize > 0 && int64(len(data)) > f.maxSize {
		return "", dsmeta.Errorf(dsmeta.ETOOLARGE, "page %s exceeds limit of %d bytes", url, f.maxSize)
	}

	return string(data), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// statusError maps an HTTP status to a typed application error.
func statusError(status int, url string) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return dsmeta.Errorf(dsmeta.EUNAUTHORIZED, "access to %s denied (HTTP %d)", url, status)
	case status == http.StatusNotFound:
		return dsmeta.Errorf(dsmeta.ENOTFOUND, "page %s not found", url)
	case status == http.StatusRequestEntityTooLarge:
		return dsmeta.Errorf(dsmeta.ETOOLARGE, "request for %s too large (HTTP %d)", url, status)
	case status == http.StatusTooManyRequests:
		return dsmeta.Errorf(dsmeta.ERATELIMIT, "rate limited fetching %s (HTTP %d)", url, status)
	default:
		return dsmeta.Errorf(dsmeta.EUNAVAILABLE, "HTTP %d for %s", status, url)
	}
}
