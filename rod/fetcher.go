// Package rod provides a browser-based implementation of dsmeta.Fetcher
// for dataset portals that render content with JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/dsmeta"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements dsmeta.Fetcher at compile time.
var _ dsmeta.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using headless Chrome.
// It is the local counterpart of the original hosted browser-automation
// mode. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser     *rod.Browser
	renderDelay time.Duration
	maxSize     int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRenderDelay adds a fixed delay after page load before the HTML is
// read. SPA-style portals need time for async content to render.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// WithMaxContentSize sets the rendered page size cap in bytes. Zero or
// negative disables the cap.
func WithMaxContentSize(n int64) Option {
	return func(f *Fetcher) {
		f.maxSize = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, dsmeta.Errorf(dsmeta.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // clean up launched process on connection failure
		return nil, dsmeta.Errorf(dsmeta.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	f := &Fetcher{browser: browser}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", dsmeta.Errorf(dsmeta.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", dsmeta.Errorf(dsmeta.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", dsmeta.Errorf(dsmeta.EUNAVAILABLE, "loading %s: %v", url, err)
	}

	if f.renderDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.renderDelay):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", dsmeta.Errorf(dsmeta.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	if f.maxSize > 0 && int64(len(html)) > f.maxSize {
		return "", dsmeta.Errorf(dsmeta.ETOOLARGE, "rendered page %s exceeds limit of %d bytes", url, f.maxSize)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
