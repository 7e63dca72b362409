package dsmeta

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	//
	// Failures are typed by error code: EUNAVAILABLE (unreachable),
	// EUNAUTHORIZED (forbidden), ENOTFOUND, and ETOOLARGE when the page
	// exceeds the fetcher's size limit. Oversized pages are rejected here,
	// before any content is sent downstream.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
