package dsmeta

import (
	"context"
	"strings"
	"unicode/utf8"
)

// CrawledPage is one page visited during a bounded site crawl.
type CrawledPage struct {
	URL     string
	Content *Content
}

// CombinedContentLen caps the combined text handed to the remote
// extractor after a site crawl.
const CombinedContentLen = 50000

// CombineContent joins the text of crawled pages with blank lines,
// truncated to maxLen bytes. Pages with no content are skipped.
func CombineContent(pages []CrawledPage, maxLen int) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if p.Content == nil || p.Content.Text == "" {
			continue
		}
		parts = append(parts, p.Content.Text)
	}
	return TruncateText(strings.Join(parts, "\n\n"), maxLen)
}

// TruncateText caps s at maxLen bytes without splitting a multi-byte
// rune; the cut backs off to the nearest rune boundary. A maxLen of
// zero or less means no cap.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// SiteCrawler visits a bounded number of same-host pages starting from a
// URL, returning their analyzed content. It backs the single-pass place
// and temporal extractions, which combine content from a few pages
// rather than following scored links individually.
type SiteCrawler interface {
	CrawlSite(ctx context.Context, startURL string, maxPages int) ([]CrawledPage, error)
}

// URLFrontier orders the URLs pending a crawl visit and deduplicates
// them. Implementations are safe for concurrent use.
type URLFrontier interface {
	// Push queues a link. Returns false if the URL was already seen.
	Push(link ScoredLink) bool

	// Pop returns the next link by score. The bool result is false if
	// the frontier is empty.
	Pop() (ScoredLink, bool)

	// Len returns the number of queued links.
	Len() int
}

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain,
	// or the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// SitemapSource discovers URLs from a site's sitemap. The license
// resolver uses it as a supplementary pool of candidate license links.
type SitemapSource interface {
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
