package mock

import (
	"context"

	"github.com/fwojciec/dsmeta"
)

var _ dsmeta.SiteCrawler = (*SiteCrawler)(nil)

// SiteCrawler is a mock implementation of dsmeta.SiteCrawler.
type SiteCrawler struct {
	CrawlSiteFn func(ctx context.Context, startURL string, maxPages int) ([]dsmeta.CrawledPage, error)
}

func (c *SiteCrawler) CrawlSite(ctx context.Context, startURL string, maxPages int) ([]dsmeta.CrawledPage, error) {
	return c.CrawlSiteFn(ctx, startURL, maxPages)
}

var _ dsmeta.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of dsmeta.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}

var _ dsmeta.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of dsmeta.SitemapSource.
type SitemapSource struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapSource) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
