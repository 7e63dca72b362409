package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/dsmeta"
)

// Frontier sizing for bounded site crawls.
const (
	frontierExpectedURLs      = 1024
	frontierFalsePositiveRate = 0.01
)

// DefaultMaxPages bounds a site crawl when the caller passes no limit.
const DefaultMaxPages = 3

// Ensure Site implements dsmeta.SiteCrawler at compile time.
var _ dsmeta.SiteCrawler = (*Site)(nil)

// Site crawls a bounded number of same-host pages starting from a URL,
// returning their analyzed content. License-like links are visited first
// (the frontier orders by keyword score), which keeps the small page
// budget pointed at the pages most likely to carry metadata.
//
// Fetch and analyze failures skip the page; a crawl only fails when the
// start URL cannot be parsed.
type Site struct {
	Fetcher  dsmeta.Fetcher
	Analyzer dsmeta.ContentAnalyzer
	Scorer   dsmeta.LinkScorer
	Limiter  dsmeta.DomainLimiter // optional
}

// CrawlSite visits up to maxPages same-host pages starting from
// startURL. Pages are returned in visit order.
func (s *Site) CrawlSite(ctx context.Context, startURL string, maxPages int) ([]dsmeta.CrawledPage, error) {
	start, err := url.Parse(startURL)
	if err != nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "invalid start URL: %v", err)
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(dsmeta.ScoredLink{URL: startURL})

	var pages []dsmeta.CrawledPage
	for len(pages) < maxPages {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if s.Limiter != nil {
			linkURL, err := url.Parse(link.URL)
			if err != nil {
				continue
			}
			if err := s.Limiter.Wait(ctx, linkURL.Host); err != nil {
				break // context canceled
			}
		}

		html, err := s.Fetcher.Fetch(ctx, link.URL)
		if err != nil {
			continue
		}

		// Queue same-host links before analyzing, so a failed analysis
		// still contributes its outgoing links.
		if links, err := s.Scorer.ScoreLinks(html, link.URL); err == nil {
			for _, discovered := range links {
				discoveredURL, err := url.Parse(discovered.URL)
				if err != nil || discoveredURL.Host != start.Host {
					continue
				}
				frontier.Push(discovered)
			}
		}

		content, err := s.Analyzer.Analyze(html)
		if err != nil {
			continue
		}

		pages = append(pages, dsmeta.CrawledPage{URL: link.URL, Content: content})
	}

	return pages, nil
}
