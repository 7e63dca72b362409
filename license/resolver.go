// Package license implements the hybrid license resolution pipeline:
// local link scoring picks the pages worth visiting, a remote extractor
// reads each page, and a deterministic comparator selects the best
// candidate.
package license

import (
	"context"
	"net/url"
	"sort"
	"time"

	"github.com/fwojciec/dsmeta"
	"golang.org/x/sync/errgroup"
)

// Pipeline bounds.
const (
	// DefaultTimeout bounds an entire ExtractLicense call.
	DefaultTimeout = 5 * time.Minute

	// MaxConcurrency caps parallel followed-link extractions.
	MaxConcurrency = 5
)

var _ dsmeta.LicenseService = (*Resolver)(nil)

// Resolver implements dsmeta.LicenseService. The zero value is not
// usable; Fetcher, Analyzer, Remote, and Scorer are required. Sitemaps
// and Limiter are optional.
type Resolver struct {
	Fetcher  dsmeta.Fetcher
	Analyzer dsmeta.ContentAnalyzer
	Remote   dsmeta.RemoteExtractor
	Scorer   dsmeta.LinkScorer

	// Sitemaps, when set, contributes scored sitemap URLs to the
	// follow-link pool after the main page's own links.
	Sitemaps dsmeta.SitemapSource

	// Limiter, when set, spaces out fetches per domain.
	Limiter dsmeta.DomainLimiter

	// Concurrency bounds parallel followed-link extractions.
	// Values <= 0 or > MaxConcurrency use MaxConcurrency.
	Concurrency int

	// Timeout bounds the whole extraction. Zero means DefaultTimeout.
	Timeout time.Duration
}

// ExtractLicense runs the pipeline against pageURL. The main page fetch
// is the only fatal step: once its HTML is in hand, every later failure
// is recorded as a SourceError and the best surviving candidate wins.
func (r *Resolver) ExtractLicense(ctx context.Context, pageURL string, maxFollowLinks int) (*dsmeta.ExtractionResult, error) {
	if _, err := url.ParseRequestURI(pageURL); err != nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "invalid URL %q: %v", pageURL, err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := &dsmeta.ExtractionResult{}

	html, err := r.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	// Discover follow links before extracting the main page, so a main
	// extraction failure still leaves the followed links in play.
	links := r.followLinks(ctx, html, pageURL, maxFollowLinks)

	if candidate, err := r.extract(ctx, html, pageURL, 0); err != nil {
		result.Errors = append(result.Errors, dsmeta.NewSourceError(pageURL, err))
	} else {
		result.MainPage = candidate
	}

	result.Followed, result.Errors = r.extractFollowed(ctx, links, result.Errors)

	if result.MainPage != nil {
		result.AllSources = append(result.AllSources, result.MainPage)
	}
	result.AllSources = append(result.AllSources, result.Followed...)

	if len(result.AllSources) == 0 {
		return nil, &dsmeta.AggregateError{Failures: result.Errors}
	}
	result.BestMatch = Best(result.AllSources)
	return result, nil
}

// followLinks assembles the follow pool: the main page's own scored
// links first, then sitemap URLs, deduplicated, sorted by score
// descending, truncated to the top maxFollowLinks with score > 0.
func (r *Resolver) followLinks(ctx context.Context, html, pageURL string, maxFollowLinks int) []dsmeta.ScoredLink {
	if maxFollowLinks <= 0 {
		return nil
	}

	var pool []dsmeta.ScoredLink
	if links, err := r.Scorer.ScoreLinks(html, pageURL); err == nil {
		pool = links
	}
	if r.Sitemaps != nil {
		if urls, err := r.Sitemaps.DiscoverURLs(ctx, pageURL); err == nil {
			pool = append(pool, r.Scorer.ScoreURLs(urls, pageURL)...)
		}
	}

	seen := make(map[string]struct{}, len(pool))
	deduped := pool[:0]
	for _, link := range pool {
		if _, ok := seen[link.URL]; ok {
			continue
		}
		seen[link.URL] = struct{}{}
		deduped = append(deduped, link)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Score > deduped[j].Score
	})

	followed := deduped[:0:0]
	for _, link := range deduped {
		if link.Score <= 0 || len(followed) == maxFollowLinks {
			break
		}
		followed = append(followed, link)
	}
	return followed
}

// extractFollowed runs the followed links concurrently. Results keep
// the scheduled (score-descending) order regardless of completion
// order; failures become SourceErrors.
func (r *Resolver) extractFollowed(ctx context.Context, links []dsmeta.ScoredLink, errs []dsmeta.SourceError) ([]*dsmeta.Candidate, []dsmeta.SourceError) {
	if len(links) == 0 {
		return nil, errs
	}

	concurrency := r.Concurrency
	if concurrency <= 0 || concurrency > MaxConcurrency {
		concurrency = MaxConcurrency
	}

	type slot struct {
		candidate *dsmeta.Candidate
		err       error
	}
	slots := make([]slot, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, link := range links {
		g.Go(func() error {
			html, err := r.fetch(gctx, link.URL)
			if err != nil {
				slots[i] = slot{err: err}
				return nil
			}
			candidate, err := r.extract(gctx, html, link.URL, link.Score)
			slots[i] = slot{candidate: candidate, err: err}
			return nil
		})
	}
	g.Wait()

	var followed []*dsmeta.Candidate
	for i, s := range slots {
		if s.err != nil {
			errs = append(errs, dsmeta.NewSourceError(links[i].URL, s.err))
			continue
		}
		followed = append(followed, s.candidate)
	}
	return followed, errs
}

func (r *Resolver) fetch(ctx context.Context, pageURL string) (string, error) {
	if r.Limiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return "", dsmeta.Errorf(dsmeta.EINVALID, "invalid URL %q: %v", pageURL, err)
		}
		if err := r.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return r.Fetcher.Fetch(ctx, pageURL)
}

// extract runs the local analyzer and the remote extractor against one
// fetched page. A successful remote call always yields a candidate,
// even when the page carries no license information.
func (r *Resolver) extract(ctx context.Context, html, pageURL string, linkScore int) (*dsmeta.Candidate, error) {
	content, err := r.Analyzer.Analyze(html)
	if err != nil {
		return nil, err
	}

	text := content.Text
	if content.Title != "" {
		text = content.Title + "\n\n" + text
	}

	response, err := r.Remote.Analyze(ctx, text, extractionPrompt(pageURL))
	if err != nil {
		return nil, err
	}
	return parseCandidate(response, pageURL, linkScore), nil
}
