package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/dsmeta"
)

// Ensure SitemapSource implements dsmeta.SitemapSource at compile time.
var _ dsmeta.SitemapSource = (*SitemapSource)(nil)

// maxSitemapDepth bounds recursion through nested sitemap indexes.
const maxSitemapDepth = 2

// SitemapSource discovers URLs from website sitemaps via HTTP. The
// license resolver scores its URLs as a supplementary pool of candidate
// license links; government data portals commonly list licence and
// terms pages in sitemaps that never appear in page navigation.
type SitemapSource struct {
	client *http.Client
}

// NewSitemapSource creates a new SitemapSource with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client}
}

// DiscoverURLs finds URLs from the site's sitemap. Sitemap locations are
// taken from robots.txt, falling back to /sitemap.xml. Returns an empty
// slice (not nil) when no sitemap is found.
func (s *SitemapSource) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "invalid base URL: %v", err)
	}

	root := *base
	root.Path = ""
	root.RawQuery = ""
	root.Fragment = ""

	sitemapURLs := s.sitemapsFromRobots(ctx, root.String())
	if len(sitemapURLs) == 0 {
		sitemapURLs = []string{root.String() + "/sitemap.xml"}
	}

	seen := make(map[string]bool)
	var urls []string
	for _, sitemapURL := range sitemapURLs {
		found, err := s.readSitemap(ctx, sitemapURL, 0)
		if err != nil {
			continue // a missing sitemap is not an error for the caller
		}
		for _, u := range found {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
	}

	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapSource) sitemapsFromRobots(ctx context.Context, rootURL string) []string {
	body, err := s.get(ctx, rootURL+"/robots.txt")
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "Sitemap:"); ok {
			if u := strings.TrimSpace(rest); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	return sitemaps
}

// readSitemap parses a sitemap or sitemap index document, recursing into
// nested sitemaps up to maxSitemapDepth.
func (s *SitemapSource) readSitemap(ctx context.Context, sitemapURL string, depth int) ([]string, error) {
	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "parsing sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "empty sitemap %s", sitemapURL)
	}

	var urls []string
	switch root.Tag {
	case "urlset":
		for _, el := range root.FindElements("./url/loc") {
			if u := strings.TrimSpace(el.Text()); u != "" {
				urls = append(urls, u)
			}
		}
	case "sitemapindex":
		if depth >= maxSitemapDepth {
			break
		}
		for _, el := range root.FindElements("./sitemap/loc") {
			nested := strings.TrimSpace(el.Text())
			if nested == "" {
				continue
			}
			found, err := s.readSitemap(ctx, nested, depth+1)
			if err != nil {
				continue
			}
			urls = append(urls, found...)
		}
	}

	return urls, nil
}

// get performs a GET request and returns the body on HTTP 200.
func (s *SitemapSource) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, dsmeta.Errorf(dsmeta.EUNAVAILABLE, "fetching %s: %v", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, dsmeta.Errorf(dsmeta.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	return resp.Body, nil
}
