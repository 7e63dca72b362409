// Package goquery provides goquery-based implementations of
// dsmeta.LinkScorer and dsmeta.ContentAnalyzer.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dsmeta"
)

// scoreTable maps keyword substrings to specificity scores. More specific
// keywords score higher; "open-licence" is checked alongside "licence" so
// the max-wins rule picks 10 over 8 for URLs containing both.
var scoreTable = []struct {
	keyword string
	score   int
}{
	{"open-licence", 10},
	{"open-license", 10},
	{"licence", 8},
	{"license", 8},
	{"licensing", 7},
	{"copyright", 5},
	{"legal", 4},
	{"terms", 3},
}

// Score returns the specificity score of a string against the keyword
// table: the highest score among all matching keywords, or 0 when none
// match. Matching is case-insensitive substring matching.
func Score(s string) int {
	s = strings.ToLower(s)
	best := 0
	for _, entry := range scoreTable {
		if entry.score > best && strings.Contains(s, entry.keyword) {
			best = entry.score
		}
	}
	return best
}

// Ensure Scorer implements dsmeta.LinkScorer at compile time.
var _ dsmeta.LinkScorer = (*Scorer)(nil)

// Scorer extracts anchor links from HTML and scores them by how likely
// they are to point at licensing information.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// ScoreLinks parses html and returns deduplicated absolute links in
// first-seen order, each tagged with its keyword score. The score is the
// maximum over the URL string and the anchor text, so a generic href
// with the text "Open Government Licence" still scores as a license
// link. Malformed, non-HTTP(S), fragment-only, and self links are
// discarded before scoring.
func (s *Scorer) ScoreLinks(html, baseURL string) ([]dsmeta.ScoredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "failed to parse HTML: %v", err)
	}

	self := normalizeURL(base.String())

	// Track seen URLs with their index in the result slice so a
	// duplicate can upgrade the score in place without losing
	// first-seen order.
	seen := make(map[string]int)
	var links []dsmeta.ScoredLink

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		resolved = normalizeURL(resolved)
		if resolved == self {
			return
		}

		text := strings.TrimSpace(sel.Text())
		score := max(Score(resolved), Score(text))

		if idx, ok := seen[resolved]; ok {
			if score > links[idx].Score {
				links[idx].Score = score
				links[idx].Text = text
			}
			return
		}
		seen[resolved] = len(links)
		links = append(links, dsmeta.ScoredLink{URL: resolved, Score: score, Text: text})
	})

	return links, nil
}

// ScoreURLs scores a list of absolute URLs (e.g. sitemap entries)
// against the keyword table, deduplicated in input order. Links equal to
// baseURL are discarded.
func (s *Scorer) ScoreURLs(urls []string, baseURL string) []dsmeta.ScoredLink {
	self := normalizeURL(baseURL)
	seen := make(map[string]bool)
	var links []dsmeta.ScoredLink

	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			continue
		}
		normalized := normalizeURL(raw)
		if normalized == self || seen[normalized] {
			continue
		}
		seen[normalized] = true
		links = append(links, dsmeta.ScoredLink{URL: normalized, Score: Score(normalized)})
	}

	return links
}

// isNonHTTPLink reports whether an href cannot lead to an HTTP(S) page:
// script and contact schemes, or a bare fragment.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:", "#"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// resolveURL resolves a relative URL against a base URL. Returns "" for
// unparseable hrefs or non-HTTP(S) results.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// normalizeURL strips the fragment and any trailing slash so that self
// links and duplicates compare equal.
func normalizeURL(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		rawURL = rawURL[:idx]
	}
	return strings.TrimSuffix(rawURL, "/")
}
