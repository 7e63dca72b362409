package dsmeta

import (
	"context"
	"strings"
)

// Confidence expresses how certain the remote extractor is about a
// candidate. Unrecognized values normalize to ConfidenceLow.
type Confidence string

// Confidence levels assigned by the remote extractor.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseConfidence normalizes a free-text confidence value.
// Anything outside the fixed three-value set maps to ConfidenceLow.
func ParseConfidence(s string) Confidence {
	switch Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceMedium:
		return ConfidenceMedium
	}
	return ConfidenceLow
}

// Rank returns the ordering weight of a confidence level (high > medium > low).
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	}
	return 0
}

// Candidate is one page's extracted license information plus metadata
// about how the page was found. Candidates are immutable once produced;
// a failed fetch or extraction yields a SourceError, never an empty
// Candidate.
type Candidate struct {
	// SourceURL is the page the candidate was extracted from. Required.
	SourceURL string `json:"sourceUrl"`

	LicenseType  string `json:"licenseType,omitempty"`
	LicenseURL   string `json:"licenseUrl,omitempty"`
	Attribution  string `json:"attribution,omitempty"`
	Restrictions string `json:"restrictions,omitempty"`

	// Confidence is assigned by the remote extractor; defaults to low.
	Confidence Confidence `json:"confidence"`

	// LinkScore is 0 for the main page, otherwise the specificity score
	// of the link that led to this page.
	LinkScore int `json:"linkScore"`
}

// Validate returns an error if the candidate contains invalid fields.
func (c *Candidate) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "candidate source URL required")
	}
	return nil
}

// Completeness counts the non-empty fields among license type, license
// URL, attribution, and restrictions.
func (c *Candidate) Completeness() int {
	n := 0
	for _, f := range []string{c.LicenseType, c.LicenseURL, c.Attribution, c.Restrictions} {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}

// ScoredLink is a deduplicated absolute URL tagged with a keyword
// specificity score. A score of 0 means no keyword matched; such links
// are never followed.
type ScoredLink struct {
	URL   string `json:"url"`
	Score int    `json:"score"`

	// Text is the anchor text the link was found under, if any.
	Text string `json:"text,omitempty"`
}

// LinkScorer discovers candidate hyperlinks and assigns each a
// specificity score from a fixed keyword table.
type LinkScorer interface {
	// ScoreLinks extracts anchor URLs from html, resolves them against
	// baseURL, and returns them deduplicated in first-seen order with
	// their scores. Malformed, non-HTTP(S), fragment-only, and self
	// links are discarded.
	ScoreLinks(html, baseURL string) ([]ScoredLink, error)

	// ScoreURLs scores a list of already-absolute URLs (e.g. sitemap
	// entries) against the same keyword table, deduplicated in input
	// order. Links equal to baseURL are discarded.
	ScoreURLs(urls []string, baseURL string) []ScoredLink
}

// ExtractionResult aggregates the license candidates from one extract
// call. It is assembled once and not mutated afterward.
type ExtractionResult struct {
	// MainPage is the candidate extracted from the requested URL itself,
	// or nil if main-page extraction failed.
	MainPage *Candidate `json:"mainPage"`

	// Followed holds candidates from followed links in link-score
	// descending order (the order links were scheduled), regardless of
	// completion order.
	Followed []*Candidate `json:"followedLinks"`

	// BestMatch is the candidate selected by the deterministic
	// comparator. Never nil.
	BestMatch *Candidate `json:"bestMatch"`

	// AllSources lists every successful candidate in fetch order: main
	// page first, then followed links. Used for audit and export, not
	// for selection.
	AllSources []*Candidate `json:"allSources"`

	// Errors records per-source failures that did not abort the
	// operation.
	Errors []SourceError `json:"errors,omitempty"`
}

// LicenseService resolves license metadata for a URL.
type LicenseService interface {
	// ExtractLicense runs the hybrid license pipeline against url.
	// maxFollowLinks bounds how many top-scored links are visited;
	// values <= 0 mean main page only.
	ExtractLicense(ctx context.Context, url string, maxFollowLinks int) (*ExtractionResult, error)
}
