package mock

import "github.com/fwojciec/dsmeta"

var _ dsmeta.LinkScorer = (*LinkScorer)(nil)

// LinkScorer is a mock implementation of dsmeta.LinkScorer.
type LinkScorer struct {
	ScoreLinksFn func(html, baseURL string) ([]dsmeta.ScoredLink, error)
	ScoreURLsFn  func(urls []string, baseURL string) []dsmeta.ScoredLink
}

func (s *LinkScorer) ScoreLinks(html, baseURL string) ([]dsmeta.ScoredLink, error) {
	return s.ScoreLinksFn(html, baseURL)
}

func (s *LinkScorer) ScoreURLs(urls []string, baseURL string) []dsmeta.ScoredLink {
	if s.ScoreURLsFn == nil {
		return nil
	}
	return s.ScoreURLsFn(urls, baseURL)
}
