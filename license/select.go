package license

import "github.com/fwojciec/dsmeta"

// Compare orders two candidates for best-match selection. It returns a
// positive number when a is better than b, negative when b is better,
// and 0 when they tie. Ordering is by confidence rank, then field
// completeness, then link score.
func Compare(a, b *dsmeta.Candidate) int {
	if d := a.Confidence.Rank() - b.Confidence.Rank(); d != 0 {
		return d
	}
	if d := a.Completeness() - b.Completeness(); d != 0 {
		return d
	}
	return a.LinkScore - b.LinkScore
}

// Best selects the winning candidate from a non-empty slice. A later
// candidate replaces the current best only when it is strictly better,
// so ties resolve to the earlier (first-seen) candidate. Returns nil
// for an empty slice.
func Best(candidates []*dsmeta.Candidate) *dsmeta.Candidate {
	var best *dsmeta.Candidate
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if best == nil || Compare(c, best) > 0 {
			best = c
		}
	}
	return best
}
