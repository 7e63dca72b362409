// Package crawl provides the bounded same-host site crawl that feeds the
// single-pass place and temporal extractions, plus its frontier and
// per-domain rate limiting.
package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/fwojciec/dsmeta"
	"github.com/fwojciec/dsmeta/bloom"
)

// Compile-time interface verification.
var _ dsmeta.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL frontier with a score-ordered priority
// queue and Bloom filter deduplication. Higher-scored (more license-like)
// URLs are visited first. It is safe for concurrent use by multiple
// goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen. URL fragments are
// stripped before deduplication, so URLs differing only by fragment are
// considered duplicates.
func (f *Frontier) Push(link dsmeta.ScoredLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := link.URL
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	link.URL = url
	heap.Push(f.queue, link)
	return true
}

// Pop returns the next link by score.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (dsmeta.ScoredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return dsmeta.ScoredLink{}, false
	}
	link, _ := heap.Pop(f.queue).(dsmeta.ScoredLink)
	return link, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// linkHeap implements heap.Interface for a ScoredLink priority queue.
// Higher-scored links are popped first.
type linkHeap []dsmeta.ScoredLink

func (h linkHeap) Len() int { return len(h) }

// Less returns true if i has a higher score than j (max-heap).
func (h linkHeap) Less(i, j int) bool {
	return h[i].Score > h[j].Score
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	link, _ := x.(dsmeta.ScoredLink)
	*h = append(*h, link)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
