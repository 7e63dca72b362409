package goquery_test

import (
	"testing"

	"github.com/fwojciec/dsmeta"
	"github.com/fwojciec/dsmeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"no keyword", "/about", 0},
		{"license", "/license-info", 8},
		{"british spelling", "/licence", 8},
		{"open licence beats licence", "/open-licence", 10},
		{"licensing", "/data-licensing", 7},
		{"copyright", "/copyright", 5},
		{"legal beats terms", "/legal/terms", 4},
		{"terms", "/terms-of-use", 3},
		{"case insensitive", "/LICENSE", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, goquery.Score(tt.in))
		})
	}
}

func TestScorer_ScoreLinks(t *testing.T) {
	t.Parallel()

	t.Run("scores links and keeps first-seen order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/about">About</a>
			<a href="/license-info">Licensing</a>
			<a href="/legal/terms">Terms</a>
		</body></html>`

		links, err := goquery.NewScorer().ScoreLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 3)

		assert.Equal(t, "https://example.com/about", links[0].URL)
		assert.Equal(t, 0, links[0].Score)
		assert.Equal(t, "https://example.com/license-info", links[1].URL)
		assert.Equal(t, 8, links[1].Score)
		assert.Equal(t, "https://example.com/legal/terms", links[2].URL)
		assert.Equal(t, 4, links[2].Score)
	})

	t.Run("scores anchor text when URL is generic", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/node/17">Open Government Licence</a>`

		links, err := goquery.NewScorer().ScoreLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, 8, links[0].Score)
	})

	t.Run("deduplicates by absolute URL keeping max score", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/info">Details</a>
			<a href="https://example.com/info">Licence</a>
		</body></html>`

		links, err := goquery.NewScorer().ScoreLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/info", links[0].URL)
		assert.Equal(t, 8, links[0].Score)
	})

	t.Run("discards non-HTTP and fragment links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="mailto:data@example.com">Email</a>
			<a href="javascript:void(0)">Menu</a>
			<a href="tel:+4712345678">Call</a>
			<a href="#section">Jump</a>
			<a href="/license">Licence</a>
		</body></html>`

		links, err := goquery.NewScorer().ScoreLinks(html, "https://example.com")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/license", links[0].URL)
	})

	t.Run("discards self links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="https://example.com/data/">This page</a>
			<a href="/data#top">Top</a>
			<a href="/data/license">Licence</a>
		</body></html>`

		links, err := goquery.NewScorer().ScoreLinks(html, "https://example.com/data")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/data/license", links[0].URL)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewScorer().ScoreLinks("<html></html>", "://bad")
		require.Error(t, err)
		assert.Equal(t, dsmeta.EINVALID, dsmeta.ErrorCode(err))
	})
}

func TestScorer_ScoreURLs(t *testing.T) {
	t.Parallel()

	links := goquery.NewScorer().ScoreURLs([]string{
		"https://example.com/open-licence",
		"https://example.com/about",
		"https://example.com/open-licence",
		"https://example.com",
		"not a url",
	}, "https://example.com")

	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/open-licence", links[0].URL)
	assert.Equal(t, 10, links[0].Score)
	assert.Equal(t, "https://example.com/about", links[1].URL)
	assert.Equal(t, 0, links[1].Score)
}
