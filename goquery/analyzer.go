package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dsmeta"
)

// DefaultMaxTextLen caps analyzed text so a single noisy page cannot
// dominate a remote-extraction prompt.
const DefaultMaxTextLen = 50000

// Ensure Analyzer implements dsmeta.ContentAnalyzer at compile time.
var _ dsmeta.ContentAnalyzer = (*Analyzer)(nil)

// Analyzer strips noise (scripts, styles, navigation chrome) from HTML
// and returns the remaining text. It keeps everything that is not
// obviously boilerplate, which suits pages where licensing terms live in
// odd corners that main-content extraction would drop.
type Analyzer struct {
	maxTextLen int
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithMaxTextLen sets the cap on returned text length.
// Defaults to DefaultMaxTextLen.
func WithMaxTextLen(n int) AnalyzerOption {
	return func(a *Analyzer) {
		a.maxTextLen = n
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{maxTextLen: DefaultMaxTextLen}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze removes script, style, and navigation chrome elements and
// returns the page title plus whitespace-collapsed body text.
func (a *Analyzer) Analyze(html string) (*dsmeta.Content, error) {
	if strings.TrimSpace(html) == "" {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")
	text = dsmeta.TruncateText(text, a.maxTextLen)

	return &dsmeta.Content{Title: title, Text: text}, nil
}
