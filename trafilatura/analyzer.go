// Package trafilatura provides a dsmeta.ContentAnalyzer built on
// go-trafilatura's boilerplate removal.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/dsmeta"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Analyzer implements dsmeta.ContentAnalyzer at compile time.
var _ dsmeta.ContentAnalyzer = (*Analyzer)(nil)

// Analyzer extracts main content from HTML, removing boilerplate.
// When a converter is provided, the content node is compacted to
// Markdown before being returned; otherwise plain extracted text is
// used.
type Analyzer struct {
	conv dsmeta.Converter
}

// NewAnalyzer creates a new Analyzer. The converter may be nil, in which
// case Analyze returns plain text.
func NewAnalyzer(conv dsmeta.Converter) *Analyzer {
	return &Analyzer{conv: conv}
}

// Analyze processes raw HTML and returns the main content with
// boilerplate removed.
func (a *Analyzer) Analyze(rawHTML string) (*dsmeta.Content, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	text := result.ContentText
	if a.conv != nil && result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		if markdown, err := a.conv.Convert(contentHTML); err == nil {
			text = markdown
		}
	}

	return &dsmeta.Content{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
