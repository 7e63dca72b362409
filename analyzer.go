package dsmeta

// Content holds the cleaned content of an HTML page.
type Content struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the page content with noise (scripts, navigation chrome,
	// boilerplate) removed. Depending on the analyzer it is plain text
	// or Markdown.
	Text string
}

// ContentAnalyzer strips noise from HTML before it is sent downstream.
type ContentAnalyzer interface {
	Analyze(html string) (*Content, error)
}

// Converter compacts HTML into Markdown. It is used to shrink analyzed
// content before it is sent to the remote extractor.
type Converter interface {
	Convert(html string) (string, error)
}
