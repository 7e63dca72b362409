package mock

import "github.com/fwojciec/dsmeta"

var _ dsmeta.ContentAnalyzer = (*ContentAnalyzer)(nil)

// ContentAnalyzer is a mock implementation of dsmeta.ContentAnalyzer.
type ContentAnalyzer struct {
	AnalyzeFn func(html string) (*dsmeta.Content, error)
}

func (a *ContentAnalyzer) Analyze(html string) (*dsmeta.Content, error) {
	return a.AnalyzeFn(html)
}

var _ dsmeta.Converter = (*Converter)(nil)

// Converter is a mock implementation of dsmeta.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
