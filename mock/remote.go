package mock

import (
	"context"

	"github.com/fwojciec/dsmeta"
)

var _ dsmeta.RemoteExtractor = (*RemoteExtractor)(nil)

// RemoteExtractor is a mock implementation of dsmeta.RemoteExtractor.
type RemoteExtractor struct {
	AnalyzeFn func(ctx context.Context, content, prompt string) (string, error)
}

func (r *RemoteExtractor) Analyze(ctx context.Context, content, prompt string) (string, error) {
	return r.AnalyzeFn(ctx, content, prompt)
}
