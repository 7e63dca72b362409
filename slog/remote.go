package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dsmeta"
)

// Ensure LoggingRemoteExtractor implements dsmeta.RemoteExtractor.
var _ dsmeta.RemoteExtractor = (*LoggingRemoteExtractor)(nil)

// LoggingRemoteExtractor wraps a RemoteExtractor with debug logging.
type LoggingRemoteExtractor struct {
	next   dsmeta.RemoteExtractor
	logger *slog.Logger
}

// NewLoggingRemoteExtractor creates a new LoggingRemoteExtractor.
func NewLoggingRemoteExtractor(next dsmeta.RemoteExtractor, logger *slog.Logger) *LoggingRemoteExtractor {
	return &LoggingRemoteExtractor{next: next, logger: logger}
}

// Analyze logs the call size and duration and delegates to the wrapped
// extractor.
func (e *LoggingRemoteExtractor) Analyze(ctx context.Context, content, prompt string) (response string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("remote analyze",
			"content_bytes", len(content),
			"response_bytes", len(response),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Analyze(ctx, content, prompt)
}
