package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/dsmeta"
	"github.com/fwojciec/dsmeta/mock"
	dsslog "github.com/fwojciec/dsmeta/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := dsslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/data")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/data")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := dsslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/data")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingRemoteExtractor_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("logs call sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RemoteExtractor{
			AnalyzeFn: func(ctx context.Context, content, prompt string) (string, error) {
				return `{"confidence": "low"}`, nil
			},
		}

		extractor := dsslog.NewLoggingRemoteExtractor(inner, logger)
		response, err := extractor.Analyze(context.Background(), "page text", "extract")

		require.NoError(t, err)
		assert.Equal(t, `{"confidence": "low"}`, response)
		output := buf.String()
		assert.Contains(t, output, "remote analyze")
		assert.Contains(t, output, "content_bytes=9")
		assert.Contains(t, output, "response_bytes=21")
	})

	t.Run("logs classified errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RemoteExtractor{
			AnalyzeFn: func(ctx context.Context, content, prompt string) (string, error) {
				return "", dsmeta.Errorf(dsmeta.ERATELIMIT, "quota exceeded")
			},
		}

		extractor := dsslog.NewLoggingRemoteExtractor(inner, logger)
		_, err := extractor.Analyze(context.Background(), "page text", "extract")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "quota exceeded")
	})
}
