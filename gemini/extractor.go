// Package gemini provides a dsmeta.RemoteExtractor backed by the Google
// Gemini API.
package gemini

import (
	"context"
	"time"

	"github.com/fwojciec/dsmeta"
	"google.golang.org/genai"
)

// DefaultModel is the model used for extraction calls.
const DefaultModel = "gemini-3-flash-preview"

// DefaultTimeout bounds a single extraction call.
const DefaultTimeout = 120 * time.Second

// extractionTemperature keeps responses close to the page content;
// metadata extraction wants recall, not creativity.
const extractionTemperature = float32(0.1)

// systemInstruction frames every extraction call.
const systemInstruction = "You are a metadata analyst for dataset web pages. " +
	"Answer based only on the page content provided. " +
	"If the requested information is not in the content, say so rather than guessing."

// Ensure Extractor implements dsmeta.RemoteExtractor at compile time.
var _ dsmeta.RemoteExtractor = (*Extractor)(nil)

// Extractor implements dsmeta.RemoteExtractor using Gemini. Each call
// carries its own timeout and a bounded retry policy: transient failures
// (timeout, rate limit, connection) are retried with backoff, while
// authentication and oversized-content failures are terminal.
type Extractor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	delays  []time.Duration
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithModel overrides the model identifier.
func WithModel(model string) Option {
	return func(e *Extractor) {
		e.model = model
	}
}

// WithTimeout sets the per-call timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.timeout = d
	}
}

// WithRetryDelays sets the backoff delays between retries; the number of
// delays is the number of retries. Useful for testing without waiting
// for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(e *Extractor) {
		e.delays = delays
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client, opts ...Option) *Extractor {
	e := &Extractor{
		client:  client,
		model:   DefaultModel,
		timeout: DefaultTimeout,
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze sends cleaned page content plus an instruction prompt to the
// model and returns its free-text response.
func (e *Extractor) Analyze(ctx context.Context, content, prompt string) (string, error) {
	if prompt == "" {
		return "", dsmeta.Errorf(dsmeta.EINVALID, "prompt required")
	}

	query := prompt
	if content != "" {
		query = prompt + "\n\nContent:\n" + content
	}

	maxAttempts := len(e.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := e.generate(ctx, query)
		if err == nil {
			return text, nil
		}
		lastErr = err

		// Terminal failures (auth, oversized content) and the last
		// attempt are not retried.
		if !dsmeta.Transient(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(e.delays[attempt]):
		}
	}

	return "", lastErr
}

// generate performs a single model call bounded by the per-call timeout.
func (e *Extractor) generate(ctx context.Context, query string) (string, error) {
	cctx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	temp := extractionTemperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}

	result, err := e.client.Models.GenerateContent(cctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: query}},
		}},
		config,
	)
	if err != nil {
		return "", ClassifyError(err)
	}
	if result == nil {
		return "", dsmeta.Errorf(dsmeta.EINTERNAL, "model returned nil result")
	}

	return result.Text(), nil
}
