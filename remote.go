package dsmeta

import (
	"context"
	"encoding/json"
	"strings"
)

// RemoteExtractor is the hosted LLM boundary. It accepts cleaned page
// content plus an instruction prompt and returns the model's free-text
// response. The service is opaque beyond this contract; responses that
// only partially match the expected schema are tolerated by callers.
//
// Implementations carry their own per-call timeout and bounded retry
// policy: transient failures (timeout, rate limit, connection) are
// retried with backoff, authentication and oversized-content failures
// are terminal.
type RemoteExtractor interface {
	Analyze(ctx context.Context, content, prompt string) (string, error)
}

// StripResponseFences removes a surrounding Markdown code fence, with or
// without a language tag, from a model response. Models often wrap JSON
// in fences despite instructions not to.
func StripResponseFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.Index(s, "\n"); nl != -1 {
		first := strings.TrimSpace(s[:nl])
		if first == "" || isFenceTag(first) {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// UnmarshalResponse strips Markdown fences from a model response and
// unmarshals the remainder as JSON into v.
func UnmarshalResponse(response string, v any) error {
	if err := json.Unmarshal([]byte(StripResponseFences(response)), v); err != nil {
		return Errorf(EINVALID, "unparseable model response: %v", err)
	}
	return nil
}
