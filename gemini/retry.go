package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/dsmeta"
)

// DefaultRetryDelays returns the backoff delays between extraction
// retries: 2s, 4s. One delay per retry, so the default is two retries.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{2 * time.Second, 4 * time.Second}
}

// ClassifyError maps an API error onto a typed application error so the
// retry policy can distinguish transient failures from terminal ones.
// The API surfaces most conditions only through error text, so
// classification is by substring, mirroring the status strings the
// service returns.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return dsmeta.Errorf(dsmeta.ETIMEOUT, "extraction call timed out: %v", err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "api key", "unauthorized", "unauthenticated", "authentication", "forbidden", "permission"):
		return dsmeta.Errorf(dsmeta.EUNAUTHORIZED, "authentication failed: %v", err)
	case containsAny(msg, "413", "too large", "request entity", "payload size", "exceeds the maximum"):
		return dsmeta.Errorf(dsmeta.ETOOLARGE, "request content too large: %v", err)
	case containsAny(msg, "429", "rate limit", "quota", "resource exhausted", "resource_exhausted"):
		return dsmeta.Errorf(dsmeta.ERATELIMIT, "rate limited: %v", err)
	case containsAny(msg, "timeout", "timed out", "deadline"):
		return dsmeta.Errorf(dsmeta.ETIMEOUT, "extraction call timed out: %v", err)
	case containsAny(msg, "connection", "temporar", "unavailable", "503", "502"):
		return dsmeta.Errorf(dsmeta.EUNAVAILABLE, "extraction service unavailable: %v", err)
	}
	return dsmeta.Errorf(dsmeta.EINTERNAL, "extraction call failed: %v", err)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
