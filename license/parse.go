package license

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/dsmeta"
)

// licenseResponse is the JSON shape the remote extractor is prompted to
// return.
type licenseResponse struct {
	LicenseType  string `json:"license_type"`
	LicenseURL   string `json:"license_url"`
	Attribution  string `json:"attribution"`
	Restrictions string `json:"restrictions"`
	Confidence   string `json:"confidence"`
}

// parseCandidate turns a remote extractor response into a candidate for
// sourceURL. It never fails: a response that cannot be parsed as JSON
// falls back to line scanning, and a response that yields nothing
// produces an empty low-confidence candidate. A successful remote call
// always counts as a source.
func parseCandidate(response, sourceURL string, linkScore int) *dsmeta.Candidate {
	c := &dsmeta.Candidate{
		SourceURL:  sourceURL,
		Confidence: dsmeta.ConfidenceLow,
		LinkScore:  linkScore,
	}

	body := dsmeta.StripResponseFences(response)

	var parsed licenseResponse
	if err := json.Unmarshal([]byte(body), &parsed); err == nil {
		c.LicenseType = strings.TrimSpace(parsed.LicenseType)
		c.LicenseURL = strings.TrimSpace(parsed.LicenseURL)
		c.Attribution = strings.TrimSpace(parsed.Attribution)
		c.Restrictions = strings.TrimSpace(parsed.Restrictions)
		c.Confidence = dsmeta.ParseConfidence(parsed.Confidence)
		return c
	}

	// Not JSON; scan for "field: value" lines.
	for _, line := range strings.Split(body, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "license type", "license_type":
			c.LicenseType = value
		case "license url", "license_url":
			c.LicenseURL = value
		case "attribution":
			c.Attribution = value
		case "restrictions":
			c.Restrictions = value
		case "confidence":
			c.Confidence = dsmeta.ParseConfidence(value)
		}
	}
	return c
}
