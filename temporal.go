package dsmeta

import "context"

// CoveragePeriod is the date range a dataset covers. Dates are kept as
// the free-form values found on the page ("1990", "2020-01-01",
// "present").
type CoveragePeriod struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// TemporalInfo is the temporal metadata extracted for a dataset.
type TemporalInfo struct {
	CoveragePeriod CoveragePeriod `json:"coveragePeriod"`

	// UpdateFrequency is how often the data is refreshed
	// (annual, monthly, real-time, ...).
	UpdateFrequency string `json:"updateFrequency,omitempty"`

	// LastUpdated is when the dataset was last updated, if stated.
	LastUpdated string `json:"lastUpdated,omitempty"`

	// TemporalResolution is the granularity of individual data points
	// (yearly, monthly, daily, ...).
	TemporalResolution string `json:"temporalResolution,omitempty"`
}

// TemporalService extracts temporal metadata for a URL in a single pass.
type TemporalService interface {
	ExtractTemporal(ctx context.Context, url string) (*TemporalInfo, error)
}
