package dsmeta

import (
	"context"
	"time"
)

// Extraction is one recorded metadata extraction run.
type Extraction struct {
	ID string `json:"id"`

	// URL is the dataset page the extraction ran against.
	URL string `json:"url"`

	// Mode names the categories that were requested ("all", "license", ...).
	Mode string `json:"mode"`

	// QualityScore is the overall validation score of the run.
	QualityScore float64 `json:"qualityScore"`

	// Result is the serialized Metadata document.
	Result string `json:"result"`

	// ResultHash is a content hash of Result, for change detection
	// across repeated runs on the same URL.
	ResultHash string `json:"resultHash"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "extraction URL required")
	}
	if e.Mode == "" {
		return Errorf(EINVALID, "extraction mode required")
	}
	return nil
}

// ExtractionHistory stores recent extraction runs.
type ExtractionHistory interface {
	// CreateExtraction records a run. The ID, hash, and creation time
	// are assigned by the implementation.
	CreateExtraction(ctx context.Context, extraction *Extraction) error

	// RecentExtractions returns up to limit runs, most recent first.
	RecentExtractions(ctx context.Context, limit int) ([]*Extraction, error)
}
