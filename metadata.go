package dsmeta

import "context"

// CategoryReport holds the quality assessment for one metadata category.
type CategoryReport struct {
	// QualityScore is a weighted field-presence score, 0-100.
	QualityScore int `json:"qualityScore"`

	// Warnings describes the fields that were not found.
	Warnings []string `json:"warnings,omitempty"`
}

// Validation aggregates per-category quality reports. Categories that
// were not requested are nil and excluded from the overall score.
type Validation struct {
	License  *CategoryReport `json:"license,omitempty"`
	Place    *CategoryReport `json:"place,omitempty"`
	Temporal *CategoryReport `json:"temporal,omitempty"`

	// OverallScore is the unweighted average of the scores of the
	// categories that were requested and succeeded, rounded to one
	// decimal.
	OverallScore float64 `json:"overallScore"`
}

// Metadata is the aggregate result of one orchestrated extraction.
type Metadata struct {
	URL      string            `json:"url"`
	License  *ExtractionResult `json:"license,omitempty"`
	Place    *PlaceInfo        `json:"place,omitempty"`
	Temporal *TemporalInfo     `json:"temporal,omitempty"`

	Validation Validation `json:"validation"`

	// Errors holds per-category failure descriptions. A category's
	// failure never aborts the others.
	Errors []string `json:"errors,omitempty"`

	// ElapsedSeconds is the wall-clock duration of the whole run.
	ElapsedSeconds float64 `json:"elapsedSeconds"`
}

// MetadataOptions toggles the independent sub-extractions.
type MetadataOptions struct {
	License  bool
	Place    bool
	Temporal bool

	// MaxFollowLinks bounds license link-following; <= 0 means main
	// page only.
	MaxFollowLinks int
}

// MetadataService composes the three category extractions and scores the
// result.
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string, opts MetadataOptions) (*Metadata, error)
}
