package dsmeta

import "context"

// GeographicCoverage lists the territories a dataset covers.
type GeographicCoverage struct {
	Countries []string `json:"countries"`
	Regions   []string `json:"regions"`
}

// PlaceIDSystems describes the identifier schemes a dataset uses for
// places (ISO-3166, NUTS, FIPS, postal codes, ...).
type PlaceIDSystems struct {
	Systems  []string `json:"systems"`
	Examples []string `json:"examples"`

	// ResolutionMethod describes how the identifiers can be looked up
	// (API, lookup table, documentation URL).
	ResolutionMethod string `json:"resolutionMethod,omitempty"`
}

// PlaceInfo is the geographic metadata extracted for a dataset.
type PlaceInfo struct {
	GeographicCoverage GeographicCoverage `json:"geographicCoverage"`
	PlaceTypes         []string           `json:"placeTypes"`
	IDSystems          PlaceIDSystems     `json:"placeIdSystems"`
}

// PlaceService extracts geographic metadata for a URL in a single pass
// (no license-style link following).
type PlaceService interface {
	ExtractPlace(ctx context.Context, url string) (*PlaceInfo, error)
}
