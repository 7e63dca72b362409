package metadata_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/dsmeta"
	"github.com/fwojciec/dsmeta/metadata"
	"github.com/fwojciec/dsmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrchestrator_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("all categories", func(t *testing.T) {
		t.Parallel()

		o := &metadata.Orchestrator{
			License: &mock.LicenseService{
				ExtractLicenseFn: func(ctx context.Context, url string, maxFollowLinks int) (*dsmeta.ExtractionResult, error) {
					assert.Equal(t, 3, maxFollowLinks)
					best := &dsmeta.Candidate{
						SourceURL:   url,
						LicenseType: "CC-BY-4.0",
						LicenseURL:  "https://example.com/license",
						Attribution: "Example Corp",
						Confidence:  dsmeta.ConfidenceHigh,
					}
					return &dsmeta.ExtractionResult{
						MainPage:   best,
						BestMatch:  best,
						AllSources: []*dsmeta.Candidate{best},
					}, nil
				},
			},
			Place: &mock.PlaceService{
				ExtractPlaceFn: func(ctx context.Context, url string) (*dsmeta.PlaceInfo, error) {
					return &dsmeta.PlaceInfo{
						GeographicCoverage: dsmeta.GeographicCoverage{
							Countries: []string{"Canada"},
							Regions:   []string{"Ontario"},
						},
						PlaceTypes: []string{"Country", "Province"},
						IDSystems: dsmeta.PlaceIDSystems{
							Systems:          []string{"ISO-3166-2"},
							Examples:         []string{"CA-ON", "CA-QC", "CA-BC"},
							ResolutionMethod: "via iso.org",
						},
					}, nil
				},
			},
			Temporal: &mock.TemporalService{
				ExtractTemporalFn: func(ctx context.Context, url string) (*dsmeta.TemporalInfo, error) {
					return &dsmeta.TemporalInfo{
						CoveragePeriod:     dsmeta.CoveragePeriod{StartDate: "1990", EndDate: "present"},
						UpdateFrequency:    "annual",
						TemporalResolution: "yearly",
					}, nil
				},
			},
		}

		m, err := o.ExtractMetadata(context.Background(), "https://example.com/", dsmeta.MetadataOptions{
			License:        true,
			Place:          true,
			Temporal:       true,
			MaxFollowLinks: 3,
		})
		require.NoError(t, err)

		require.NotNil(t, m.Validation.License)
		assert.Equal(t, 100, m.Validation.License.QualityScore)
		assert.Empty(t, m.Validation.License.Warnings)

		require.NotNil(t, m.Validation.Place)
		assert.Equal(t, 100, m.Validation.Place.QualityScore)

		require.NotNil(t, m.Validation.Temporal)
		assert.Equal(t, 100, m.Validation.Temporal.QualityScore)

		assert.Equal(t, 100.0, m.Validation.OverallScore)
		assert.Empty(t, m.Errors)
	})

	t.Run("category failure does not abort the others", func(t *testing.T) {
		t.Parallel()

		o := &metadata.Orchestrator{
			License: &mock.LicenseService{
				ExtractLicenseFn: func(ctx context.Context, url string, maxFollowLinks int) (*dsmeta.ExtractionResult, error) {
					return nil, dsmeta.Errorf(dsmeta.ETIMEOUT, "extraction timed out")
				},
			},
			Temporal: &mock.TemporalService{
				ExtractTemporalFn: func(ctx context.Context, url string) (*dsmeta.TemporalInfo, error) {
					return &dsmeta.TemporalInfo{
						CoveragePeriod: dsmeta.CoveragePeriod{StartDate: "1990", EndDate: "2020"},
					}, nil
				},
			},
		}

		m, err := o.ExtractMetadata(context.Background(), "https://example.com/", dsmeta.MetadataOptions{
			License:  true,
			Temporal: true,
		})
		require.NoError(t, err)
		assert.Nil(t, m.License)
		assert.Nil(t, m.Validation.License)
		require.NotNil(t, m.Temporal)
		require.Len(t, m.Errors, 1)
		assert.Equal(t, "license: extraction timed out", m.Errors[0])

		// Only the succeeded category counts toward the overall score.
		assert.Equal(t, 70.0, m.Validation.OverallScore)
	})

	t.Run("subset of categories", func(t *testing.T) {
		t.Parallel()

		o := &metadata.Orchestrator{
			Temporal: &mock.TemporalService{
				ExtractTemporalFn: func(ctx context.Context, url string) (*dsmeta.TemporalInfo, error) {
					return &dsmeta.TemporalInfo{UpdateFrequency: "monthly"}, nil
				},
			},
		}

		m, err := o.ExtractMetadata(context.Background(), "https://example.com/", dsmeta.MetadataOptions{Temporal: true})
		require.NoError(t, err)
		assert.Nil(t, m.Validation.License)
		assert.Nil(t, m.Validation.Place)
		require.NotNil(t, m.Validation.Temporal)
		assert.Equal(t, 20, m.Validation.Temporal.QualityScore)
		assert.Equal(t, 20.0, m.Validation.OverallScore)
	})

	t.Run("no categories requested", func(t *testing.T) {
		t.Parallel()

		o := &metadata.Orchestrator{}
		_, err := o.ExtractMetadata(context.Background(), "https://example.com/", dsmeta.MetadataOptions{})
		require.Error(t, err)
		assert.Equal(t, dsmeta.EINVALID, dsmeta.ErrorCode(err))
	})

	t.Run("overall score rounds to one decimal", func(t *testing.T) {
		t.Parallel()

		o := &metadata.Orchestrator{
			License: &mock.LicenseService{
				ExtractLicenseFn: func(ctx context.Context, url string, maxFollowLinks int) (*dsmeta.ExtractionResult, error) {
					best := &dsmeta.Candidate{
						SourceURL:   url,
						LicenseType: "CC-BY-4.0",
						Confidence:  dsmeta.ConfidenceMedium,
					}
					return &dsmeta.ExtractionResult{BestMatch: best, AllSources: []*dsmeta.Candidate{best}}, nil
				},
			},
			Temporal: &mock.TemporalService{
				ExtractTemporalFn: func(ctx context.Context, url string) (*dsmeta.TemporalInfo, error) {
					return &dsmeta.TemporalInfo{
						CoveragePeriod: dsmeta.CoveragePeriod{StartDate: "1990"},
					}, nil
				},
			},
		}

		m, err := o.ExtractMetadata(context.Background(), "https://example.com/", dsmeta.MetadataOptions{
			License:  true,
			Temporal: true,
		})
		require.NoError(t, err)

		// license 47, temporal 35, average 41.
		assert.Equal(t, 47, m.Validation.License.QualityScore)
		assert.Equal(t, 35, m.Validation.Temporal.QualityScore)
		assert.Equal(t, 41.0, m.Validation.OverallScore)
	})

	t.Run("measures elapsed time", func(t *testing.T) {
		t.Parallel()

		clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		o := &metadata.Orchestrator{
			Temporal: &mock.TemporalService{
				ExtractTemporalFn: func(ctx context.Context, url string) (*dsmeta.TemporalInfo, error) {
					clock = clock.Add(1500 * time.Millisecond)
					return &dsmeta.TemporalInfo{}, nil
				},
			},
			Now: func() time.Time { return clock },
		}

		m, err := o.ExtractMetadata(context.Background(), "https://example.com/", dsmeta.MetadataOptions{Temporal: true})
		require.NoError(t, err)
		assert.Equal(t, 1.5, m.ElapsedSeconds)
	})
}
