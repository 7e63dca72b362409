package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/dsmeta"
	main "github.com/fwojciec/dsmeta/cmd/dsmeta"
	"github.com/fwojciec/dsmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMetadata(url string) *dsmeta.Metadata {
	best := &dsmeta.Candidate{
		SourceURL:   url + "license",
		LicenseType: "CC-BY-4.0",
		LicenseURL:  url + "license",
		Confidence:  dsmeta.ConfidenceHigh,
		LinkScore:   8,
	}
	return &dsmeta.Metadata{
		URL: url,
		License: &dsmeta.ExtractionResult{
			BestMatch:  best,
			Followed:   []*dsmeta.Candidate{best},
			AllSources: []*dsmeta.Candidate{best},
		},
		Place: &dsmeta.PlaceInfo{
			GeographicCoverage: dsmeta.GeographicCoverage{Countries: []string{"Canada"}},
			PlaceTypes:         []string{"Country"},
		},
		Temporal: &dsmeta.TemporalInfo{
			CoveragePeriod:  dsmeta.CoveragePeriod{StartDate: "1990", EndDate: "present"},
			UpdateFrequency: "annual",
		},
		Validation: dsmeta.Validation{
			License:      &dsmeta.CategoryReport{QualityScore: 85},
			Place:        &dsmeta.CategoryReport{QualityScore: 45, Warnings: []string{"ID systems not found"}},
			Temporal:     &dsmeta.CategoryReport{QualityScore: 90},
			OverallScore: 73.3,
		},
		ElapsedSeconds: 2.5,
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("defaults to all categories", func(t *testing.T) {
		t.Parallel()

		var gotOpts dsmeta.MetadataOptions
		metadataSvc := &mock.MetadataService{
			ExtractMetadataFn: func(ctx context.Context, url string, opts dsmeta.MetadataOptions) (*dsmeta.Metadata, error) {
				gotOpts = opts
				return fullMetadata(url), nil
			},
		}
		var recorded *dsmeta.Extraction
		history := &mock.ExtractionHistory{
			CreateExtractionFn: func(ctx context.Context, e *dsmeta.Extraction) error {
				recorded = e
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Metadata: metadataSvc,
			History:  history,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/", MaxFollowLinks: 3}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, gotOpts.License)
		assert.True(t, gotOpts.Place)
		assert.True(t, gotOpts.Temporal)
		assert.Equal(t, 3, gotOpts.MaxFollowLinks)

		output := stdout.String()
		assert.Contains(t, output, "CC-BY-4.0")
		assert.Contains(t, output, "Canada")
		assert.Contains(t, output, "1990")
		assert.Contains(t, output, "73.3")
		assert.Contains(t, output, "ID systems not found")
		assert.Empty(t, stderr.String())

		require.NotNil(t, recorded)
		assert.Equal(t, "all", recorded.Mode)
		assert.Equal(t, 73.3, recorded.QualityScore)
		assert.NotEmpty(t, recorded.Result)
	})

	t.Run("category flags narrow the request", func(t *testing.T) {
		t.Parallel()

		var gotOpts dsmeta.MetadataOptions
		metadataSvc := &mock.MetadataService{
			ExtractMetadataFn: func(ctx context.Context, url string, opts dsmeta.MetadataOptions) (*dsmeta.Metadata, error) {
				gotOpts = opts
				return &dsmeta.Metadata{URL: url}, nil
			},
		}
		var recorded *dsmeta.Extraction
		history := &mock.ExtractionHistory{
			CreateExtractionFn: func(ctx context.Context, e *dsmeta.Extraction) error {
				recorded = e
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Metadata: metadataSvc,
			History:  history,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/", License: true, MaxFollowLinks: 3}
		require.NoError(t, cmd.Run(deps))

		assert.True(t, gotOpts.License)
		assert.False(t, gotOpts.Place)
		assert.False(t, gotOpts.Temporal)
		require.NotNil(t, recorded)
		assert.Equal(t, "license", recorded.Mode)
	})

	t.Run("json output round-trips", func(t *testing.T) {
		t.Parallel()

		metadataSvc := &mock.MetadataService{
			ExtractMetadataFn: func(ctx context.Context, url string, opts dsmeta.MetadataOptions) (*dsmeta.Metadata, error) {
				return fullMetadata(url), nil
			},
		}
		history := &mock.ExtractionHistory{
			CreateExtractionFn: func(ctx context.Context, e *dsmeta.Extraction) error { return nil },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Metadata: metadataSvc,
			History:  history,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/", JSON: true, MaxFollowLinks: 3}
		require.NoError(t, cmd.Run(deps))

		var decoded dsmeta.Metadata
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		assert.Equal(t, "https://example.com/", decoded.URL)
		assert.Equal(t, 73.3, decoded.Validation.OverallScore)
		require.NotNil(t, decoded.License)
		assert.Equal(t, "CC-BY-4.0", decoded.License.BestMatch.LicenseType)
	})

	t.Run("prints hint on failure", func(t *testing.T) {
		t.Parallel()

		metadataSvc := &mock.MetadataService{
			ExtractMetadataFn: func(ctx context.Context, url string, opts dsmeta.MetadataOptions) (*dsmeta.Metadata, error) {
				return nil, dsmeta.Errorf(dsmeta.ETOOLARGE, "content exceeds size limit")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Metadata: metadataSvc,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/", MaxFollowLinks: 3}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "content exceeds size limit")
		assert.Contains(t, stderr.String(), "Hint:")
		assert.Empty(t, stdout.String())
	})

	t.Run("history write failure does not discard output", func(t *testing.T) {
		t.Parallel()

		metadataSvc := &mock.MetadataService{
			ExtractMetadataFn: func(ctx context.Context, url string, opts dsmeta.MetadataOptions) (*dsmeta.Metadata, error) {
				return fullMetadata(url), nil
			},
		}
		history := &mock.ExtractionHistory{
			CreateExtractionFn: func(ctx context.Context, e *dsmeta.Extraction) error {
				return dsmeta.Errorf(dsmeta.EINTERNAL, "database error")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Metadata: metadataSvc,
			History:  history,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/", MaxFollowLinks: 3}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "CC-BY-4.0")
		assert.Contains(t, stderr.String(), "warning:")
	})
}
