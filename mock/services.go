package mock

import (
	"context"

	"github.com/fwojciec/dsmeta"
)

var _ dsmeta.LicenseService = (*LicenseService)(nil)

// LicenseService is a mock implementation of dsmeta.LicenseService.
type LicenseService struct {
	ExtractLicenseFn func(ctx context.Context, url string, maxFollowLinks int) (*dsmeta.ExtractionResult, error)
}

func (s *LicenseService) ExtractLicense(ctx context.Context, url string, maxFollowLinks int) (*dsmeta.ExtractionResult, error) {
	return s.ExtractLicenseFn(ctx, url, maxFollowLinks)
}

var _ dsmeta.PlaceService = (*PlaceService)(nil)

// PlaceService is a mock implementation of dsmeta.PlaceService.
type PlaceService struct {
	ExtractPlaceFn func(ctx context.Context, url string) (*dsmeta.PlaceInfo, error)
}

func (s *PlaceService) ExtractPlace(ctx context.Context, url string) (*dsmeta.PlaceInfo, error) {
	return s.ExtractPlaceFn(ctx, url)
}

var _ dsmeta.TemporalService = (*TemporalService)(nil)

// TemporalService is a mock implementation of dsmeta.TemporalService.
type TemporalService struct {
	ExtractTemporalFn func(ctx context.Context, url string) (*dsmeta.TemporalInfo, error)
}

func (s *TemporalService) ExtractTemporal(ctx context.Context, url string) (*dsmeta.TemporalInfo, error) {
	return s.ExtractTemporalFn(ctx, url)
}

var _ dsmeta.MetadataService = (*MetadataService)(nil)

// MetadataService is a mock implementation of dsmeta.MetadataService.
type MetadataService struct {
	ExtractMetadataFn func(ctx context.Context, url string, opts dsmeta.MetadataOptions) (*dsmeta.Metadata, error)
}

func (s *MetadataService) ExtractMetadata(ctx context.Context, url string, opts dsmeta.MetadataOptions) (*dsmeta.Metadata, error) {
	return s.ExtractMetadataFn(ctx, url, opts)
}

var _ dsmeta.ExtractionHistory = (*ExtractionHistory)(nil)

// ExtractionHistory is a mock implementation of dsmeta.ExtractionHistory.
type ExtractionHistory struct {
	CreateExtractionFn  func(ctx context.Context, extraction *dsmeta.Extraction) error
	RecentExtractionsFn func(ctx context.Context, limit int) ([]*dsmeta.Extraction, error)
}

func (h *ExtractionHistory) CreateExtraction(ctx context.Context, extraction *dsmeta.Extraction) error {
	return h.CreateExtractionFn(ctx, extraction)
}

func (h *ExtractionHistory) RecentExtractions(ctx context.Context, limit int) ([]*dsmeta.Extraction, error) {
	return h.RecentExtractionsFn(ctx, limit)
}
