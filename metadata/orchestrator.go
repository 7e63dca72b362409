// Package metadata composes the license, place, and temporal
// extractions into one orchestrated run with quality scoring.
package metadata

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/dsmeta"
)

var _ dsmeta.MetadataService = (*Orchestrator)(nil)

// Orchestrator implements dsmeta.MetadataService. Categories run in
// isolation: one category failing records an error and leaves the
// others untouched. Only the services for requested categories need to
// be set.
type Orchestrator struct {
	License  dsmeta.LicenseService
	Place    dsmeta.PlaceService
	Temporal dsmeta.TemporalService

	// Now is the clock used to measure elapsed time. Defaults to
	// time.Now.
	Now func() time.Time
}

// ExtractMetadata runs the requested categories against url and scores
// the combined result. It fails only when opts requests nothing.
func (o *Orchestrator) ExtractMetadata(ctx context.Context, url string, opts dsmeta.MetadataOptions) (*dsmeta.Metadata, error) {
	if !opts.License && !opts.Place && !opts.Temporal {
		return nil, dsmeta.Errorf(dsmeta.EINVALID, "at least one extraction category required")
	}

	now := o.Now
	if now == nil {
		now = time.Now
	}
	start := now()

	result := &dsmeta.Metadata{URL: url}

	if opts.License {
		if extraction, err := o.License.ExtractLicense(ctx, url, opts.MaxFollowLinks); err != nil {
			result.Errors = append(result.Errors, "license: "+errText(err))
		} else {
			result.License = extraction
			result.Validation.License = validateLicense(extraction)
		}
	}

	if opts.Place {
		if info, err := o.Place.ExtractPlace(ctx, url); err != nil {
			result.Errors = append(result.Errors, "place: "+errText(err))
		} else {
			result.Place = info
			result.Validation.Place = validatePlace(info)
		}
	}

	if opts.Temporal {
		if info, err := o.Temporal.ExtractTemporal(ctx, url); err != nil {
			result.Errors = append(result.Errors, "temporal: "+errText(err))
		} else {
			result.Temporal = info
			result.Validation.Temporal = validateTemporal(info)
		}
	}

	result.Validation.OverallScore = overallScore(
		result.Validation.License,
		result.Validation.Place,
		result.Validation.Temporal,
	)
	result.ElapsedSeconds = now().Sub(start).Seconds()
	return result, nil
}

func errText(err error) string {
	var e *dsmeta.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
