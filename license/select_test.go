package license_test

import (
	"testing"

	"github.com/fwojciec/dsmeta"
	"github.com/fwojciec/dsmeta/license"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("confidence dominates completeness", func(t *testing.T) {
		t.Parallel()

		a := &dsmeta.Candidate{Confidence: dsmeta.ConfidenceHigh}
		b := &dsmeta.Candidate{
			Confidence:   dsmeta.ConfidenceMedium,
			LicenseType:  "CC-BY-4.0",
			LicenseURL:   "https://example.com/license",
			Attribution:  "Example Corp",
			Restrictions: "None",
		}
		assert.Positive(t, license.Compare(a, b))
	})

	t.Run("completeness breaks confidence ties", func(t *testing.T) {
		t.Parallel()

		a := &dsmeta.Candidate{Confidence: dsmeta.ConfidenceHigh, LicenseType: "CC-BY-4.0"}
		b := &dsmeta.Candidate{
			Confidence:  dsmeta.ConfidenceHigh,
			LicenseType: "CC-BY-4.0",
			LicenseURL:  "https://example.com/license",
		}
		assert.Negative(t, license.Compare(a, b))
	})

	t.Run("link score breaks completeness ties", func(t *testing.T) {
		t.Parallel()

		a := &dsmeta.Candidate{Confidence: dsmeta.ConfidenceHigh, LicenseType: "CC-BY-4.0", LinkScore: 8}
		b := &dsmeta.Candidate{Confidence: dsmeta.ConfidenceHigh, LicenseType: "MIT", LinkScore: 3}
		assert.Positive(t, license.Compare(a, b))
	})

	t.Run("full tie", func(t *testing.T) {
		t.Parallel()

		a := &dsmeta.Candidate{Confidence: dsmeta.ConfidenceLow}
		b := &dsmeta.Candidate{Confidence: dsmeta.ConfidenceLow}
		assert.Zero(t, license.Compare(a, b))
	})
}

func TestBest(t *testing.T) {
	t.Parallel()

	t.Run("earlier candidate wins ties", func(t *testing.T) {
		t.Parallel()

		first := &dsmeta.Candidate{SourceURL: "https://example.com/a", Confidence: dsmeta.ConfidenceLow}
		second := &dsmeta.Candidate{SourceURL: "https://example.com/b", Confidence: dsmeta.ConfidenceLow}
		assert.Same(t, first, license.Best([]*dsmeta.Candidate{first, second}))
	})

	t.Run("followed page beats empty main page", func(t *testing.T) {
		t.Parallel()

		main := &dsmeta.Candidate{SourceURL: "https://example.com/", Confidence: dsmeta.ConfidenceLow}
		followed := &dsmeta.Candidate{
			SourceURL:   "https://example.com/license",
			LicenseType: "CC-BY-4.0",
			Confidence:  dsmeta.ConfidenceHigh,
			LinkScore:   8,
		}
		assert.Same(t, followed, license.Best([]*dsmeta.Candidate{main, followed}))
	})

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, license.Best(nil))
	})
}
