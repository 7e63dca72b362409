package metadata

import (
	"math"

	"github.com/fwojciec/dsmeta"
)

// validateLicense scores the best-match candidate: license type 40,
// license URL 30, attribution 15, confidence 15 (high) or 7 (medium).
func validateLicense(result *dsmeta.ExtractionResult) *dsmeta.CategoryReport {
	report := &dsmeta.CategoryReport{}
	if result == nil || result.BestMatch == nil {
		report.Warnings = append(report.Warnings, "No license information found")
		return report
	}

	best := result.BestMatch
	if best.LicenseType != "" {
		report.QualityScore += 40
	} else {
		report.Warnings = append(report.Warnings, "License type not found")
	}
	if best.LicenseURL != "" {
		report.QualityScore += 30
	} else {
		report.Warnings = append(report.Warnings, "License URL not found")
	}
	if best.Attribution != "" {
		report.QualityScore += 15
	}
	switch best.Confidence {
	case dsmeta.ConfidenceHigh:
		report.QualityScore += 15
	case dsmeta.ConfidenceMedium:
		report.QualityScore += 7
	}
	return report
}

// validatePlace scores geographic metadata: countries 25, regions 15,
// place types 20, ID systems 20, three or more examples 15, resolution
// method 5.
func validatePlace(info *dsmeta.PlaceInfo) *dsmeta.CategoryReport {
	report := &dsmeta.CategoryReport{}
	if info == nil {
		report.Warnings = append(report.Warnings, "No place information found")
		return report
	}

	if len(info.GeographicCoverage.Countries) > 0 {
		report.QualityScore += 25
	} else {
		report.Warnings = append(report.Warnings, "Countries not found")
	}
	if len(info.GeographicCoverage.Regions) > 0 {
		report.QualityScore += 15
	}
	if len(info.PlaceTypes) > 0 {
		report.QualityScore += 20
	} else {
		report.Warnings = append(report.Warnings, "Place types not found")
	}
	if len(info.IDSystems.Systems) > 0 {
		report.QualityScore += 20
	} else {
		report.Warnings = append(report.Warnings, "ID systems not found")
	}
	if len(info.IDSystems.Examples) >= 3 {
		report.QualityScore += 15
	}
	if info.IDSystems.ResolutionMethod != "" {
		report.QualityScore += 5
	} else {
		report.Warnings = append(report.Warnings, "ID resolution method not found")
	}
	return report
}

// validateTemporal scores temporal metadata: start date 35, end date 35,
// update frequency 20, temporal resolution 10.
func validateTemporal(info *dsmeta.TemporalInfo) *dsmeta.CategoryReport {
	report := &dsmeta.CategoryReport{}
	if info == nil {
		report.Warnings = append(report.Warnings, "No temporal information found")
		return report
	}

	if info.CoveragePeriod.StartDate != "" {
		report.QualityScore += 35
	} else {
		report.Warnings = append(report.Warnings, "Start date not found")
	}
	if info.CoveragePeriod.EndDate != "" {
		report.QualityScore += 35
	} else {
		report.Warnings = append(report.Warnings, "End date not found")
	}
	if info.UpdateFrequency != "" {
		report.QualityScore += 20
	} else {
		report.Warnings = append(report.Warnings, "Update frequency not found")
	}
	if info.TemporalResolution != "" {
		report.QualityScore += 10
	}
	return report
}

// overallScore averages the scores of the categories that ran and
// succeeded, rounded to one decimal. Categories that failed or were not
// requested do not dilute the average.
func overallScore(reports ...*dsmeta.CategoryReport) float64 {
	sum, n := 0, 0
	for _, r := range reports {
		if r == nil {
			continue
		}
		sum += r.QualityScore
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}
