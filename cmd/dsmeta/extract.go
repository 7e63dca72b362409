package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/dsmeta"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	opts := dsmeta.MetadataOptions{
		License:        c.License,
		Place:          c.Place,
		Temporal:       c.Temporal,
		MaxFollowLinks: c.MaxFollowLinks,
	}
	// No category flags means all categories.
	if !c.License && !c.Place && !c.Temporal {
		opts.License, opts.Place, opts.Temporal = true, true, true
	}

	result, err := deps.Metadata.ExtractMetadata(deps.Ctx, c.URL, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dsmeta.ErrorMessage(err))
		if hint := dsmeta.ErrorHint(err); hint != "" {
			fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
		}
		return err
	}

	if err := c.record(deps, result, opts); err != nil {
		// History is bookkeeping; a failed write should not discard the
		// extraction output.
		fmt.Fprintf(deps.Stderr, "warning: failed to record run: %s\n", dsmeta.ErrorMessage(err))
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printMetadata(deps, result)
	return nil
}

// record stores the run in the extraction history.
func (c *ExtractCmd) record(deps *Dependencies, result *dsmeta.Metadata, opts dsmeta.MetadataOptions) error {
	serialized, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return deps.History.CreateExtraction(deps.Ctx, &dsmeta.Extraction{
		URL:          c.URL,
		Mode:         modeString(opts),
		QualityScore: result.Validation.OverallScore,
		Result:       string(serialized),
	})
}

// modeString names the requested categories for the history record.
func modeString(opts dsmeta.MetadataOptions) string {
	if opts.License && opts.Place && opts.Temporal {
		return "all"
	}
	var modes []string
	if opts.License {
		modes = append(modes, "license")
	}
	if opts.Place {
		modes = append(modes, "place")
	}
	if opts.Temporal {
		modes = append(modes, "temporal")
	}
	return strings.Join(modes, ",")
}

func printMetadata(deps *Dependencies, m *dsmeta.Metadata) {
	fmt.Fprintf(deps.Stdout, "URL: %s\n", m.URL)
	fmt.Fprintf(deps.Stdout, "Overall quality: %.1f/100 (%.1fs)\n", m.Validation.OverallScore, m.ElapsedSeconds)

	if m.License != nil {
		fmt.Fprintln(deps.Stdout, "\nLicense:")
		printCandidate(deps, m.License.BestMatch)
		fmt.Fprintf(deps.Stdout, "  Sources checked: %d\n", len(m.License.AllSources))
		printReport(deps, m.Validation.License)
	}

	if m.Place != nil {
		fmt.Fprintln(deps.Stdout, "\nPlace:")
		if countries := m.Place.GeographicCoverage.Countries; len(countries) > 0 {
			fmt.Fprintf(deps.Stdout, "  Countries: %s\n", strings.Join(countries, ", "))
		}
		if regions := m.Place.GeographicCoverage.Regions; len(regions) > 0 {
			fmt.Fprintf(deps.Stdout, "  Regions: %s\n", strings.Join(regions, ", "))
		}
		if len(m.Place.PlaceTypes) > 0 {
			fmt.Fprintf(deps.Stdout, "  Place types: %s\n", strings.Join(m.Place.PlaceTypes, " > "))
		}
		if systems := m.Place.IDSystems.Systems; len(systems) > 0 {
			fmt.Fprintf(deps.Stdout, "  ID systems: %s\n", strings.Join(systems, ", "))
		}
		if examples := m.Place.IDSystems.Examples; len(examples) > 0 {
			fmt.Fprintf(deps.Stdout, "  Example IDs: %s\n", strings.Join(examples, ", "))
		}
		if m.Place.IDSystems.ResolutionMethod != "" {
			fmt.Fprintf(deps.Stdout, "  ID resolution: %s\n", m.Place.IDSystems.ResolutionMethod)
		}
		printReport(deps, m.Validation.Place)
	}

	if m.Temporal != nil {
		fmt.Fprintln(deps.Stdout, "\nTemporal:")
		period := m.Temporal.CoveragePeriod
		if period.StartDate != "" || period.EndDate != "" {
			fmt.Fprintf(deps.Stdout, "  Coverage: %s to %s\n", period.StartDate, period.EndDate)
		}
		if m.Temporal.UpdateFrequency != "" {
			fmt.Fprintf(deps.Stdout, "  Update frequency: %s\n", m.Temporal.UpdateFrequency)
		}
		if m.Temporal.LastUpdated != "" {
			fmt.Fprintf(deps.Stdout, "  Last updated: %s\n", m.Temporal.LastUpdated)
		}
		if m.Temporal.TemporalResolution != "" {
			fmt.Fprintf(deps.Stdout, "  Resolution: %s\n", m.Temporal.TemporalResolution)
		}
		printReport(deps, m.Validation.Temporal)
	}

	if len(m.Errors) > 0 {
		fmt.Fprintln(deps.Stdout, "\nErrors:")
		for _, e := range m.Errors {
			fmt.Fprintf(deps.Stdout, "  %s\n", e)
		}
	}
}

func printCandidate(deps *Dependencies, c *dsmeta.Candidate) {
	if c == nil {
		fmt.Fprintln(deps.Stdout, "  (none found)")
		return
	}
	if c.LicenseType != "" {
		fmt.Fprintf(deps.Stdout, "  Type: %s\n", c.LicenseType)
	}
	if c.LicenseURL != "" {
		fmt.Fprintf(deps.Stdout, "  URL: %s\n", c.LicenseURL)
	}
	if c.Attribution != "" {
		fmt.Fprintf(deps.Stdout, "  Attribution: %s\n", c.Attribution)
	}
	if c.Restrictions != "" {
		fmt.Fprintf(deps.Stdout, "  Restrictions: %s\n", c.Restrictions)
	}
	fmt.Fprintf(deps.Stdout, "  Confidence: %s\n", c.Confidence)
	fmt.Fprintf(deps.Stdout, "  Source: %s\n", c.SourceURL)
}

func printReport(deps *Dependencies, r *dsmeta.CategoryReport) {
	if r == nil {
		return
	}
	fmt.Fprintf(deps.Stdout, "  Quality: %d/100\n", r.QualityScore)
	for _, w := range r.Warnings {
		fmt.Fprintf(deps.Stdout, "  Warning: %s\n", w)
	}
}
