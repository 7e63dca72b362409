// Package temporal extracts temporal coverage metadata from a dataset
// site. Like place extraction, it is a single pass over the combined
// content of a bounded site crawl.
package temporal

import (
	"context"

	"github.com/fwojciec/dsmeta"
)

// MaxPages bounds the site crawl feeding one extraction.
const MaxPages = 3

const prompt = `You are an expert data temporal analyst. Extract PRECISE temporal coverage information with HIGH ACCURACY.

TASK: Identify date ranges, update frequencies, and temporal resolution of the dataset.

INSTRUCTIONS:
1. COVERAGE PERIOD: Find the actual date range this dataset covers
   - Look for: "data from XXXX to YYYY", "time period: ...", "historical data since..."
   - Extract SPECIFIC dates/years (e.g., "1990", "2020-01-01", "1995 to present")
   - If ongoing, use "present" or "ongoing" for end_date
2. UPDATE FREQUENCY: How often is the data updated?
   - Look for: "updated annually", "monthly releases", "real-time", "quarterly updates"
   - Be specific: annual, monthly, quarterly, weekly, daily, hourly, real-time, on-demand
3. TEMPORAL RESOLUTION: What is the time granularity of individual data points?
   - yearly, monthly, weekly, daily, hourly, minute-level
4. LAST UPDATED: When was the dataset last updated?
   - Extract actual dates if mentioned

VALIDATION RULES:
- Only extract information explicitly stated in the content
- For date ranges, provide ACTUAL dates/years found, not estimates
- Be precise about frequency (e.g., "quarterly" not "regularly")
- If uncertain, use "" rather than guessing

Return ONLY valid JSON:
{
    "coverage_period": {
        "start_date": "earliest year/date mentioned (e.g., 1990, 2020-01-01, 1995-Q1)",
        "end_date": "latest year/date or 'present' or 'ongoing' or specific year"
    },
    "update_frequency": "how often updated: annual, monthly, quarterly, weekly, daily, real-time, etc.",
    "last_updated": "when dataset was last updated (YYYY-MM-DD or YYYY or '')",
    "temporal_resolution": "granularity of data: yearly, monthly, weekly, daily, hourly, minute-level"
}
Use "" only if truly not found.`

// temporalResponse mirrors the JSON shape requested by the prompt.
type temporalResponse struct {
	CoveragePeriod struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"coverage_period"`
	UpdateFrequency    string `json:"update_frequency"`
	LastUpdated        string `json:"last_updated"`
	TemporalResolution string `json:"temporal_resolution"`
}

var _ dsmeta.TemporalService = (*Extractor)(nil)

// Extractor implements dsmeta.TemporalService on top of a bounded site
// crawl and a remote extractor.
type Extractor struct {
	Crawler dsmeta.SiteCrawler
	Remote  dsmeta.RemoteExtractor
}

// ExtractTemporal crawls up to three pages from url and extracts
// temporal metadata from their combined content.
func (e *Extractor) ExtractTemporal(ctx context.Context, url string) (*dsmeta.TemporalInfo, error) {
	pages, err := e.Crawler.CrawlSite(ctx, url, MaxPages)
	if err != nil {
		return nil, err
	}
	content := dsmeta.CombineContent(pages, dsmeta.CombinedContentLen)
	if content == "" {
		return nil, dsmeta.Errorf(dsmeta.ENOTFOUND, "no readable content found at %s", url)
	}

	response, err := e.Remote.Analyze(ctx, content, prompt)
	if err != nil {
		return nil, err
	}

	var parsed temporalResponse
	if err := dsmeta.UnmarshalResponse(response, &parsed); err != nil {
		return nil, err
	}

	return &dsmeta.TemporalInfo{
		CoveragePeriod: dsmeta.CoveragePeriod{
			StartDate: parsed.CoveragePeriod.StartDate,
			EndDate:   parsed.CoveragePeriod.EndDate,
		},
		UpdateFrequency:    parsed.UpdateFrequency,
		LastUpdated:        parsed.LastUpdated,
		TemporalResolution: parsed.TemporalResolution,
	}, nil
}
