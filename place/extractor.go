// Package place extracts geographic metadata from a dataset site. It is
// a single-pass extraction: a bounded crawl gathers a few pages, their
// combined content goes to the remote extractor once.
package place

import (
	"context"

	"github.com/fwojciec/dsmeta"
)

// MaxPages bounds the site crawl feeding one extraction.
const MaxPages = 3

const prompt = `You are an expert geographic data analyst. Extract PRECISE geographic and place information with HIGH ACCURACY.

TASK: Identify geographic coverage, place types, and ID resolution methods.

INSTRUCTIONS:
1. GEOGRAPHIC COVERAGE: List all countries, regions, states, provinces explicitly mentioned
2. PLACE TYPES: Identify the hierarchical levels (e.g., Country > Province > County > City > Municipality)
3. PLACE ID SYSTEMS: Find ID/code systems used to identify places
   - Look for: ISO codes (ISO-3166-1, ISO-3166-2), NUTS codes, FIPS codes, postal codes, statistical codes
   - Extract actual example IDs from the content (e.g., "CA" for Canada, "US-NY" for New York)
4. ID RESOLUTION METHOD: Describe HOW to resolve/lookup these IDs (APIs, lookup tables, documentation links)

VALIDATION RULES:
- Only include information explicitly found in the content
- For ID systems, provide REAL examples from the page, not made-up ones
- Be specific about ID resolution (e.g., "ISO 3166-1 alpha-2 codes resolvable via iso.org")

Return ONLY valid JSON:
{
    "geographic_coverage": {
        "countries": ["list all countries explicitly mentioned"],
        "regions": ["list states/provinces/regions explicitly mentioned"]
    },
    "place_types": ["list hierarchical place types found: Country, Province, County, City, etc."],
    "place_id_systems": {
        "systems": ["list ID systems like ISO-3166-1, ISO-3166-2, NUTS, postal codes, FIPS"],
        "examples": ["provide 5-10 ACTUAL example IDs extracted from content"],
        "resolution_method": "describe how to resolve these IDs (API, lookup table, documentation URL)"
    }
}
Use "" or [] only if truly not found.`

// placeResponse mirrors the JSON shape requested by the prompt.
type placeResponse struct {
	GeographicCoverage struct {
		Countries []string `json:"countries"`
		Regions   []string `json:"regions"`
	} `json:"geographic_coverage"`
	PlaceTypes     []string `json:"place_types"`
	PlaceIDSystems struct {
		Systems          []string `json:"systems"`
		Examples         []string `json:"examples"`
		ResolutionMethod string   `json:"resolution_method"`
	} `json:"place_id_systems"`
}

var _ dsmeta.PlaceService = (*Extractor)(nil)

// Extractor implements dsmeta.PlaceService on top of a bounded site
// crawl and a remote extractor.
type Extractor struct {
	Crawler dsmeta.SiteCrawler
	Remote  dsmeta.RemoteExtractor
}

// ExtractPlace crawls up to three pages from url and extracts
// geographic metadata from their combined content.
func (e *Extractor) ExtractPlace(ctx context.Context, url string) (*dsmeta.PlaceInfo, error) {
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

	var parsed placeResponse
	if err := dsmeta.UnmarshalResponse(response, &parsed); err != nil {
		return nil, err
	}

	return &dsmeta.PlaceInfo{
		GeographicCoverage: dsmeta.GeographicCoverage{
			Countries: parsed.GeographicCoverage.Countries,
			Regions:   parsed.GeographicCoverage.Regions,
		},
		PlaceTypes: parsed.PlaceTypes,
		IDSystems: dsmeta.PlaceIDSystems{
			Systems:          parsed.PlaceIDSystems.Systems,
			Examples:         parsed.PlaceIDSystems.Examples,
			ResolutionMethod: parsed.PlaceIDSystems.ResolutionMethod,
		},
	}, nil
}
