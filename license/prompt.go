package license

import "fmt"

// extractionPrompt builds the instruction sent alongside page content to
// the remote extractor. The response shape matches licenseResponse.
func extractionPrompt(pageURL string) string {
	return fmt.Sprintf(`Analyze this webpage and extract license or terms of use information for the dataset it describes.

Look for:
- License names (e.g., "Open Government Licence", "CC-BY-4.0", "MIT License")
- Links to license, terms of use, or terms and conditions pages
- Copyright and attribution requirements
- Restrictions on how the data may be used

Return ONLY valid JSON with this exact shape:
{
    "license_type": "license name if found, otherwise 'Terms of Use' or ''",
    "license_url": "URL of the license or terms page if found, otherwise ''",
    "attribution": "required attribution statement if any, otherwise ''",
    "restrictions": "usage restrictions if any, otherwise ''",
    "confidence": "high/medium/low"
}

Use "high" confidence only when the page names a specific license. Use "" for fields the page does not support. Do not invent values.

Page URL: %s`, pageURL)
}
