// Package dsmeta extracts license, geographic, and temporal metadata from
// dataset web pages. It combines local HTML scraping with remote LLM-based
// content analysis: a page is fetched and cleaned locally, license-related
// links are discovered and scored by keyword specificity, and each
// candidate page is analyzed by a hosted model. A deterministic selection
// policy reduces the candidates to a single best match.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package dsmeta
