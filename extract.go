package campusgpt

import "strings"

// ExtractResult holds the text extracted from a fetched document.
type ExtractResult struct {
	// Title is the document's declared title. Empty if the document does
	// not declare one; callers fall back to the source URL.
	Title string

	// Text is the extracted plain text with non-content elements removed
	// and whitespace normalized. How aggressively whitespace collapses is
	// up to the extractor; PDF extraction keeps per-page line breaks.
	Text string
}

// Extractor turns raw document bytes into normalized plain text.
// Extraction failures are explicit EINVALID errors, never silently empty
// text; the crawl loop decides to skip and continue.
type Extractor interface {
	// Extract processes raw bytes and returns the title and text.
	Extract(data []byte) (*ExtractResult, error)
}

// LinkExtractor discovers anchor targets in HTML documents.
type LinkExtractor interface {
	// ExtractLinks returns every anchor target resolved against baseURL
	// and canonicalized with NormalizeURL. Non-navigational pseudo-links
	// (mailto:, tel:, javascript:, data:) are excluded.
	ExtractLinks(data []byte, baseURL string) ([]string, error)
}

// CollapseWhitespace reduces all whitespace runs in s to single spaces
// and trims leading and trailing whitespace.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
