// Package goquery provides HTML content and link extraction for campusgpt
// using CSS selectors.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/eatulrajput/campusgpt"
	"golang.org/x/net/html"
)

// nonContentSelector matches elements that never contribute visible page
// text: executable code, styling, boilerplate chrome and inline metadata.
const nonContentSelector = "script, style, noscript, header, footer, svg, meta, nav"

// Compile-time interface verification.
var _ campusgpt.Extractor = (*Extractor)(nil)

// Extractor extracts the visible text of an HTML document.
type Extractor struct{}

// NewExtractor creates a new HTML Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup, removes non-content elements and returns the
// declared title and the whitespace-collapsed visible text. The title is
// empty if the document does not declare a non-empty one.
func (e *Extractor) Extract(data []byte) (*campusgpt.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, campusgpt.Errorf(campusgpt.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(nonContentSelector).Remove()

	// The html5 parser guarantees a body element, so head-only metadata
	// (title, link) never leaks into the extracted text.
	var sb strings.Builder
	for _, node := range doc.Find("body").Nodes {
		collectText(node, &sb)
	}

	return &campusgpt.ExtractResult{
		Title: title,
		Text:  campusgpt.CollapseWhitespace(sb.String()),
	}, nil
}

// collectText appends the document's text nodes separated by spaces so
// that text from adjacent elements does not fuse into one token.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
