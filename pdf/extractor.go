// Package pdf provides PDF text extraction for campusgpt.
package pdf

import (
	"bytes"
	"strings"

	"github.com/eatulrajput/campusgpt"
	"github.com/ledongthuc/pdf"
)

// Compile-time interface verification.
var _ campusgpt.Extractor = (*Extractor)(nil)

// Extractor extracts plain text from PDF documents.
type Extractor struct{}

// NewExtractor creates a new PDF Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract concatenates per-page text in page order, joined by newlines.
// PDFs carry no usable document title here; callers derive one from the
// source URL. Malformed documents yield an EINVALID error.
func (e *Extractor) Extract(data []byte) (res *campusgpt.ExtractResult, err error) {
	// The underlying parser panics on some malformed files; turn that
	// into a regular per-URL extraction failure.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = campusgpt.Errorf(campusgpt.EINVALID, "failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, campusgpt.Errorf(campusgpt.EINVALID, "failed to parse PDF: %v", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, campusgpt.Errorf(campusgpt.EINVALID, "failed to extract page %d: %v", i, err)
		}
		pages = append(pages, text)
	}

	return &campusgpt.ExtractResult{
		Text: strings.TrimSpace(strings.Join(pages, "\n")),
	}, nil
}
