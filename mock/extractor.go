package mock

import (
	"github.com/eatulrajput/campusgpt"
)

// Compile-time interface verification.
var (
	_ campusgpt.Extractor     = (*Extractor)(nil)
	_ campusgpt.LinkExtractor = (*LinkExtractor)(nil)
)

// Extractor is a mock implementation of campusgpt.Extractor.
type Extractor struct {
	ExtractFn func(data []byte) (*campusgpt.ExtractResult, error)
}

func (e *Extractor) Extract(data []byte) (*campusgpt.ExtractResult, error) {
	return e.ExtractFn(data)
}

// LinkExtractor is a mock implementation of campusgpt.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(data []byte, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(data []byte, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(data, baseURL)
}
