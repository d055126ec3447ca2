package main

import (
	"fmt"
	"strings"

	"github.com/eatulrajput/campusgpt"
)

// snippetPreview bounds snippet output for terminal readability.
const snippetPreview = 200

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	results, err := deps.Index.Query(deps.Ctx, query, c.Top)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", campusgpt.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results. Run 'campusgpt crawl' to populate the index.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s (%.4f)\n   %s\n", i+1, r.Title, r.Score, r.URL)
		if snippet := preview(r.Snippet); snippet != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", snippet)
		}
	}
	return nil
}

func preview(snippet string) string {
	runes := []rune(snippet)
	if len(runes) <= snippetPreview {
		return snippet
	}
	return string(runes[:snippetPreview]) + "..."
}
