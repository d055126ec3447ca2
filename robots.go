package campusgpt

import "context"

// UserAgent identifies the crawler to remote servers and is the agent
// robots rules are evaluated for.
const UserAgent = "CampusGPT-Crawler/1.0 (+polite)"

// RobotsPolicy evaluates robots exclusion rules for crawl candidates.
//
// The policy fails open: if the robots file for a host cannot be fetched
// or parsed, URLs on that host are treated as allowed. Crawl correctness
// favors availability over strict compliance when the robots source
// itself is unreachable.
type RobotsPolicy interface {
	// Allowed reports whether the crawler's user agent may fetch the URL.
	Allowed(ctx context.Context, rawURL string) bool
}
