package crawl

import (
	"sync"

	"github.com/eatulrajput/campusgpt"
)

// Compile-time interface verification.
var _ campusgpt.Frontier = (*Frontier)(nil)

// Frontier is an in-memory breadth-first URL frontier with an exact
// visited set. Deduplication is exact rather than probabilistic because
// the visited count doubles as the crawl's page budget accounting.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu      sync.Mutex
	queue   []string
	queued  map[string]bool
	visited map[string]bool
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		queued:  make(map[string]bool),
		visited: make(map[string]bool),
	}
}

// Push appends a URL to the queue.
// Returns false if the URL is already queued or has been visited.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queued[url] || f.visited[url] {
		return false
	}
	f.queued[url] = true
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the oldest queued URL (FIFO).
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.queued, url)
	return url, true
}

// Visit marks a URL as visited.
// Returns false if it was already visited.
func (f *Frontier) Visit(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.visited[url] {
		return false
	}
	f.visited[url] = true
	return true
}

// Visited returns true if the URL has been visited.
func (f *Frontier) Visited(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited[url]
}

// VisitedCount returns the size of the visited set.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.visited)
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
