package campusgpt

import (
	"net/url"
	"strings"
)

// NormalizeURL resolves a possibly-relative link against a base URL and
// returns the canonical form scheme://host/path with query and fragment
// stripped. Normalization is deterministic and idempotent: normalizing an
// already-canonical URL returns it unchanged.
func NormalizeURL(base, link string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL %q: %v", base, err)
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", Errorf(EINVALID, "invalid link %q: %v", link, err)
	}
	resolved := b.ResolveReference(ref)
	resolved.RawQuery = ""
	resolved.Fragment = ""
	resolved.RawFragment = ""
	return resolved.String(), nil
}

// InScope reports whether the URL's host equals rootDomain or is a true
// subdomain of it. Matching is dot-boundary aware: "evilkiit.ac.in" is
// not in scope for root "kiit.ac.in" but "www.kiit.ac.in" is.
func InScope(rawURL, rootDomain string) bool {
	if rootDomain == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	root := strings.ToLower(strings.TrimSuffix(rootDomain, "."))
	return host == root || strings.HasSuffix(host, "."+root)
}
