// Package link holds the string-level canonicalization rules every site
// adapter shares. Nothing here performs I/O or returns errors.
package link

import (
	"strings"
)

// Normalize returns the canonical form of href.
//
// An empty href is returned as is. When base is set, href is resolved
// against it. Stray '%' signs do not make a link unparseable; if either
// side still fails to parse, href is kept as if it were already absolute.
// A literal leading "http:" becomes "https:" and exactly one trailing slash
// is dropped.
func Normalize(href, base string) string {
	if href == "" {
		return href
	}

	if base != "" {
		href = resolve(base, href)
	}

	if strings.HasPrefix(href, "http:") {
		href = "https:" + strings.TrimPrefix(href, "http:")
	}

	return strings.TrimSuffix(href, "/")
}

func resolve(base, href string) string {
	b, err := Parse(base)
	if err != nil {
		return href
	}

	ref, err := Parse(href)
	if err != nil {
		return href
	}

	out := b.ResolveReference(ref).String()

	// Stray '%' signs were escaped only to parse; hand them back as written.
	stray := escapeStrayPercent(base) != base || escapeStrayPercent(href) != href
	if stray && !strings.Contains(base+href, "%25") {
		out = strings.ReplaceAll(out, "%25", "%")
	}
	return out
}
