package site

import (
	"net/url"
	"strings"

	"github.com/brogergvhs/ficgrab/internal/link"
)

// Family ties a built-in adapter name to the host string that identifies
// its site.
type Family struct {
	Engine string
	Host   string
}

// Families is checked in order; the first hostname containing Host wins.
var Families = []Family{
	{Engine: "ao3", Host: "archiveofourown.org"},
	{Engine: "ffnet", Host: "fanfiction.net"},
	{Engine: "reddit", Host: "reddit.com"},
	{Engine: "scryer", Host: "scryer.darklordpotter.net"},
	{Engine: "wattpad", Host: "wattpad.com"},
}

// ForumEngine handles any URL that looks like forum software once no
// hostname matched.
const ForumEngine = "xen"

// Matcher maps a parsed URL to an adapter name.
type Matcher struct {
	Engine string
	Match  func(u *url.URL) bool
}

// DefaultMatchers returns the hostname matchers for Families followed by the
// forum path matcher.
//
// Containment is a plain substring test, so "notarchiveofourown.org.example"
// routes to ao3. The forum matcher only looks at path segments that many
// unrelated sites also use; it must stay last so it never shadows a
// hostname match. Add new matchers before it.
func DefaultMatchers() []Matcher {
	out := make([]Matcher, 0, len(Families)+1)
	for _, f := range Families {
		out = append(out, Matcher{Engine: f.Engine, Match: hostContains(f.Host)})
	}
	return append(out, Matcher{Engine: ForumEngine, Match: pathContains("/forums/", "/tags/")})
}

func hostContains(host string) func(*url.URL) bool {
	return func(u *url.URL) bool {
		return strings.Contains(strings.ToLower(u.Hostname()), host)
	}
}

func pathContains(segments ...string) func(*url.URL) bool {
	return func(u *url.URL) bool {
		p := u.EscapedPath()
		for _, s := range segments {
			if strings.Contains(p, s) {
				return true
			}
		}
		return false
	}
}

// parseURL reports the URL and whether it carries a hostname. Stray '%'
// signs are tolerated; other parse errors count as "not a URL".
func parseURL(raw string) (*url.URL, bool) {
	u, err := link.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return nil, false
	}
	return u, true
}
