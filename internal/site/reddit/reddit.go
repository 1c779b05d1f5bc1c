// Package reddit adapts reddit threads.
package reddit

import (
	"net/url"
	"strings"

	"github.com/brogergvhs/ficgrab/internal/site"
)

const Name = "reddit"

const canonicalHost = "www.reddit.com"

type Site struct {
	site.Base
}

func New() site.Site {
	return &Site{Base: site.Base{SiteName: Name}}
}

// NormalizeLink folds the old., np. and m. mirrors onto www.reddit.com and
// drops query strings, which only carry tracking and sort state.
func (s *Site) NormalizeLink(href, base string) string {
	href = s.Base.NormalizeLink(href, base)

	u, err := url.Parse(href)
	if err != nil || !isReddit(u.Hostname()) {
		return href
	}

	u.Host = canonicalHost
	u.RawQuery = ""

	return strings.TrimSuffix(u.String(), "/")
}

func (s *Site) NormalizeFicLink(href, base string) string {
	return s.NormalizeLink(href, base)
}

func (s *Site) NormalizeAuthorLink(href, base string) string {
	return s.NormalizeLink(href, base)
}

func isReddit(host string) bool {
	host = strings.ToLower(host)
	return host == "reddit.com" || strings.HasSuffix(host, ".reddit.com")
}
