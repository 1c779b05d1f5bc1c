// Package ffnet adapts FanFiction.net.
package ffnet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brogergvhs/ficgrab/internal/site"
)

const Name = "ffnet"

var (
	reStory  = regexp.MustCompile(`^https://(?:www\.|m\.)?fanfiction\.net/s/(\d+)`)
	reAuthor = regexp.MustCompile(`^https://(?:www\.|m\.)?fanfiction\.net/u/(\d+)`)
)

type Site struct {
	site.Base
}

func New() site.Site {
	return &Site{Base: site.Base{SiteName: Name}}
}

// NormalizeFicLink keeps only the story id, so chapter and slug variants
// of one story compare equal.
func (s *Site) NormalizeFicLink(href, base string) string {
	href = s.NormalizeLink(href, base)
	if m := reStory.FindStringSubmatch(href); m != nil {
		return "https://www.fanfiction.net/s/" + m[1]
	}
	return href
}

func (s *Site) NormalizeAuthorLink(href, base string) string {
	href = s.NormalizeLink(href, base)
	if m := reAuthor.FindStringSubmatch(href); m != nil {
		return "https://www.fanfiction.net/u/" + m[1]
	}
	return href
}

func (s *Site) FicLinkFromID(siteID, _ string) (string, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return "", fmt.Errorf("ffnet: empty story id")
	}
	return "https://www.fanfiction.net/s/" + siteID, nil
}
