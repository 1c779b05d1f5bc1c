// Package wattpad adapts Wattpad.
package wattpad

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brogergvhs/ficgrab/internal/site"
)

const Name = "wattpad"

var reStory = regexp.MustCompile(`^https://(?:www\.)?wattpad\.com/story/(\d+)`)

type Site struct {
	site.Base
}

func New() site.Site {
	return &Site{Base: site.Base{SiteName: Name}}
}

// NormalizeFicLink drops the title slug after the story id.
func (s *Site) NormalizeFicLink(href, base string) string {
	href = s.NormalizeLink(href, base)
	if m := reStory.FindStringSubmatch(href); m != nil {
		return "https://www.wattpad.com/story/" + m[1]
	}
	return href
}

func (s *Site) FicLinkFromID(siteID, _ string) (string, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return "", fmt.Errorf("wattpad: empty story id")
	}
	return "https://www.wattpad.com/story/" + siteID, nil
}
