// Package xen adapts forums running XenForo (SpaceBattles, Sufficient
// Velocity, Questionable Questing and similar). Nothing here is specific to
// one forum; links are recognized by the XenForo URL layout alone.
package xen

import (
	"bytes"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/brogergvhs/ficgrab/internal/fic"
	"github.com/brogergvhs/ficgrab/internal/site"
)

const Name = "xen"

var (
	reThread   = regexp.MustCompile(`^(https://[^/]+(?:/[^/]+)*?/threads/[^/?#]+?)(?:/(?:page-\d+|post-\d+|unread|latest|reader(?:/page-\d+)?|threadmarks))?/?(?:[?#].*)?$`)
	reThreadID = regexp.MustCompile(`/threads/(?:[^/]*\.)?(\d+)`)
	rePage     = regexp.MustCompile(`/page-\d+$`)
	reMember   = regexp.MustCompile(`^(https://[^/]+(?:/[^/]+)*?/members/[^/?#]+)`)
)

type Site struct {
	site.Base
}

func New() site.Site {
	return &Site{Base: site.Base{SiteName: Name}}
}

// NormalizeFicLink reduces any page, post anchor or reader view of a thread
// to the thread itself.
func (s *Site) NormalizeFicLink(href, base string) string {
	href = s.NormalizeLink(href, base)
	if m := reThread.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return href
}

func (s *Site) NormalizeAuthorLink(href, base string) string {
	href = s.NormalizeLink(href, base)
	if m := reMember.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return href
}

// PageLink appends XenForo's /page-N segment, replacing any already there.
func (s *Site) PageLink(scanLink string, n int) string {
	u, err := url.Parse(s.NormalizeLink(scanLink, ""))
	if err != nil {
		return scanLink
	}

	u.Path = rePage.ReplaceAllString(strings.TrimSuffix(u.Path, "/"), "") + "/page-" + strconv.Itoa(n)
	u.RawPath = ""

	return u.String()
}

// FicLinkFromID needs the forum root, since ids are only unique per forum.
func (s *Site) FicLinkFromID(siteID, baseLink string) (string, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return "", fmt.Errorf("xen: empty thread id")
	}

	baseLink = s.NormalizeLink(baseLink, "")
	if baseLink == "" {
		return "", fmt.Errorf("xen: thread %s needs a forum base link", siteID)
	}

	return baseLink + "/threads/" + siteID, nil
}

// ParseScan reads a forum or tag listing of threads.
func (s *Site) ParseScan(scanLink string, html []byte) ([]*fic.Fic, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("xen: parse %s: %w", scanLink, err)
	}

	var out []*fic.Fic
	seen := map[string]bool{}

	doc.Find(".structItem--thread").Each(func(_ int, item *goquery.Selection) {
		a := item.Find(".structItem-title a[href*='/threads/']").Last()
		href, ok := a.Attr("href")
		if !ok {
			return
		}

		f := site.NewFic(s, nil)
		f.Link = s.NormalizeFicLink(href, scanLink)
		if seen[f.Link] {
			return
		}
		seen[f.Link] = true

		if m := reThreadID.FindStringSubmatch(f.Link); m != nil {
			f.SiteID = m[1]
		}
		f.Title = strings.TrimSpace(a.Text())

		author := item.Find(".structItem-minor .username").First()
		f.Author = strings.TrimSpace(author.Text())
		if ah, ok := author.Attr("href"); ok {
			f.AuthorLink = s.NormalizeAuthorLink(ah, scanLink)
		}

		item.Find("dl.pairs").Each(func(_ int, dl *goquery.Selection) {
			key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(dl.Find("dt").Text()), ":"))
			val := dl.Find("dd").Text()
			switch key {
			case "words":
				f.Words = count(val)
			case "threadmarks":
				f.Chapters = count(val)
			case "replies", "views":
				if f.Raw == nil {
					f.Raw = map[string]any{}
				}
				f.Raw[key] = count(val)
			}
		})
		if ts, ok := item.Find(".structItem-latestDate").Attr("datetime"); ok {
			f.Updated = ts
		}

		item.Find(".structItem-tagBlock a.tagItem").Each(func(_ int, t *goquery.Selection) {
			if tag := strings.TrimSpace(t.Text()); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		})

		out = append(out, f)
	})

	return out, nil
}

// count accepts the abbreviated counts XenForo prints ("1.2k", "3M").
func count(s string) int {
	s = strings.TrimSpace(s)
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		mult, s = 1e3, s[:len(s)-1]
	case strings.HasSuffix(s, "m"), strings.HasSuffix(s, "M"):
		mult, s = 1e6, s[:len(s)-1]
	}

	v, ok := site.Num(s)
	if !ok || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v * mult))
}
