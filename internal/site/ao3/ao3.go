// Package ao3 adapts Archive of Our Own.
package ao3

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

const Name = "ao3"

const root = "https://archiveofourown.org"

var (
	reWork   = regexp.MustCompile(`^(https://[^/]+/works/\d+)`)
	reUser   = regexp.MustCompile(`^(https://[^/]+/users/[^/?#]+)`)
	reWorkID = regexp.MustCompile(`/works/(\d+)`)
)

type Site struct {
	site.Base
}

func New() site.Site {
	return &Site{Base: site.Base{SiteName: Name}}
}

// NormalizeFicLink trims chapter paths and query strings down to the work.
func (s *Site) NormalizeFicLink(href, base string) string {
	href = s.NormalizeLink(href, base)
	if m := reWork.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return href
}

// NormalizeAuthorLink drops pseud and listing suffixes.
func (s *Site) NormalizeAuthorLink(href, base string) string {
	href = s.NormalizeLink(href, base)
	if m := reUser.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return href
}

// FetchLink skips the adult content interstitial.
func (s *Site) FetchLink(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}

	q := u.Query()
	q.Set("view_adult", "true")
	u.RawQuery = q.Encode()

	return u.String()
}

// PageLink sets the page query parameter AO3 listings paginate with.
func (s *Site) PageLink(scanLink string, n int) string {
	u, err := url.Parse(s.NormalizeLink(scanLink, ""))
	if err != nil {
		return scanLink
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(n))
	u.RawQuery = q.Encode()

	return u.String()
}

func (s *Site) FicLinkFromID(siteID, _ string) (string, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return "", fmt.Errorf("ao3: empty work id")
	}
	return root + "/works/" + siteID, nil
}

// ParseScan reads the work blurbs of a search, tag or bookmark listing.
func (s *Site) ParseScan(scanLink string, html []byte) ([]*fic.Fic, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("ao3: parse %s: %w", scanLink, err)
	}

	var out []*fic.Fic
	seen := map[string]bool{}

	doc.Find("li.work.blurb, li.bookmark.blurb").Each(func(_ int, li *goquery.Selection) {
		a := li.Find("h4.heading a[href*='/works/']").First()
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

		if m := reWorkID.FindStringSubmatch(f.Link); m != nil {
			f.SiteID = m[1]
		}
		f.Title = strings.TrimSpace(a.Text())

		author := li.Find("h4.heading a[rel='author']").First()
		f.Author = strings.TrimSpace(author.Text())
		if ah, ok := author.Attr("href"); ok {
			f.AuthorLink = s.NormalizeAuthorLink(ah, scanLink)
		}

		f.Summary = strings.TrimSpace(li.Find("blockquote.summary").Text())
		f.Words = count(li.Find("dd.words").Text())
		f.Chapters = chapters(li.Find("dd.chapters").Text())
		f.Updated = strings.TrimSpace(li.Find("p.datetime").Text())

		li.Find("ul.tags li a.tag").Each(func(_ int, t *goquery.Selection) {
			if tag := strings.TrimSpace(t.Text()); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		})

		out = append(out, f)
	})

	return out, nil
}

func count(s string) int {
	v, ok := site.Num(s)
	if !ok || math.IsNaN(v) {
		return 0
	}
	return int(v)
}

// chapters reads the posted half of "3/10" or "3/?".
func chapters(s string) int {
	posted, _, _ := strings.Cut(s, "/")
	return count(posted)
}
