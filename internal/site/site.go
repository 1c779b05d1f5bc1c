// Package site defines the contract every source adapter honors and
// resolves an engine identifier (a URL or a short adapter name) to the
// adapter that handles it.
//
// Optional behavior is expressed as capability interfaces (FicLinker,
// ScanParser). Callers go through the package-level helpers, which turn a
// missing capability into a typed error instead of a silent no-op.
package site

import (
	"github.com/brogergvhs/ficgrab/internal/fic"
	"github.com/brogergvhs/ficgrab/internal/link"
)

// Site is implemented by every adapter. One value serves one scraping
// session.
//
// An adapter that overrides NormalizeLink must override NormalizeFicLink
// and NormalizeAuthorLink too, or fic and author links skip its rules.
type Site interface {
	Name() string

	NormalizeLink(href, base string) string
	NormalizeFicLink(href, base string) string
	NormalizeAuthorLink(href, base string) string

	// FetchLink returns the URL that should actually be retrieved for href.
	FetchLink(href string) string
}

// FicLinker builds a canonical fic URL from a site-internal id.
type FicLinker interface {
	FicLinkFromID(siteID, baseLink string) (string, error)
}

// ScanParser turns a listing or search page into fic references.
type ScanParser interface {
	ParseScan(scanLink string, html []byte) ([]*fic.Fic, error)
}

// Pager builds the link of page n (1-based) of a listing.
type Pager interface {
	PageLink(scanLink string, n int) string
}

// Constructor creates a fresh adapter value.
type Constructor func() Site

// Base provides the default behavior of the contract. Concrete adapters
// embed it and override what their site needs.
//
// Base's NormalizeFicLink and NormalizeAuthorLink call link.Normalize
// directly, not an overridden NormalizeLink of the embedding type.
type Base struct {
	SiteName string
}

func (b *Base) Name() string {
	return b.SiteName
}

func (b *Base) NormalizeLink(href, base string) string {
	return link.Normalize(href, base)
}

func (b *Base) NormalizeFicLink(href, base string) string {
	return link.Normalize(href, base)
}

func (b *Base) NormalizeAuthorLink(href, base string) string {
	return link.Normalize(href, base)
}

func (b *Base) FetchLink(href string) string {
	return href
}

// FicLinkFromID asks s for a fic URL, failing with *UnimplementedError when
// s cannot build one.
func FicLinkFromID(s Site, siteID, baseLink string) (string, error) {
	fl, ok := s.(FicLinker)
	if !ok {
		return "", &UnimplementedError{Site: s.Name(), Op: "FicLinkFromID"}
	}
	return fl.FicLinkFromID(siteID, baseLink)
}

// ParseScan parses a listing page with s, failing with *UnsupportedError
// when s has no listing parser.
func ParseScan(s Site, scanLink string, html []byte) ([]*fic.Fic, error) {
	sp, ok := s.(ScanParser)
	if !ok {
		return nil, &UnsupportedError{Site: s.Name(), Link: scanLink}
	}
	return sp.ParseScan(scanLink, html)
}

// PageLinks returns the links of the first pages of a listing. Adapters
// that are not a Pager only ever yield scanLink itself.
func PageLinks(s Site, scanLink string, pages int) []string {
	p, ok := s.(Pager)
	if !ok || pages <= 1 {
		return []string{scanLink}
	}

	out := make([]string, 0, pages)
	out = append(out, scanLink)
	for n := 2; n <= pages; n++ {
		out = append(out, p.PageLink(scanLink, n))
	}
	return out
}

// NewFic returns an empty Fic bound to s, or one decoded from obj when obj
// is non-nil. It never fails.
func NewFic(s Site, obj map[string]any) *fic.Fic {
	f := fic.New(s)
	if obj == nil {
		return f
	}
	return f.FromJSON(obj)
}

// Num is link.Num, exposed for adapters parsing counts out of pages.
func Num(n any) (float64, bool) {
	return link.Num(n)
}
