// Package scryer adapts the Scryer search index. It relies entirely on the
// contract defaults.
package scryer

import "github.com/brogergvhs/ficgrab/internal/site"

const Name = "scryer"

type Site struct {
	site.Base
}

func New() site.Site {
	return &Site{Base: site.Base{SiteName: Name}}
}
