// Package fic defines the record a site adapter produces for one piece of
// fetched content. Adapters construct records through site.NewFic; the
// record is owned by the caller afterwards.
package fic

import (
	"math"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/brogergvhs/ficgrab/internal/link"
)

// Source is the adapter a Fic is bound to.
type Source interface {
	Name() string
	NormalizeFicLink(href, base string) string
	NormalizeAuthorLink(href, base string) string
}

type Fic struct {
	Link       string   `json:"link,omitempty" mapstructure:"link"`
	SiteID     string   `json:"siteId,omitempty" mapstructure:"siteId"`
	Title      string   `json:"title,omitempty" mapstructure:"title"`
	Author     string   `json:"author,omitempty" mapstructure:"author"`
	AuthorLink string   `json:"authorUrl,omitempty" mapstructure:"authorUrl"`
	Summary    string   `json:"description,omitempty" mapstructure:"description"`
	Words      int      `json:"words,omitempty" mapstructure:"words"`
	Chapters   int      `json:"chapters,omitempty" mapstructure:"chapters"`
	Tags       []string `json:"tags,omitempty" mapstructure:"tags"`
	Updated    string   `json:"modified,omitempty" mapstructure:"modified"`

	// Raw keeps keys the record does not model.
	Raw map[string]any `json:"-" mapstructure:",remain"`

	source Source
}

// New returns an empty Fic bound to src.
func New(src Source) *Fic {
	return &Fic{source: src}
}

// Source returns the adapter the record was created by.
func (f *Fic) Source() Source {
	return f.source
}

// SiteName is the display name of the bound adapter, or "" when unbound.
func (f *Fic) SiteName() string {
	if f.source == nil {
		return ""
	}
	return f.source.Name()
}

// FromJSON fills f from a decoded JSON object and returns f.
//
// Decoding is best effort: values of the wrong shape are skipped and the
// fields that did decode are kept. Links are canonicalized through the
// bound adapter.
func (f *Fic) FromJSON(obj map[string]any) *Fic {
	if obj == nil {
		return f
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       countHook,
		Result:           f,
	})
	if err == nil {
		_ = dec.Decode(obj)
	}

	if f.source != nil {
		f.Link = f.source.NormalizeFicLink(f.Link, "")
		f.AuthorLink = f.source.NormalizeAuthorLink(f.AuthorLink, "")
	}

	return f
}

// countHook lets "1,234" style strings land in integer fields.
func countHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}

	s := data.(string)
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}

	v, _ := link.Num(s)
	if math.IsNaN(v) {
		return data, nil
	}

	return int(v), nil
}
