// Package builtin wires the adapters that ship with ficgrab into a
// site.Registry.
package builtin

import (
	"github.com/brogergvhs/ficgrab/internal/site"
	"github.com/brogergvhs/ficgrab/internal/site/ao3"
	"github.com/brogergvhs/ficgrab/internal/site/ffnet"
	"github.com/brogergvhs/ficgrab/internal/site/reddit"
	"github.com/brogergvhs/ficgrab/internal/site/scryer"
	"github.com/brogergvhs/ficgrab/internal/site/wattpad"
	"github.com/brogergvhs/ficgrab/internal/site/xen"
)

// Entries lists the built-in adapters.
func Entries() []site.Entry {
	return []site.Entry{
		{Name: ao3.Name, New: ao3.New},
		{Name: ffnet.Name, New: ffnet.New},
		{Name: reddit.Name, New: reddit.New},
		{Name: scryer.Name, New: scryer.New},
		{Name: wattpad.Name, New: wattpad.New},
		{Name: xen.Name, New: xen.New},
	}
}

// NewRegistry returns a registry holding the built-ins plus any external
// adapters the caller supplies.
func NewRegistry(external ...site.Entry) (*site.Registry, error) {
	entries := Entries()
	for _, e := range external {
		e.External = true
		entries = append(entries, e)
	}
	return site.NewRegistry(entries...)
}
