package site

import (
	"fmt"
	"sort"
	"strings"
)

// Entry registers one adapter constructor.
//
// Built-in entries are found by the resolver both through the hostname
// matchers and by their short name. External entries are only found by
// their exact name, after the built-ins.
type Entry struct {
	Name     string
	New      Constructor
	External bool
}

// Registry resolves engine identifiers to adapter constructors. It is
// read-only after NewRegistry and safe for concurrent use.
type Registry struct {
	builtin  map[string]Constructor
	external map[string]Constructor
	matchers []Matcher
}

func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		builtin:  make(map[string]Constructor, len(entries)),
		external: make(map[string]Constructor),
		matchers: DefaultMatchers(),
	}

	for _, e := range entries {
		if e.New == nil {
			return nil, fmt.Errorf("adapter %q has no constructor", e.Name)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("adapter name cannot be empty")
		}

		tier := r.builtin
		if e.External {
			tier = r.external
		}
		if _, ok := tier[e.Name]; ok {
			return nil, fmt.Errorf("duplicate adapter %q", e.Name)
		}
		tier[e.Name] = e.New
	}

	return r, nil
}

// Resolve returns the constructor for engine, which is either an absolute
// URL or an adapter name.
//
// A URL with a hostname is matched against the ordered matchers only; it
// is never looked up by name. Anything else is looked up as a built-in
// name, then as an external name.
func (r *Registry) Resolve(engine string) (Constructor, error) {
	if u, ok := parseURL(engine); ok {
		for _, m := range r.matchers {
			if !m.Match(u) {
				continue
			}
			if c, ok := r.builtin[m.Engine]; ok {
				return c, nil
			}
			break
		}
		return nil, &NotFoundError{Engine: engine}
	}

	if c, ok := r.builtin[engine]; ok {
		return c, nil
	}
	if c, ok := r.external[engine]; ok {
		return c, nil
	}

	return nil, &NotFoundError{Engine: engine}
}

// New resolves engine and constructs the adapter.
func (r *Registry) New(engine string) (Site, error) {
	c, err := r.Resolve(engine)
	if err != nil {
		return nil, err
	}
	return c(), nil
}

// Names lists registered adapter names, sorted, per tier.
func (r *Registry) Names() (builtin, external []string) {
	for n := range r.builtin {
		builtin = append(builtin, n)
	}
	for n := range r.external {
		external = append(external, n)
	}
	sort.Strings(builtin)
	sort.Strings(external)

	return builtin, external
}

// Match reports which adapter name a URL routes to without constructing
// anything. ok is false for non-URLs and unmatched URLs.
func (r *Registry) Match(engine string) (name string, ok bool) {
	u, isURL := parseURL(engine)
	if !isURL {
		return "", false
	}
	for _, m := range r.matchers {
		if m.Match(u) {
			return m.Engine, true
		}
	}
	return "", false
}
