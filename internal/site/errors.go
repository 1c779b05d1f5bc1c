package site

import (
	"errors"
	"fmt"
)

var (
	ErrUnimplemented = errors.New("capability not implemented")
	ErrUnsupported   = errors.New("operation unsupported")
	ErrNotFound      = errors.New("no adapter found")
)

// UnimplementedError means an adapter lacks a capability it must provide
// before the operation can run.
type UnimplementedError struct {
	Site string
	Op   string
}

func (e *UnimplementedError) Error() string {
	if e.Site == "" {
		return fmt.Sprintf("%s is unimplemented", e.Op)
	}
	return fmt.Sprintf("%s is unimplemented for %s", e.Op, e.Site)
}

func (e *UnimplementedError) Unwrap() error { return ErrUnimplemented }

// UnsupportedError is returned when an adapter cannot parse listing pages.
type UnsupportedError struct {
	Site string
	Link string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("parsing fic list pages is unsupported for %s (%s)", e.Site, e.Link)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// NotFoundError is returned by Resolve when nothing handles the identifier.
type NotFoundError struct {
	Engine string
}

func (e *NotFoundError) Error() string {
	return "no adapter found for " + e.Engine
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
