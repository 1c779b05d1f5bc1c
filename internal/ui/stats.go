package ui

import "sync/atomic"

type Stats struct {
	Pages  atomic.Int64
	Failed atomic.Int64
	Fics   atomic.Int64
}
