package builtin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/ficgrab/internal/site"
)

func TestEveryFamilyIsRegistered(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	for _, f := range site.Families {
		s, err := r.New("https://www." + f.Host + "/x")
		require.NoError(t, err, f.Host)
		assert.Equal(t, f.Engine, s.Name())

		byName, err := r.New(f.Engine)
		require.NoError(t, err, f.Engine)
		assert.Equal(t, f.Engine, byName.Name())
	}

	s, err := r.New(site.ForumEngine)
	require.NoError(t, err)
	assert.Equal(t, site.ForumEngine, s.Name())
}

func TestResolveEndToEnd(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	tests := []struct {
		engine string
		want   string
	}{
		{"https://archiveofourown.org/forums/whatever/", "ao3"},
		{"https://forums.sufficientvelocity.com/forums/user-fiction.2/", "xen"},
		{"https://forums.spacebattles.com/tags/worm/", "xen"},
		{"ffnet", "ffnet"},
	}
	for _, tt := range tests {
		s, err := r.New(tt.engine)
		require.NoError(t, err, tt.engine)
		assert.Equal(t, tt.want, s.Name(), tt.engine)
	}

	_, err = r.New("not-a-site")
	assert.True(t, errors.Is(err, site.ErrNotFound))
}

func TestExternalAdapters(t *testing.T) {
	ext := site.Entry{Name: "example.org/custom", New: func() site.Site {
		return &site.Base{SiteName: "custom"}
	}}

	r, err := NewRegistry(ext)
	require.NoError(t, err)

	s, err := r.New("example.org/custom")
	require.NoError(t, err)
	assert.Equal(t, "custom", s.Name())

	_, external := r.Names()
	assert.Equal(t, []string{"example.org/custom"}, external)
}

func TestCapabilities(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	scanners := map[string]bool{"ao3": true, "xen": true}
	linkers := map[string]bool{"ao3": true, "ffnet": true, "wattpad": true, "xen": true}

	names, _ := r.Names()
	for _, n := range names {
		s, err := r.New(n)
		require.NoError(t, err)

		_, isScanner := s.(site.ScanParser)
		_, isLinker := s.(site.FicLinker)
		assert.Equal(t, scanners[n], isScanner, n)
		assert.Equal(t, linkers[n], isLinker, n)
	}
}
