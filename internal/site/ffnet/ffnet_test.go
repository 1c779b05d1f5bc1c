package ffnet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/ficgrab/internal/site"
)

func TestNormalizeFicLink(t *testing.T) {
	s := New()

	tests := map[string]string{
		"http://www.fanfiction.net/s/123/4/Some-Title": "https://www.fanfiction.net/s/123",
		"https://m.fanfiction.net/s/123/":              "https://www.fanfiction.net/s/123",
		"https://fanfiction.net/s/123":                 "https://www.fanfiction.net/s/123",
		"https://www.fanfiction.net/book/Harry-Potter/": "https://www.fanfiction.net/book/Harry-Potter",
	}
	for in, want := range tests {
		assert.Equal(t, want, s.NormalizeFicLink(in, ""), in)
	}
}

func TestNormalizeAuthorLink(t *testing.T) {
	s := New()
	assert.Equal(t, "https://www.fanfiction.net/u/99",
		s.NormalizeAuthorLink("/u/99/Someone", "https://m.fanfiction.net/s/1/1/"))
}

func TestFicLinkFromID(t *testing.T) {
	got, err := site.FicLinkFromID(New(), "42", "")
	require.NoError(t, err)
	assert.Equal(t, "https://www.fanfiction.net/s/42", got)
}

func TestParseScanUnsupported(t *testing.T) {
	_, err := site.ParseScan(New(), "https://www.fanfiction.net/book/x/", nil)
	assert.True(t, errors.Is(err, site.ErrUnsupported))
	assert.Contains(t, err.Error(), "ffnet")
}
