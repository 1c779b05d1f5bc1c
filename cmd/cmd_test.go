package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/ficgrab/internal/site"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	flagNormEngine, flagNormBase, flagNormKind = "", "", "link"
	flagFicLinkBase = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "https://archiveofourown.org/works/1", "https://forums.spacebattles.com/forums/x.1/", "ffnet")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "ao3")
	assert.Contains(t, lines[2], "xen")
	assert.Contains(t, lines[3], "ffnet")
}

func TestResolveCommandNotFound(t *testing.T) {
	_, err := run(t, "resolve", "ao3", "nope")
	assert.True(t, errors.Is(err, site.ErrNotFound))
}

func TestRegisterExternalAdapter(t *testing.T) {
	prev := external
	t.Cleanup(func() { external = prev })

	Register("example.org/fics/plugin", func() site.Site {
		return &site.Base{SiteName: "plugin"}
	})

	out, err := run(t, "resolve", "example.org/fics/plugin", "ao3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "plugin")
	assert.Contains(t, lines[2], "ao3")

	out, err = run(t, "sites")
	require.NoError(t, err)
	assert.Contains(t, out, "example.org/fics/plugin")
}

func TestRegisterCannotShadowBuiltin(t *testing.T) {
	prev := external
	t.Cleanup(func() { external = prev })

	Register("ao3", func() site.Site {
		return &site.Base{SiteName: "impostor"}
	})

	out, err := run(t, "resolve", "ao3")
	require.NoError(t, err)
	assert.NotContains(t, out, "impostor")
}

func TestNormalizeCommand(t *testing.T) {
	out, err := run(t, "normalize", "--kind", "fic",
		"http://archiveofourown.org/works/9/chapters/2",
		"http://example.com/a/",
	)
	require.NoError(t, err)
	assert.Equal(t, "https://archiveofourown.org/works/9\nhttps://example.com/a\n", out)
}

func TestNormalizeCommandRelative(t *testing.T) {
	out, err := run(t, "normalize", "--kind", "fic", "--base", "https://www.fanfiction.net/book/x/", "/s/55/3/Title")
	require.NoError(t, err)
	assert.Equal(t, "https://www.fanfiction.net/s/55\n", out)
}

func TestNormalizeCommandBadKind(t *testing.T) {
	_, err := run(t, "normalize", "--kind", "nope", "https://example.com")
	assert.Error(t, err)
}

func TestFicLinkCommand(t *testing.T) {
	out, err := run(t, "ficlink", "ao3", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "https://archiveofourown.org/works/1\nhttps://archiveofourown.org/works/2\n", out)

	out, err = run(t, "ficlink", "https://forums.sufficientvelocity.com/forums/user-fiction.2/", "77")
	require.NoError(t, err)
	assert.Equal(t, "https://forums.sufficientvelocity.com/threads/77\n", out)
}

func TestFicLinkCommandUnimplemented(t *testing.T) {
	_, err := run(t, "ficlink", "reddit", "abc")
	assert.True(t, errors.Is(err, site.ErrUnimplemented))
}

func TestScanCommandUnsupported(t *testing.T) {
	_, err := run(t, "scan", "--no-progress", "https://www.reddit.com/r/HPfanfiction")
	assert.True(t, errors.Is(err, site.ErrUnsupported))
}

func TestSitesCommand(t *testing.T) {
	out, err := run(t, "sites")
	require.NoError(t, err)
	assert.Contains(t, out, "archiveofourown.org")
	assert.Regexp(t, `ao3\s+built-in\s+archiveofourown.org\s+ficlink,scan,pages`, out)
	assert.Regexp(t, `scryer\s+built-in\s+scryer.darklordpotter.net\s+-`, out)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ficgrab version: dev\n", out)
}
