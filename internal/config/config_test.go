package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, appName)
}

func TestLoadMergedWithoutProfile(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{UserAgent: "ua"})
	require.NoError(t, err)
	assert.Equal(t, "(default config in memory)", used)
	assert.Equal(t, "ua", cfg.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 2, cfg.ScanWorkers)
	assert.Equal(t, "table", cfg.Format)
}

func TestLoadMergedIgnoreConfig(t *testing.T) {
	isolate(t)
	_, err := InitDefaultConfig()
	require.NoError(t, err)

	cfg, used, err := LoadMerged(Options{IgnoreConfig: true, Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadMergedProfileAndOverrides(t *testing.T) {
	root := isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "configs", "Default.yaml"), path)

	require.NoError(t, os.WriteFile(path, []byte("scan_workers: 6\nuser_agent: from-file\nformat: json\ncloudflare_bypass: true\n"), 0644))

	cfg, used, err := LoadMerged(Options{UserAgent: "from-flag", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 6, cfg.ScanWorkers)
	assert.Equal(t, "from-flag", cfg.UserAgent)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.CloudflareBypass)
	assert.Equal(t, 30, cfg.TimeoutSec)
}

func TestLoadMergedBadYAML(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("scan_workers: [nope"), 0644))

	_, _, err = LoadMerged(Options{})
	assert.Error(t, err)
}

func TestNormalizeDefaults(t *testing.T) {
	c := &Config{TimeoutSec: -1, ScanWorkers: 0, Format: "xml"}
	normalizeDefaults(c)
	assert.Equal(t, 30, c.TimeoutSec)
	assert.Equal(t, 2, c.ScanWorkers)
	assert.Equal(t, "table", c.Format)
}

func TestProfiles(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)

	_, err = InitDefaultConfig()
	assert.True(t, errors.Is(err, os.ErrExist))

	_, err = CreateConfig("work")
	require.NoError(t, err)

	_, err = CreateConfig("work")
	assert.Error(t, err)

	_, err = CreateConfig(" ")
	assert.Error(t, err)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.True(t, list[0].Active)
	assert.Equal(t, "work", list[1].Label)
	assert.False(t, list[1].Active)

	require.NoError(t, SwitchConfig("work"))
	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "work", label)

	assert.Error(t, SwitchConfig("missing"))
	assert.Error(t, SwitchConfig(""))
}

func TestActiveConfigPathNone(t *testing.T) {
	isolate(t)

	_, err := ActiveConfigPath()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()
	c.CloudflareBypass = true
	c.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "-timeout_sec: 30")
	assert.Contains(t, out, "-cloudflare_bypass: true")
	assert.NotContains(t, out, "-debug")
}
