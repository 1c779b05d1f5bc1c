package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Debug            bool   `yaml:"debug"`
	UserAgent        string `yaml:"user_agent"`
	Cookie           string `yaml:"cookie"`
	CookieFile       string `yaml:"cookie_file"`
	TimeoutSec       int    `yaml:"timeout_sec"`
	CloudflareBypass bool   `yaml:"cloudflare_bypass"`
	ScanWorkers      int    `yaml:"scan_workers"`
	// Format is "table" or "json".
	Format string `yaml:"format"`
}

type Options struct {
	IgnoreConfig     bool
	Debug            bool
	UserAgent        string
	Cookie           string
	CookieFile       string
	TimeoutSec       int
	CloudflareBypass bool
	ScanWorkers      int
	Format           string
}

const (
	defaultTimeoutSec  = 30
	defaultScanWorkers = 2
	defaultFormat      = "table"
)

func DefaultConfig() *Config {
	return &Config{
		TimeoutSec:  defaultTimeoutSec,
		ScanWorkers: defaultScanWorkers,
		Format:      defaultFormat,
	}
}

// Timeout is the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged reads the active profile, applies CLI overrides from opts and
// fills defaults. The returned string describes where the config came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.TimeoutSec != 0 {
		c.TimeoutSec = o.TimeoutSec
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.ScanWorkers != 0 {
		c.ScanWorkers = o.ScanWorkers
	}
	if o.Format != "" {
		c.Format = o.Format
	}
}

func normalizeDefaults(c *Config) {
	if c.TimeoutSec <= 0 {
		c.TimeoutSec = defaultTimeoutSec
	}
	if c.ScanWorkers <= 0 {
		c.ScanWorkers = defaultScanWorkers
	}
	if c.Format != "json" {
		c.Format = defaultFormat
	}
}

func (c *Config) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, " -timeout_sec: %d\n", c.TimeoutSec)
	_, _ = fmt.Fprintf(w, " -scan_workers: %d\n", c.ScanWorkers)
	_, _ = fmt.Fprintf(w, " -format: %s\n", c.Format)
	if c.Debug {
		_, _ = fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	if c.UserAgent != "" {
		_, _ = fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if c.CookieFile != "" {
		_, _ = fmt.Fprintf(w, " -cookie_file: %s\n", c.CookieFile)
	}
	if c.CloudflareBypass {
		_, _ = fmt.Fprintf(w, " -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
}
