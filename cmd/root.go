package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/ficgrab/internal/config"
	"github.com/brogergvhs/ficgrab/internal/site"
	"github.com/brogergvhs/ficgrab/internal/site/builtin"
	"github.com/brogergvhs/ficgrab/internal/ui"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
)

var external []site.Entry

var rootCmd = &cobra.Command{
	Use:           "ficgrab",
	Short:         "Resolve fic sites, canonicalize links and scan listings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
}

// Register adds an adapter reachable by its exact name. It must be called
// before Execute.
func Register(name string, ctor site.Constructor) {
	external = append(external, site.Entry{Name: name, New: ctor})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRegistry() (*site.Registry, error) {
	return builtin.NewRegistry(external...)
}

// loadConfig merges the active profile with opts and builds the logger.
func loadConfig(opts config.Options) (*config.Config, *ui.Logger, error) {
	opts.IgnoreConfig = flagIgnoreConfig
	opts.Debug = flagDebug

	cfg, used, err := config.LoadMerged(opts)
	if err != nil {
		return nil, nil, err
	}

	log := ui.NewLogger(cfg.Debug)
	log.Debugf("config: %s\n", used)

	return cfg, log, nil
}
