package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/ficgrab/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ficgrab config profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Loaded config from:\n  %s\n\n", used)
		cfg.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
