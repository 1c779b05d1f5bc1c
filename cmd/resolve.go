package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url|name>...",
	Short: "Show which site adapter handles each engine identifier",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newRegistry()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 4, ' ', 0)
		_, _ = fmt.Fprintln(w, "ENGINE\tADAPTER")

		var firstErr error
		for _, engine := range args {
			s, err := reg.New(engine)
			if err != nil {
				_, _ = fmt.Fprintf(w, "%s\t-\n", engine)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\n", engine, s.Name())
		}

		if err := w.Flush(); err != nil {
			return err
		}
		return firstErr
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
