package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/ficgrab/internal/site"
)

var flagFicLinkBase string

var ficlinkCmd = &cobra.Command{
	Use:   "ficlink <engine> <id>...",
	Short: "Build canonical fic links from site ids",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newRegistry()
		if err != nil {
			return err
		}

		s, err := reg.New(args[0])
		if err != nil {
			return err
		}

		base := flagFicLinkBase
		if base == "" {
			// a URL engine doubles as the site root for adapters that need one
			if _, ok := reg.Match(args[0]); ok {
				if u, err := url.Parse(args[0]); err == nil {
					base = u.Scheme + "://" + u.Host
				}
			}
		}

		for _, id := range args[1:] {
			l, err := site.FicLinkFromID(s, id, base)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), l)
		}

		return nil
	},
}

func init() {
	ficlinkCmd.Flags().StringVar(&flagFicLinkBase, "base", "", "site root for adapters whose ids are only unique per site")

	rootCmd.AddCommand(ficlinkCmd)
}
