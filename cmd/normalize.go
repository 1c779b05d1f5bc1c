package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/ficgrab/internal/site"
)

var (
	flagNormEngine string
	flagNormBase   string
	flagNormKind   string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <link>...",
	Short: "Print the canonical form of each link",
	Long: "Print the canonical form of each link. Without --engine every link is\n" +
		"canonicalized by the adapter its own URL resolves to, falling back to the\n" +
		"generic rules when none matches.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newRegistry()
		if err != nil {
			return err
		}

		norm, err := normalizer(flagNormKind)
		if err != nil {
			return err
		}

		var forced site.Site
		if flagNormEngine != "" {
			if forced, err = reg.New(flagNormEngine); err != nil {
				return err
			}
		}

		for _, href := range args {
			s := forced
			if s == nil {
				s = adapterFor(reg, href, flagNormBase)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), norm(s, href, flagNormBase))
		}

		return nil
	},
}

type normalizeFunc func(s site.Site, href, base string) string

func normalizer(kind string) (normalizeFunc, error) {
	switch kind {
	case "", "link":
		return site.Site.NormalizeLink, nil
	case "fic":
		return site.Site.NormalizeFicLink, nil
	case "author":
		return site.Site.NormalizeAuthorLink, nil
	}
	return nil, fmt.Errorf("unknown --kind %q (want link, fic or author)", kind)
}

// adapterFor picks the adapter of href, or of base for relative links. The
// contract defaults serve links no adapter claims.
func adapterFor(reg *site.Registry, href, base string) site.Site {
	for _, candidate := range []string{href, base} {
		if candidate == "" {
			continue
		}
		if s, err := reg.New(candidate); err == nil {
			return s
		}
	}
	return &site.Base{}
}

func init() {
	normalizeCmd.Flags().StringVar(&flagNormEngine, "engine", "", "adapter name or URL to normalize with")
	normalizeCmd.Flags().StringVar(&flagNormBase, "base", "", "base URL for relative links")
	normalizeCmd.Flags().StringVar(&flagNormKind, "kind", "link", "link kind: link, fic or author")

	rootCmd.AddCommand(normalizeCmd)
}
