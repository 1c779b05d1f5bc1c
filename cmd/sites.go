package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/ficgrab/internal/site"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the registered site adapters and what they support",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newRegistry()
		if err != nil {
			return err
		}

		hosts := map[string]string{site.ForumEngine: "(any /forums/ or /tags/ URL)"}
		for _, f := range site.Families {
			hosts[f.Engine] = f.Host
		}

		builtinNames, externalNames := reg.Names()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, "NAME\tKIND\tMATCHES\tSUPPORTS")

		for _, n := range builtinNames {
			printSite(w, reg, n, "built-in", hosts[n])
		}
		for _, n := range externalNames {
			printSite(w, reg, n, "external", "-")
		}

		return w.Flush()
	},
}

func printSite(w *tabwriter.Writer, reg *site.Registry, name, kind, matches string) {
	s, err := reg.New(name)
	if err != nil {
		return
	}
	if matches == "" {
		matches = "-"
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, kind, matches, capabilities(s))
}

func capabilities(s site.Site) string {
	var caps []string
	if _, ok := s.(site.FicLinker); ok {
		caps = append(caps, "ficlink")
	}
	if _, ok := s.(site.ScanParser); ok {
		caps = append(caps, "scan")
	}
	if _, ok := s.(site.Pager); ok {
		caps = append(caps, "pages")
	}
	if len(caps) == 0 {
		return "-"
	}
	return strings.Join(caps, ",")
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}
