package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/ficgrab/internal/config"
	"github.com/brogergvhs/ficgrab/internal/fetch"
	"github.com/brogergvhs/ficgrab/internal/fic"
	"github.com/brogergvhs/ficgrab/internal/site"
	"github.com/brogergvhs/ficgrab/internal/ui"
	"github.com/brogergvhs/ficgrab/internal/util"
)

var (
	flagScanEngine     string
	flagScanPages      int
	flagScanFormat     string
	flagScanWorkers    int
	flagScanNoProgress bool

	// headers/auth
	flagUserAgent  string
	flagCookie     string
	flagCookieFile string
	flagTimeout    int
	flagCloudflare bool
)

func init() {
	scanCmd := &cobra.Command{
		Use:   "scan <listing-url>...",
		Short: "Fetch listing pages and print the fics they link to. Uses the selected config, overwritten by CLI flags",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScan,
	}

	scanCmd.Flags().StringVar(&flagScanEngine, "engine", "", "force an adapter instead of resolving each URL")
	scanCmd.Flags().IntVar(&flagScanPages, "pages", 1, "number of listing pages to read per URL")
	scanCmd.Flags().StringVar(&flagScanFormat, "format", "", "output format: table or json")
	scanCmd.Flags().IntVar(&flagScanWorkers, "workers", 0, "parallel page fetches")
	scanCmd.Flags().BoolVar(&flagScanNoProgress, "no-progress", false, "hide progress bars")

	scanCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	scanCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	scanCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	scanCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds")
	scanCmd.Flags().BoolVar(&flagCloudflare, "cloudflare", false, "route requests through the Cloudflare bypass transport")

	rootCmd.AddCommand(scanCmd)
}

type scanJob struct {
	adapter site.Site
	link    string
	pages   []string
	handle  *ui.ProgressHandle
}

type pageResult struct {
	fics []*fic.Fic
	err  error
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(config.Options{
		UserAgent:        flagUserAgent,
		Cookie:           flagCookie,
		CookieFile:       flagCookieFile,
		TimeoutSec:       flagTimeout,
		CloudflareBypass: flagCloudflare,
		ScanWorkers:      flagScanWorkers,
		Format:           flagScanFormat,
	})
	if err != nil {
		return err
	}

	reg, err := newRegistry()
	if err != nil {
		return err
	}

	jobs := make([]*scanJob, 0, len(args))
	for _, l := range args {
		engine := l
		if flagScanEngine != "" {
			engine = flagScanEngine
		}

		s, err := reg.New(engine)
		if err != nil {
			return err
		}
		if _, ok := s.(site.ScanParser); !ok {
			_, err := site.ParseScan(s, l, nil)
			return err
		}

		jobs = append(jobs, &scanJob{adapter: s, link: l, pages: site.PageLinks(s, l, flagScanPages)})
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout(),
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progressOut io.Writer = os.Stderr
	if flagScanNoProgress {
		progressOut = io.Discard
	}
	pm := ui.NewProgressManager(progressOut)
	for _, j := range jobs {
		j.handle = pm.Register(j.adapter.Name(), len(j.pages))
	}

	stats := &ui.Stats{}
	results := scanPages(ctx, fetch.New(client, log), jobs, cfg.ScanWorkers, stats, log)
	pm.Close()

	fics := collect(jobs, results)
	log.Debugf("scanned %d pages, %d failed, %d fics\n", stats.Pages.Load(), stats.Failed.Load(), len(fics))

	if stats.Failed.Load() == stats.Pages.Load() {
		return fmt.Errorf("all %d pages failed", stats.Pages.Load())
	}

	if cfg.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), fics)
	}
	return writeTable(cmd.OutOrStdout(), fics)
}

// scanPages fetches every page of every job with at most workers requests
// in flight. results[i][n] belongs to jobs[i].pages[n].
func scanPages(ctx context.Context, f *fetch.Fetcher, jobs []*scanJob, workers int, stats *ui.Stats, log *ui.Logger) [][]pageResult {
	results := make([][]pageResult, len(jobs))
	for i, j := range jobs {
		results[i] = make([]pageResult, len(j.pages))
	}

	sem := make(chan struct{}, max(1, workers))
	var wg sync.WaitGroup

	for i, j := range jobs {
		i, j := i, j
		for n, page := range j.pages {
			n, page := n, page
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()

				fics, err := f.Scan(ctx, j.adapter, page)
				results[i][n] = pageResult{fics: fics, err: err}

				stats.Pages.Add(1)
				if err != nil {
					stats.Failed.Add(1)
					log.Errorf("%s: %v\n", page, err)
				}
				stats.Fics.Add(int64(len(fics)))
				j.handle.PageDone(len(fics))
			}()
		}
	}

	wg.Wait()
	for _, j := range jobs {
		j.handle.MarkDone()
	}

	return results
}

// collect flattens results in job and page order, dropping repeats of the
// same canonical link.
func collect(jobs []*scanJob, results [][]pageResult) []*fic.Fic {
	var out []*fic.Fic
	seen := map[string]bool{}

	for i := range jobs {
		for _, r := range results[i] {
			for _, f := range r.fics {
				if seen[f.Link] {
					continue
				}
				seen[f.Link] = true
				out = append(out, f)
			}
		}
	}

	return out
}

type ficOut struct {
	Site string `json:"site"`
	*fic.Fic
}

func writeJSON(w io.Writer, fics []*fic.Fic) error {
	out := make([]ficOut, len(fics))
	for i, f := range fics {
		out[i] = ficOut{Site: f.SiteName(), Fic: f}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, fics []*fic.Fic) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SITE\tTITLE\tAUTHOR\tWORDS\tCHAPTERS\tLINK")
	for _, f := range fics {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", f.SiteName(), f.Title, f.Author, f.Words, f.Chapters, f.Link)
	}
	return tw.Flush()
}
