// Package fetch retrieves pages for a site adapter. Retry policy lives
// here; the adapters themselves never perform I/O.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brogergvhs/ficgrab/internal/fic"
	"github.com/brogergvhs/ficgrab/internal/site"
	"github.com/brogergvhs/ficgrab/internal/util"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

type Logger interface {
	Debugf(format string, args ...any)
}

type Fetcher struct {
	client   *http.Client
	log      Logger
	attempts int
	backoff  time.Duration
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

func New(c *http.Client, log Logger) *Fetcher {
	if log == nil {
		log = nopLogger{}
	}
	return &Fetcher{
		client:   c,
		log:      log,
		attempts: 3,
		backoff:  500 * time.Millisecond,
	}
}

// WithRetry overrides the retry policy.
func (f *Fetcher) WithRetry(attempts int, backoff time.Duration) *Fetcher {
	f.attempts = attempts
	f.backoff = backoff
	return f
}

// Fetch downloads href as seen by s. It returns the body and the
// normalized link the body belongs to.
func (f *Fetcher) Fetch(ctx context.Context, s site.Site, href string) ([]byte, string, error) {
	canonical := s.NormalizeLink(href, "")
	target := s.FetchLink(canonical)
	if target == "" {
		return nil, canonical, fmt.Errorf("%s: empty link", s.Name())
	}

	f.log.Debugf("fetch %s (%s)\n", canonical, s.Name())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, canonical, err
	}

	resp, err := util.DoWithRetry(f.client, req, f.attempts, f.backoff)
	if resp != nil {
		defer func() {
			_ = resp.Body.Close()
		}()
	}
	if err != nil {
		if resp != nil {
			return nil, canonical, &StatusError{URL: target, StatusCode: resp.StatusCode}
		}
		return nil, canonical, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, canonical, &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, canonical, fmt.Errorf("read %s: %w", target, err)
	}
	f.log.Debugf("fetched %s (%s)\n", target, util.Human(int64(len(body))))

	return body, canonical, nil
}

// Scan fetches a listing page and parses it with s. Adapters without a
// listing parser fail before any request is made.
func (f *Fetcher) Scan(ctx context.Context, s site.Site, scanLink string) ([]*fic.Fic, error) {
	if _, ok := s.(site.ScanParser); !ok {
		return site.ParseScan(s, scanLink, nil)
	}

	body, canonical, err := f.Fetch(ctx, s, scanLink)
	if err != nil {
		return nil, err
	}

	return site.ParseScan(s, canonical, body)
}
