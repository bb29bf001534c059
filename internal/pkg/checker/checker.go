// Package checker verifies that resolved URLs point at something that
// exists: local files on a filesystem, everything else over HTTP.
package checker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/linkrot/linkrot/internal/pkg/source"
	"github.com/linkrot/linkrot/pkg/models"
	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/afero"
)

// Result is the outcome of checking one URL.
type Result struct {
	URL    *models.URL
	Status Status
	// Code is the final HTTP status code, zero for non-HTTP checks.
	Code int
	Err  error
}

func (r Result) String() string {
	if r.Code != 0 {
		return fmt.Sprintf("[%s] %s (%d)", r.Status, r.URL, r.Code)
	}
	if r.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", r.Status, r.URL, r.Err)
	}
	return fmt.Sprintf("[%s] %s", r.Status, r.URL)
}

// Options configures a Checker.
type Options struct {
	Client    *http.Client
	FS        afero.Fs
	UserAgent string
	MaxRetry  int
	Workers   int
	// Offline skips network checks entirely, only local files are
	// verified.
	Offline bool
}

// Checker runs existence checks with a bounded worker pool.
type Checker struct {
	client    *http.Client
	fs        afero.Fs
	userAgent string
	maxRetry  int
	workers   int
	offline   bool
}

func New(opts Options) *Checker {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Checker{
		client:    client,
		fs:        opts.FS,
		userAgent: opts.UserAgent,
		maxRetry:  opts.MaxRetry,
		workers:   workers,
		offline:   opts.Offline,
	}
}

// Check verifies every URL concurrently and returns results in the
// same order as the input.
func (c *Checker) Check(ctx context.Context, urls []*models.URL) []Result {
	results := make([]Result, len(urls))

	swg := sizedwaitgroup.New(c.workers)
	for i, u := range urls {
		swg.Add()
		go func(i int, u *models.URL) {
			defer swg.Done()
			results[i] = c.checkOne(ctx, u)
		}(i, u)
	}
	swg.Wait()

	return results
}

func (c *Checker) checkOne(ctx context.Context, u *models.URL) Result {
	parsed := u.GetParsed()
	if parsed == nil {
		return Result{URL: u, Status: StatusError, Err: fmt.Errorf("invalid URL %q", u.String())}
	}

	switch parsed.Scheme {
	case "file":
		return c.checkFile(u)
	case "http", "https":
		if c.offline {
			return Result{URL: u, Status: StatusSkipped}
		}
		return c.checkHTTP(ctx, u)
	default:
		return Result{URL: u, Status: StatusSkipped}
	}
}

func (c *Checker) checkFile(u *models.URL) Result {
	path := source.PathFromURL(u.GetParsed())

	exists, err := afero.Exists(c.fs, path)
	if err != nil {
		return Result{URL: u, Status: StatusError, Err: err}
	}
	if !exists {
		return Result{URL: u, Status: StatusBroken, Err: fmt.Errorf("no such file: %s", path)}
	}
	return Result{URL: u, Status: StatusOK}
}

func (c *Checker) checkHTTP(ctx context.Context, u *models.URL) Result {
	var (
		code    int
		lastErr error
	)

	for attempt := 0; attempt <= c.maxRetry; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Result{URL: u, Status: StatusError, Err: ctx.Err()}
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		code, lastErr = c.request(ctx, http.MethodHead, u.String())
		if lastErr == nil && (code == http.StatusMethodNotAllowed || code == http.StatusForbidden) {
			// Some servers reject HEAD outright, retry with GET
			// before judging the link.
			code, lastErr = c.request(ctx, http.MethodGet, u.String())
		}

		if lastErr != nil {
			continue
		}
		if code == http.StatusTooManyRequests {
			continue
		}

		if code >= 200 && code < 400 {
			return Result{URL: u, Status: StatusOK, Code: code}
		}
		return Result{URL: u, Status: StatusBroken, Code: code}
	}

	if lastErr != nil {
		return Result{URL: u, Status: StatusError, Err: lastErr}
	}
	return Result{URL: u, Status: StatusBroken, Code: code}
}

func (c *Checker) request(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
