// Package runner drives a whole check run: it materializes the input
// sources, prepares the resolution context for each one, extracts and
// resolves links, deduplicates them, checks them, and reports totals.
package runner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/linkrot/linkrot/internal/pkg/checker"
	"github.com/linkrot/linkrot/internal/pkg/config"
	"github.com/linkrot/linkrot/internal/pkg/extractor"
	"github.com/linkrot/linkrot/internal/pkg/log"
	"github.com/linkrot/linkrot/internal/pkg/resolver"
	"github.com/linkrot/linkrot/internal/pkg/seencheck"
	"github.com/linkrot/linkrot/internal/pkg/source"
	"github.com/linkrot/linkrot/internal/pkg/stats"
	"github.com/linkrot/linkrot/pkg/models"
	"github.com/spf13/afero"
)

// ErrBrokenLinksFound is returned when the run completes but at least
// one link turned out broken.
var ErrBrokenLinksFound = errors.New("broken links found")

type Runner struct {
	cfg     *config.Config
	fs      afero.Fs
	client  *http.Client
	scanner *extractor.PlaintextScanner
	seen    *seencheck.Seencheck
	checker *checker.Checker
	logger  *log.FieldedLogger
}

func New(cfg *config.Config, fs afero.Fs) *Runner {
	client := &http.Client{
		Timeout: time.Duration(cfg.HTTPTimeout) * time.Second,
	}

	return &Runner{
		cfg:     cfg,
		fs:      fs,
		client:  client,
		scanner: extractor.NewPlaintextScanner(),
		seen:    seencheck.New(),
		checker: checker.New(checker.Options{
			Client:    client,
			FS:        fs,
			UserAgent: cfg.UserAgent,
			MaxRetry:  cfg.MaxRetry,
			Workers:   cfg.WorkersCount,
			Offline:   cfg.Offline,
		}),
		logger:  log.NewFieldedLogger(&log.Fields{"component": "runner"}),
	}
}

// Run executes the whole pipeline and returns ErrBrokenLinksFound if
// any checked link is dead.
func (r *Runner) Run(ctx context.Context) error {
	sources, err := source.Resolve(r.fs, r.client, r.cfg.Inputs)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return errors.New("no inputs to check")
	}

	rootAndBase, fallback, err := r.resolutionContext()
	if err != nil {
		return err
	}

	var urls []*models.URL
	for _, src := range sources {
		collected, err := r.processSource(ctx, src, rootAndBase, fallback)
		if err != nil {
			return fmt.Errorf("processing %s: %w", src.Name(), err)
		}
		urls = append(urls, collected...)
	}

	results := r.checker.Check(ctx, urls)

	broken := 0
	for _, result := range results {
		stats.URLsCheckedIncr()
		switch result.Status {
		case checker.StatusOK:
			stats.LinksOKIncr()
		case checker.StatusBroken:
			broken++
			stats.LinksBrokenIncr()
			r.logger.Error("broken link", "url", result.URL, "code", result.Code, "error", result.Err)
		case checker.StatusError:
			stats.CheckErrorsIncr()
			r.logger.Warn("check failed", "url", result.URL, "error", result.Err)
		case checker.StatusSkipped:
			stats.LinksSkippedIncr()
			r.logger.Debug("skipped uncheckable link", "url", result.URL)
		}
	}

	for _, line := range strings.Split(stats.Summary(), "\n") {
		log.Info(line)
	}

	if broken > 0 {
		return ErrBrokenLinksFound
	}
	return nil
}

// resolutionContext derives the root/base pair and the fallback base
// from configuration. A base URL declared without a root directory
// cannot map anything, so it degrades to a fallback base.
func (r *Runner) resolutionContext() (*resolver.RootAndBase, resolver.BaseURLer, error) {
	var rootAndBase *resolver.RootAndBase
	var fallback resolver.BaseURLer

	if r.cfg.RootDir != "" {
		root, err := source.NewLocalBase(r.cfg.RootDir)
		if err != nil {
			return nil, nil, err
		}

		rootAndBase = &resolver.RootAndBase{Root: root}
		if r.cfg.BaseURL != "" {
			base, err := source.NewBase(r.cfg.BaseURL)
			if err != nil {
				return nil, nil, err
			}
			rootAndBase.Base = base
		}
	} else if r.cfg.BaseURL != "" {
		base, err := source.NewBase(r.cfg.BaseURL)
		if err != nil {
			return nil, nil, err
		}
		fallback = base
	}

	if r.cfg.FallbackBaseURL != "" {
		base, err := source.NewBase(r.cfg.FallbackBaseURL)
		if err != nil {
			return nil, nil, err
		}
		fallback = base
	}

	return rootAndBase, fallback, nil
}

func (r *Runner) processSource(ctx context.Context, src source.InputSource, rootAndBase *resolver.RootAndBase, fallback resolver.BaseURLer) ([]*models.URL, error) {
	info, mappings, err := resolver.PrepareSourceBaseInfo(src, rootAndBase, fallback)
	if err != nil {
		return nil, err
	}

	body, err := src.Reader(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var header http.Header
	remote, isRemote := src.(*source.Remote)
	if isRemote {
		header = remote.Header()
	}

	ext := extractor.ForSource(src.Name(), header, r.scanner)
	links, err := ext.Extract(body)
	if err != nil {
		return nil, err
	}

	if isRemote {
		links = append(links, extractor.LinkHeader(remote.Header())...)
	}

	stats.SourcesProcessedIncr()
	stats.LinksExtractedIncr(uint64(len(links)))
	r.logger.Info("processed source", "source", src.Name(), "extractor", ext.Name(), "links", len(links))

	var urls []*models.URL
	for _, link := range links {
		resolved, err := resolver.ParseURLWithBaseInfo(info, mappings, link)
		if err != nil {
			stats.CheckErrorsIncr()
			r.logger.Warn("unresolvable link", "source", src.Name(), "link", link, "error", err)
			continue
		}

		if r.excluded(resolved.String()) {
			r.logger.Debug("excluded link", "url", resolved)
			continue
		}

		if r.seen.SeencheckURL(resolved.String()) {
			urls = append(urls, resolved)
		}
	}

	return urls, nil
}

func (r *Runner) excluded(url string) bool {
	for _, re := range r.cfg.ExclusionRegexes {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

