// Package stats tracks run-wide counters for the check pipeline and
// optionally exposes them as Prometheus metrics.
package stats

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
)

type stats struct {
	SourcesProcessed *counter
	LinksExtracted   *counter
	URLsChecked      *counter
	LinksOK          *counter
	LinksBroken      *counter
	CheckErrors      *counter
	LinksSkipped     *counter
}

var (
	globalStats *stats
	doOnce      sync.Once
)

// Config carries what the stats package needs to know about the run.
type Config struct {
	Job              string
	Prometheus       bool
	PrometheusPrefix string
}

func Init(cfg *Config) error {
	var done = false

	doOnce.Do(func() {
		globalStats = &stats{
			SourcesProcessed: &counter{},
			LinksExtracted:   &counter{},
			URLsChecked:      &counter{},
			LinksOK:          &counter{},
			LinksBroken:      &counter{},
			CheckErrors:      &counter{},
			LinksSkipped:     &counter{},
		}
		initPrometheus(cfg)
		done = true
	})

	if !done {
		return ErrStatsAlreadyInitialized
	}

	return nil
}

// ready reports whether Init has run. Accessors are no-ops until then.
func ready() bool {
	return globalStats != nil
}

func Reset() {
	if !ready() {
		return
	}

	globalStats.SourcesProcessed.reset()
	globalStats.LinksExtracted.reset()
	globalStats.URLsChecked.reset()
	globalStats.LinksOK.reset()
	globalStats.LinksBroken.reset()
	globalStats.CheckErrors.reset()
	globalStats.LinksSkipped.reset()
}

// Summary renders the run totals as a human-readable block.
func Summary() string {
	if !ready() {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "sources processed: %s\n", humanize.Comma(int64(globalStats.SourcesProcessed.get())))
	fmt.Fprintf(&b, "links extracted:   %s\n", humanize.Comma(int64(globalStats.LinksExtracted.get())))
	fmt.Fprintf(&b, "urls checked:      %s\n", humanize.Comma(int64(globalStats.URLsChecked.get())))
	fmt.Fprintf(&b, "ok:                %s\n", humanize.Comma(int64(globalStats.LinksOK.get())))
	fmt.Fprintf(&b, "broken:            %s\n", humanize.Comma(int64(globalStats.LinksBroken.get())))
	fmt.Fprintf(&b, "errors:            %s\n", humanize.Comma(int64(globalStats.CheckErrors.get())))
	fmt.Fprintf(&b, "skipped:           %s", humanize.Comma(int64(globalStats.LinksSkipped.get())))

	return b.String()
}
