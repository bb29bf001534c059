package stats

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type prometheusStats struct {
	sourcesProcessed *prometheus.CounterVec
	linksExtracted   *prometheus.CounterVec
	urlsChecked      *prometheus.CounterVec
	linksOK          *prometheus.CounterVec
	linksBroken      *prometheus.CounterVec
	checkErrors      *prometheus.CounterVec
	linksSkipped     *prometheus.CounterVec
}

var (
	globalPromStats *prometheusStats
	hostname        string
	job             string
)

func newPrometheusStats(prefix string) *prometheusStats {
	labels := []string{"job", "hostname"}

	return &prometheusStats{
		sourcesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "sources_processed", Help: "Total number of input sources processed"},
			labels,
		),
		linksExtracted: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "links_extracted", Help: "Total number of raw links extracted from sources"},
			labels,
		),
		urlsChecked: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "urls_checked", Help: "Total number of URLs checked"},
			labels,
		),
		linksOK: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "links_ok", Help: "Number of healthy links"},
			labels,
		),
		linksBroken: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "links_broken", Help: "Number of broken links"},
			labels,
		),
		checkErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "check_errors", Help: "Number of checks that failed to complete"},
			labels,
		),
		linksSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "links_skipped", Help: "Number of links with uncheckable schemes"},
			labels,
		),
	}
}

func initPrometheus(cfg *Config) {
	hostname, _ = os.Hostname()
	job = cfg.Job

	globalPromStats = newPrometheusStats(cfg.PrometheusPrefix)

	if !cfg.Prometheus {
		return
	}

	prometheus.MustRegister(globalPromStats.sourcesProcessed)
	prometheus.MustRegister(globalPromStats.linksExtracted)
	prometheus.MustRegister(globalPromStats.urlsChecked)
	prometheus.MustRegister(globalPromStats.linksOK)
	prometheus.MustRegister(globalPromStats.linksBroken)
	prometheus.MustRegister(globalPromStats.checkErrors)
	prometheus.MustRegister(globalPromStats.linksSkipped)
}

func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}
