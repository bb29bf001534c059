package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/linkrot/linkrot/internal/pkg/config"
	"github.com/linkrot/linkrot/internal/pkg/log"
	"github.com/linkrot/linkrot/internal/pkg/runner"
	"github.com/linkrot/linkrot/internal/pkg/stats"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [INPUT...]",
		Short: "Check the links found in the given files, directories, or URLs",
		Long: `Check extracts every link from the given inputs and verifies it.

Inputs can be local file paths, glob patterns, http(s) URLs, or "-" for stdin.
With --root-dir and --base-url, links that point at the hosted site are checked
against the local copy instead of the network.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				return fmt.Errorf("viper config is nil")
			}

			cfg.Inputs = args
			return config.GenerateRunConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Start(&log.Config{
				Level:   cfg.LogLevel,
				JSON:    cfg.JSON,
				NoColor: cfg.NoColor,
			}); err != nil {
				return err
			}
			defer log.Stop()

			if err := stats.Init(&stats.Config{
				Job:              cfg.Job,
				Prometheus:       cfg.Prometheus,
				PrometheusPrefix: cfg.PrometheusPrefix,
			}); err != nil {
				return err
			}

			if cfg.Prometheus {
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", stats.PrometheusHandler())
					if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.APIPort), mux); err != nil {
						log.Error("metrics server stopped", "error", err)
					}
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	cmd.PersistentFlags().String("job", "", "Job name, used to label exported metrics.")
	cmd.PersistentFlags().String("root-dir", "", "Local directory that holds the site copy. Links under --base-url are rewritten into it.")
	cmd.PersistentFlags().String("base-url", "", "URL the site is hosted at. With --root-dir it maps remote links to local files, alone it serves as a fallback base.")
	cmd.PersistentFlags().String("fallback-base-url", "", "Base URL used for sources that have no usable base of their own, like stdin.")
	cmd.PersistentFlags().String("user-agent", "", "User agent to use when requesting URLs.")
	cmd.PersistentFlags().IntP("workers", "w", 8, "Number of concurrent check workers to run.")
	cmd.PersistentFlags().Int("max-retry", 2, "Number of retries if an error happens when executing an HTTP request.")
	cmd.PersistentFlags().Int("http-timeout", 30, "Number of seconds to wait before timing out a request.")
	cmd.PersistentFlags().Bool("offline", false, "Only check local files, skip all network requests.")
	cmd.PersistentFlags().StringSlice("exclude", []string{}, "Regex patterns for URLs to exclude from checking.")
	cmd.PersistentFlags().Bool("prometheus", false, "Export metrics in Prometheus format.")
	cmd.PersistentFlags().String("prometheus-prefix", "linkrot_", "String used as a prefix for the exported Prometheus metrics.")
	cmd.PersistentFlags().Int("api-port", 9443, "Port to listen on for the metrics endpoint.")

	config.BindFlags(cmd.PersistentFlags())

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	return runner.New(cfg, afero.NewOsFs()).Run(ctx)
}
