package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumengc/internal/gc"
	"github.com/lumen-lang/lumengc/internal/metrics"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an idle heap and expose its metrics over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			g := gc.New(gc.Config{
				PageSize:  flagPageSize,
				ArenaSize: flagArenaSize,
				Logger:    log,
			})

			reg := prometheus.NewRegistry()
			collector := metrics.NewCollector(reg, g)
			g.SetHook(collector)

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

			log.Infof("serving metrics on %s", addr)
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9595", "address to serve /metrics on")
	return cmd
}
