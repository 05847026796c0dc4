// Package metrics instruments the dashboard tick with Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"microengineer/pkg/logging"
)

var (
	ticksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "microengineer_ticks_total",
			Help: "Total number of dashboard ticks.",
		},
		[]string{"context"},
	)

	tickDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "microengineer_tick_duration_seconds",
			Help:    "Time spent refreshing entries in one tick.",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"context"},
	)

	entriesRefreshedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "microengineer_entries_refreshed_total",
			Help: "Total number of entry refreshes.",
		},
	)

	entriesNoData = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "microengineer_entries_no_data",
			Help: "Entries without data after the last tick.",
		},
		[]string{"context"},
	)

	stageRecomputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "microengineer_stage_recomputations_total",
			Help: "Total number of assembly stage table recomputations.",
		},
		[]string{"reason"},
	)

	logEntriesDropped = prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "microengineer_log_entries_dropped_total",
			Help: "Log entries dropped because the dashboard log pane was full.",
		},
		func() float64 { return float64(logging.Dropped()) },
	)
)

// Reasons for a stage table recomputation.
const (
	ReasonSolution = "solution"
	ReasonBody     = "body"
)

func init() {
	prometheus.MustRegister(ticksTotal)
	prometheus.MustRegister(tickDurationSeconds)
	prometheus.MustRegister(entriesRefreshedTotal)
	prometheus.MustRegister(entriesNoData)
	prometheus.MustRegister(stageRecomputationsTotal)
	prometheus.MustRegister(logEntriesDropped)
}

// ObserveTick records one tick in the given presentation context.
func ObserveTick(presentation string, duration time.Duration, refreshed, noData int) {
	ticksTotal.WithLabelValues(presentation).Inc()
	tickDurationSeconds.WithLabelValues(presentation).Observe(duration.Seconds())
	entriesRefreshedTotal.Add(float64(refreshed))
	entriesNoData.WithLabelValues(presentation).Set(float64(noData))
}

// StageRecomputed counts a stage table recomputation.
func StageRecomputed(reason string) {
	stageRecomputationsTotal.WithLabelValues(reason).Inc()
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Info("Metrics", "Serving metrics on http://%s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
