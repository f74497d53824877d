package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// healthResponse is the body of the liveness probe.
type healthResponse struct {
	Status string `json:"status"`
}

// startMetricsServer serves the Prometheus /metrics endpoint for the
// duration of the run so a scraper can observe long batches in flight.
// The returned function shuts the server down; it is also triggered by
// context cancellation.
//
// Endpoints:
//   - GET /metrics - Prometheus metrics
//   - GET /health  - liveness probe, always 200
func startMetricsServer(ctx context.Context, logger *slog.Logger, port int) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server started", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", slog.Any("error", err))
		}
	}

	go func() {
		<-ctx.Done()
		shutdown()
	}()

	return shutdown
}
