// Package metrics provides centralized Prometheus metrics for the ingestion
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track ingestion outcomes per source.
var (
	// ArticlesIngestedTotal counts processed feed entries by final outcome.
	// Outcomes: inserted, duplicate, rejected, failed.
	ArticlesIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_ingested_total",
			Help: "Total number of feed entries processed, by outcome",
		},
		[]string{"source", "outcome"},
	)

	// FeedEntriesTotal counts raw entries returned by feed reads.
	FeedEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_entries_total",
			Help: "Total number of raw entries returned by feed reads",
		},
		[]string{"source"},
	)

	// FeedCrawlDuration measures time to drain one feed source.
	FeedCrawlDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_crawl_duration_seconds",
			Help:    "Time taken to crawl a feed source",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"source"},
	)

	// FeedCrawlErrors counts source-level failures (unreachable/unparseable).
	FeedCrawlErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_crawl_errors_total",
			Help: "Total number of feed crawl errors",
		},
		[]string{"source", "error_type"},
	)

	// ArticlesTotal tracks the total number of articles in the database.
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the database",
		},
	)
)

// Content extraction metrics.
var (
	// ContentExtractionTotal counts extraction attempts by status.
	// Status: success, failure (transport or parse), empty (no qualifying text).
	ContentExtractionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_extraction_total",
			Help: "Total number of article content extraction attempts",
		},
		[]string{"status"},
	)

	// ContentExtractionDuration measures the time of one extraction attempt.
	ContentExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_extraction_duration_seconds",
			Help:    "Time taken to fetch and extract article content",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)

	// ContentExtractionSize measures the extracted text length in characters.
	ContentExtractionSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_extraction_size_chars",
			Help:    "Extracted article text length in characters",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		},
	)
)
