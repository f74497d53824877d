// Package ingest implements the ingestion pipeline use case: feed traversal,
// entry normalization, the dedup gate and persistence, with per-entry
// failure isolation.
package ingest

import "errors"

// Sentinel errors for ingestion operations.
var (
	// ErrMissingFields indicates a feed entry without a link or title.
	// Such entries are rejected with a diagnostic and skipped.
	ErrMissingFields = errors.New("feed entry is missing link or title")

	// ErrNoContent indicates the content extractor found no usable body
	// text for a page. Callers fall back to the feed summary.
	ErrNoContent = errors.New("no readable content found")
)
