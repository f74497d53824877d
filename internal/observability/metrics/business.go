package metrics

import "time"

// Outcome labels for RecordEntryOutcome.
const (
	OutcomeInserted  = "inserted"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// RecordEntryOutcome records the final outcome of one processed feed entry.
func RecordEntryOutcome(source, outcome string) {
	ArticlesIngestedTotal.WithLabelValues(source, outcome).Inc()
}

// RecordFeedCrawl records metrics for one drained feed source.
func RecordFeedCrawl(source string, duration time.Duration, entries int) {
	FeedCrawlDuration.WithLabelValues(source).Observe(duration.Seconds())
	FeedEntriesTotal.WithLabelValues(source).Add(float64(entries))
}

// RecordFeedCrawlError records a source-level failure during feed reading.
// The source is skipped for this run, so there is at most one per source.
func RecordFeedCrawlError(source, errorType string) {
	FeedCrawlErrors.WithLabelValues(source, errorType).Inc()
}

// RecordContentExtraction records one extraction attempt.
// Status should be one of "success", "failure", "empty".
func RecordContentExtraction(status string, duration time.Duration, sizeChars int) {
	ContentExtractionTotal.WithLabelValues(status).Inc()
	ContentExtractionDuration.Observe(duration.Seconds())
	if status == "success" {
		ContentExtractionSize.Observe(float64(sizeChars))
	}
}

// UpdateArticlesTotal updates the articles_total gauge.
// Refreshed once at the end of a run from a store count.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}
