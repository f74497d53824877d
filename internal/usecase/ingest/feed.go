package ingest

import (
	"context"
	"time"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
)

// FeedItem represents a single raw entry from an RSS/Atom feed.
// Optional feed fields are pointers; defaulting happens once, at the feed
// reader boundary, so later stages never probe for absent fields.
type FeedItem struct {
	Title     string
	URL       string
	Summary   *string
	Published *time.Time
	Updated   *time.Time
}

// FeedFetcher is an interface for fetching RSS/Atom feeds from a URL.
// A failed or unparseable feed surfaces as an error; the orchestrator treats
// it as zero entries for this run and moves on to the next source.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedItem, error)
}

// ContentExtractor is an interface for extracting readable article body text
// from a web page. Implementations report "no usable text" with ErrNoContent;
// every extraction error is recoverable and falls back to the feed summary.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Notifier is an optional side channel invoked after each successful insert.
// Failures are logged, never propagated.
type Notifier interface {
	NotifyNewArticle(ctx context.Context, article *entity.Article) error
}
