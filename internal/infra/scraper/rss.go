// Package scraper provides the RSS/Atom feed reader.
// It uses the gofeed library to parse feed content; retrieval and parse
// failures surface as errors that the orchestrator treats as an empty feed.
package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/usecase/ingest"
)

const userAgent = "ai-news-batch/1.0 (+https://github.com/FAFFA-GOLD/ai-news-batch)"

// RSSFetcher implements ingest.FeedFetcher using the gofeed library.
type RSSFetcher struct {
	client *http.Client
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
// The client carries the feed retrieval timeout; one unresponsive feed host
// must not stall the run.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{client: client}
}

// Fetch retrieves and parses an RSS/Atom feed from the given URL.
// All optional item fields are defaulted here, once, at the reader boundary:
// absent summaries and timestamps come back as nil pointers so later stages
// never probe feed-format specifics.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]ingest.FeedItem, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]ingest.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		// Descriptionが抜粋、空ならContentを使用
		var summary *string
		switch {
		case it.Description != "":
			s := it.Description
			summary = &s
		case it.Content != "":
			s := it.Content
			summary = &s
		}

		items = append(items, ingest.FeedItem{
			Title:     it.Title,
			URL:       it.Link,
			Summary:   summary,
			Published: it.PublishedParsed,
			Updated:   it.UpdatedParsed,
		})
	}

	return items, nil
}
