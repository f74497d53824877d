package extractor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-shiori/go-readability"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/usecase/ingest"
	textutil "github.com/FAFFA-GOLD/ai-news-batch/internal/utils/text"
)

// ReadabilityExtractor implements the ContentExtractor interface using the
// Mozilla Readability algorithm via go-shiori/go-readability. It is an
// alternative to the layout heuristic for pages where the heuristic picks
// the wrong container; select it with EXTRACTOR_TYPE=readability.
//
// Thread safety: ReadabilityExtractor is safe for concurrent use.
type ReadabilityExtractor struct {
	fetcher *pageFetcher
	cfg     Config
}

// NewReadabilityExtractor creates a ReadabilityExtractor with the given
// configuration.
func NewReadabilityExtractor(cfg Config) *ReadabilityExtractor {
	return &ReadabilityExtractor{
		fetcher: newPageFetcher(cfg),
		cfg:     cfg,
	}
}

// Extract fetches the article page and extracts clean article text.
// The same minimum-length gate applies as for the heuristic: text shorter
// than the threshold is treated as extraction failure so the caller falls
// back to the feed summary.
func (e *ReadabilityExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	body, finalURL, err := e.fetcher.fetch(ctx, urlStr)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(bytes.NewReader(body), finalURL)
	if err != nil {
		return "", fmt.Errorf("readability parse failed: %w", err)
	}

	text := article.TextContent
	if text == "" {
		return "", fmt.Errorf("%w: %s", ingest.ErrNoContent, urlStr)
	}
	if textutil.CountRunes(text) < e.cfg.MinChars {
		slog.Debug("readability output below threshold",
			slog.String("url", urlStr),
			slog.Int("chars", textutil.CountRunes(text)))
		return "", fmt.Errorf("%w: %d chars below threshold", ingest.ErrNoContent, textutil.CountRunes(text))
	}
	return text, nil
}
