package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/observability/metrics"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/repository"
	textutil "github.com/FAFFA-GOLD/ai-news-batch/internal/utils/text"
)

// Config holds tunables for the ingestion service.
type Config struct {
	// ExtractParallelism bounds concurrent article content fetches within
	// one source. Dedup check and insert stay serialized regardless.
	ExtractParallelism int
}

// Service drives the ingestion pipeline: for every configured source it reads
// the feed, normalizes each entry, consults the dedup gate and persists new
// articles. A failure while processing a single entry never aborts the
// remaining entries or sources; only context cancellation stops a run.
type Service struct {
	ArticleRepo repository.ArticleRepository
	FeedFetcher FeedFetcher
	Extractor   ContentExtractor
	Notifier    Notifier
	cfg         Config
}

// NewService creates an ingestion Service.
// extractor and notifier may be nil to disable content extraction and
// notifications respectively.
func NewService(
	articleRepo repository.ArticleRepository,
	feedFetcher FeedFetcher,
	extractor ContentExtractor,
	notifier Notifier,
	cfg Config,
) *Service {
	if cfg.ExtractParallelism < 1 {
		cfg.ExtractParallelism = 1
	}
	return &Service{
		ArticleRepo: articleRepo,
		FeedFetcher: feedFetcher,
		Extractor:   extractor,
		Notifier:    notifier,
		cfg:         cfg,
	}
}

// CrawlStats contains statistics about one ingestion run.
type CrawlStats struct {
	Sources    int
	FeedItems  int64
	Inserted   int64
	Duplicated int64
	Rejected   int64
	Failed     int64
	Duration   time.Duration
}

// runState carries the per-run dedup state. The seen set plus the mutex make
// the check-then-insert sequence for a given URL atomic within one run; the
// race against a concurrent run of the whole pipeline remains open, an
// accepted bounded risk for a low-frequency polling job.
type runState struct {
	mu   sync.Mutex
	seen map[string]bool
}

// CrawlAll ingests all configured sources in list order and returns run
// statistics. It returns an error only when the run itself is cancelled;
// source- and entry-level failures are logged and counted, never propagated.
func (s *Service) CrawlAll(ctx context.Context, sources []entity.Source) (*CrawlStats, error) {
	logger := slog.Default()
	startAll := time.Now()
	stats := &CrawlStats{Sources: len(sources)}
	run := &runState{seen: make(map[string]bool)}

	for _, src := range sources {
		if err := s.processSource(ctx, src, run, stats); err != nil {
			stats.Duration = time.Since(startAll)
			return stats, err
		}
	}

	stats.Duration = time.Since(startAll)
	logger.Info("all sources crawl completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("feed_items", stats.FeedItems),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("rejected", stats.Rejected),
		slog.Int64("failed", stats.Failed),
		slog.Duration("duration", stats.Duration),
	)
	return stats, nil
}

// processSource drains one feed source. A fetch failure is a source-level
// recoverable condition: the source counts as zero entries for this run.
func (s *Service) processSource(ctx context.Context, src entity.Source, run *runState, stats *CrawlStats) error {
	logger := slog.Default()
	sourceStart := time.Now()

	items, err := s.FeedFetcher.Fetch(ctx, src.FeedURL)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		logger.Warn("failed to fetch feed, skipping source",
			slog.String("source", src.Name),
			slog.String("feed_url", src.FeedURL),
			slog.Any("error", err))
		metrics.RecordFeedCrawlError(src.Name, "fetch_failed")
		return nil
	}

	logger.Info("source crawl started",
		slog.String("source", src.Name),
		slog.Int("entries", len(items)))

	if len(items) == 0 {
		return nil
	}

	if err := s.processEntries(ctx, src, items, run, stats); err != nil {
		return fmt.Errorf("process entries for %s: %w", src.Name, err)
	}

	metrics.RecordFeedCrawl(src.Name, time.Since(sourceStart), len(items))
	return nil
}

// processEntries processes the entries of one source. Content extraction runs
// in parallel up to the configured bound; the dedup-check-then-persist
// sequence is serialized per run via runState. Every per-entry failure is
// turned into a counted, logged outcome; only context cancellation escapes.
func (s *Service) processEntries(ctx context.Context, src entity.Source, items []FeedItem, run *runState, stats *CrawlStats) error {
	logger := slog.Default()
	sem := make(chan struct{}, s.cfg.ExtractParallelism)
	eg, egCtx := errgroup.WithContext(ctx)

	for _, feedItem := range items {
		item := feedItem
		atomic.AddInt64(&stats.FeedItems, 1)

		eg.Go(func() error {
			sem <- struct{}{}
			art, err := s.normalize(egCtx, src.Name, item)
			<-sem

			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				atomic.AddInt64(&stats.Rejected, 1)
				metrics.RecordEntryOutcome(src.Name, metrics.OutcomeRejected)
				logger.Warn("entry rejected",
					slog.String("source", src.Name),
					slog.String("url", item.URL),
					slog.String("title", item.Title),
					slog.Any("error", err))
				return nil
			}

			inserted, err := s.admit(egCtx, run, art)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				// Store-level failure on check or insert is contained at
				// the entry boundary.
				atomic.AddInt64(&stats.Failed, 1)
				metrics.RecordEntryOutcome(src.Name, metrics.OutcomeFailed)
				logger.Warn("entry persist failed",
					slog.String("source", src.Name),
					slog.String("url", art.URL),
					slog.Any("error", err))
				return nil
			}

			if !inserted {
				atomic.AddInt64(&stats.Duplicated, 1)
				metrics.RecordEntryOutcome(src.Name, metrics.OutcomeDuplicate)
				logger.Debug("entry already present, skipped",
					slog.String("source", src.Name),
					slog.String("url", art.URL))
				return nil
			}

			atomic.AddInt64(&stats.Inserted, 1)
			metrics.RecordEntryOutcome(src.Name, metrics.OutcomeInserted)
			logger.Info("article inserted",
				slog.String("source", src.Name),
				slog.String("url", art.URL),
				slog.String("title", art.Title),
				slog.Int64("article_id", art.ID))

			if s.Notifier != nil {
				if err := s.Notifier.NotifyNewArticle(egCtx, art); err != nil {
					logger.Warn("failed to dispatch notification",
						slog.Int64("article_id", art.ID),
						slog.String("url", art.URL),
						slog.Any("error", err))
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

// normalize maps one raw feed entry into an article record.
// It rejects entries without link or title, resolves the publication
// timestamp (published, else updated, interpreted as UTC) and fills
// ContentRaw from the extractor, falling back to the feed summary.
func (s *Service) normalize(ctx context.Context, sourceName string, item FeedItem) (*entity.Article, error) {
	if item.URL == "" || item.Title == "" {
		return nil, ErrMissingFields
	}

	var publishedAt *time.Time
	switch {
	case item.Published != nil:
		t := item.Published.UTC()
		publishedAt = &t
	case item.Updated != nil:
		t := item.Updated.UTC()
		publishedAt = &t
	}

	// Extracted body text always wins over the feed excerpt when available.
	contentRaw := item.Summary
	if s.Extractor != nil {
		extractStart := time.Now()
		body, err := s.Extractor.Extract(ctx, item.URL)
		switch {
		case err == nil:
			metrics.RecordContentExtraction("success", time.Since(extractStart), textutil.CountRunes(body))
			contentRaw = &body
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case errors.Is(err, ErrNoContent):
			metrics.RecordContentExtraction("empty", time.Since(extractStart), 0)
			slog.Debug("no content extracted, using feed summary",
				slog.String("url", item.URL))
		default:
			metrics.RecordContentExtraction("failure", time.Since(extractStart), 0)
			slog.Debug("content extraction failed, using feed summary",
				slog.String("url", item.URL),
				slog.Any("error", err))
		}
	}

	art := &entity.Article{
		Source:      sourceName,
		URL:         item.URL,
		Title:       item.Title,
		Summary:     item.Summary,
		ContentRaw:  contentRaw,
		PublishedAt: publishedAt,
		CreatedAt:   time.Now(),
	}
	if err := art.Validate(); err != nil {
		return nil, err
	}
	return art, nil
}

// admit is the dedup gate: it reports whether the article was newly persisted
// (true) or already present (false). The whole check-then-insert runs under
// the run mutex so two entries sharing a URL cannot both pass the gate.
func (s *Service) admit(ctx context.Context, run *runState, art *entity.Article) (bool, error) {
	run.mu.Lock()
	defer run.mu.Unlock()

	if run.seen[art.URL] {
		return false, nil
	}

	exists, err := s.ArticleRepo.ExistsByURL(ctx, art.URL)
	if err != nil {
		return false, fmt.Errorf("exists check: %w", err)
	}
	if exists {
		run.seen[art.URL] = true
		return false, nil
	}

	if err := s.ArticleRepo.Create(ctx, art); err != nil {
		return false, fmt.Errorf("create article: %w", err)
	}
	run.seen[art.URL] = true
	return true, nil
}
