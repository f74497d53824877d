package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	srcconfig "github.com/FAFFA-GOLD/ai-news-batch/internal/config"
	pgRepo "github.com/FAFFA-GOLD/ai-news-batch/internal/infra/adapter/persistence/postgres"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/infra/db"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/infra/extractor"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/infra/notifier"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/infra/scraper"
	workerPkg "github.com/FAFFA-GOLD/ai-news-batch/internal/infra/worker"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/observability/logging"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/observability/metrics"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/usecase/ingest"
	pkgconfig "github.com/FAFFA-GOLD/ai-news-batch/pkg/config"
)

func main() {
	// .envはローカル開発用。無ければ環境変数のみで動く
	_ = godotenv.Load()

	runID := uuid.NewString()
	logger := logging.WithRunID(logging.NewLogger(), runID)
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	workerMetrics := workerPkg.NewWorkerMetrics()
	workerConfig := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	logger.Info("worker configuration loaded",
		slog.Duration("run_timeout", workerConfig.RunTimeout),
		slog.Int("extract_parallelism", workerConfig.ExtractParallelism),
		slog.Bool("metrics_enabled", workerConfig.MetricsEnabled),
		slog.Int("metrics_port", workerConfig.MetricsPort))

	sourcesPath := pkgconfig.GetEnvString("SOURCES_FILE", "sources.yaml")
	sources, err := srcconfig.LoadSources(sourcesPath)
	if err != nil {
		logger.Error("failed to load sources", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("sources loaded",
		slog.String("path", sourcesPath),
		slog.Int("count", len(sources)))

	contentExtractor, err := buildExtractor(logger)
	if err != nil {
		logger.Error("failed to configure content extractor", slog.Any("error", err))
		os.Exit(1)
	}

	articleNotifier := buildNotifier(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if workerConfig.MetricsEnabled {
		shutdownMetrics := startMetricsServer(ctx, logger, workerConfig.MetricsPort)
		defer shutdownMetrics()
	}

	svc := ingest.NewService(
		pgRepo.NewArticleRepo(database),
		scraper.NewRSSFetcher(&http.Client{Timeout: 30 * time.Second}),
		contentExtractor,
		articleNotifier,
		ingest.Config{ExtractParallelism: workerConfig.ExtractParallelism},
	)

	runCtx, cancel := context.WithTimeout(ctx, workerConfig.RunTimeout)
	defer cancel()

	start := time.Now()
	stats, runErr := svc.CrawlAll(runCtx, sources)
	workerMetrics.RecordJobDuration(time.Since(start))
	workerMetrics.RecordFeedsProcessed(stats.Sources)

	if runErr != nil {
		workerMetrics.RecordJobRun("failure")
		logger.Error("ingestion run ended early",
			slog.Any("error", runErr),
			slog.Int64("inserted", stats.Inserted))
	} else {
		workerMetrics.RecordJobRun("success")
		workerMetrics.RecordLastSuccess()
	}

	if total, err := svc.ArticleRepo.CountArticles(ctx); err == nil {
		metrics.UpdateArticlesTotal(total)
	}

	logger.Info("ingestion run finished",
		slog.Int("sources", stats.Sources),
		slog.Int64("feed_items", stats.FeedItems),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("rejected", stats.Rejected),
		slog.Int64("failed", stats.Failed),
		slog.Duration("duration", stats.Duration))
}

// initDatabase opens the connection pool and brings the schema up to date.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// buildExtractor selects the content extraction implementation from the
// environment.
func buildExtractor(logger *slog.Logger) (ingest.ContentExtractor, error) {
	cfg, err := extractor.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	logger.Info("content extractor configured",
		slog.String("type", cfg.Type),
		slog.Duration("timeout", cfg.Timeout),
		slog.Int("min_chars", cfg.MinChars))

	if cfg.Type == extractor.TypeReadability {
		return extractor.NewReadabilityExtractor(cfg), nil
	}
	return extractor.NewHeuristicExtractor(cfg), nil
}

// buildNotifier wires the Slack notifier when enabled, the no-op otherwise.
func buildNotifier(logger *slog.Logger) ingest.Notifier {
	cfg := notifier.LoadSlackConfigFromEnv()
	if !cfg.Enabled {
		logger.Info("notifications disabled")
		return notifier.NewNoOpNotifier()
	}
	logger.Info("Slack notifier initialized")
	return notifier.NewSlackNotifier(cfg)
}
