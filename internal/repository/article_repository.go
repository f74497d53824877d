// Package repository defines the persistence interfaces consumed by the
// ingestion use case. Concrete implementations live under
// internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
)

// ArticleRepository is the store collaborator of the ingestion pipeline.
// The pipeline consumes exactly two operations: an existence check on the
// unique url key (the dedup gate) and an insert. The store is NOT required
// to enforce url uniqueness; the gate performs a read-before-write check,
// which is not atomic against concurrent runs.
type ArticleRepository interface {
	// ExistsByURL reports whether an article with the given url is already
	// persisted. This is a point lookup against the url index.
	ExistsByURL(ctx context.Context, url string) (bool, error)

	// Create persists a new article and fills in the store-assigned ID and
	// creation timestamp.
	Create(ctx context.Context, article *entity.Article) error

	// CountArticles returns the total number of persisted articles.
	// Used to refresh the articles_total gauge after a run.
	CountArticles(ctx context.Context) (int64, error)
}
