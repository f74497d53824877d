package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) ExistsByURL(ctx context.Context, url string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE url = $1)`
	var existsFlag bool
	err := repo.db.QueryRowContext(ctx, query, url).Scan(&existsFlag)
	if err != nil {
		return false, fmt.Errorf("ExistsByURL: %w", err)
	}
	return existsFlag, nil
}

// Create inserts the article and fills in its generated ID.
// created_at is assigned by the database.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
	   (source, url, title, summary, content_raw, published_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.Source, article.URL, article.Title,
		article.Summary, article.ContentRaw, article.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// CountArticles returns the total number of stored articles.
func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}
