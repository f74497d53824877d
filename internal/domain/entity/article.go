// Package entity defines the core domain entities and validation logic for the
// ingestion pipeline. It contains the fundamental business objects, Article and
// Source, along with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents one persisted news article.
// Summary, ContentRaw and PublishedAt are nullable columns and therefore
// pointers; a nil pointer maps to SQL NULL.
type Article struct {
	ID          int64
	Source      string
	URL         string
	Title       string
	Summary     *string
	ContentRaw  *string
	PublishedAt *time.Time
	CreatedAt   time.Time
}

// Validate checks the invariants an Article must satisfy before it may be
// persisted: URL and Title are required. The pipeline creates an article
// exactly once and never updates it, so validation happens at assembly time.
func (a *Article) Validate() error {
	if a.URL == "" {
		return ErrEmptyURL
	}
	if a.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}
