package entity

import "errors"

// Sentinel errors for entity validation.
var (
	// ErrEmptyURL indicates an article without a link. Such entries are
	// rejected before the dedup gate ever sees them.
	ErrEmptyURL = errors.New("article url must not be empty")

	// ErrEmptyTitle indicates an article without a title.
	ErrEmptyTitle = errors.New("article title must not be empty")

	// ErrEmptySourceName indicates a source configuration entry without a name.
	ErrEmptySourceName = errors.New("source name must not be empty")

	// ErrEmptyFeedURL indicates a source configuration entry without a feed URL.
	ErrEmptyFeedURL = errors.New("source feed url must not be empty")
)
