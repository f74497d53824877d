package entity

import (
	"fmt"
	"net/url"
)

// Source represents one configured feed source.
// Sources are static configuration loaded once at process start; identity is
// the feed URL. The pipeline never mutates a source.
type Source struct {
	Name    string `yaml:"name"`
	FeedURL string `yaml:"url"`
}

// Validate validates the Source configuration entry.
// A source needs a non-empty name and an absolute http(s) feed URL.
func (s *Source) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("source: %w", ErrEmptySourceName)
	}
	if s.FeedURL == "" {
		return fmt.Errorf("source %q: %w", s.Name, ErrEmptyFeedURL)
	}
	u, err := url.Parse(s.FeedURL)
	if err != nil {
		return fmt.Errorf("source %q: invalid feed url: %w", s.Name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("source %q: feed url scheme %q not allowed (only http/https)", s.Name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("source %q: feed url has no host", s.Name)
	}
	return nil
}
