package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/config"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp sources file: %v", err)
	}
	return path
}

func TestLoadSources(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: OpenAI News
    url: https://openai.com/news/rss.xml
  - name: DeepMind Blog
    url: https://deepmind.google/blog/rss.xml
`)

	got, err := config.LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}

	want := []entity.Source{
		{Name: "OpenAI News", FeedURL: "https://openai.com/news/rss.xml"},
		{Name: "DeepMind Blog", FeedURL: "https://deepmind.google/blog/rss.xml"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSources_FileNotFound(t *testing.T) {
	if _, err := config.LoadSources("/nonexistent/sources.yaml"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadSources_InvalidYAML(t *testing.T) {
	path := writeSourcesFile(t, "sources: [not: {valid")

	if _, err := config.LoadSources(path); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLoadSources_EmptyList(t *testing.T) {
	path := writeSourcesFile(t, "sources: []")

	if _, err := config.LoadSources(path); err == nil {
		t.Fatal("expected error for empty source list, got nil")
	}
}

func TestLoadSources_InvalidSource(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing name",
			content: `
sources:
  - url: https://example.com/feed.xml
`,
		},
		{
			name: "missing url",
			content: `
sources:
  - name: Example
`,
		},
		{
			name: "non-http scheme",
			content: `
sources:
  - name: Example
    url: ftp://example.com/feed.xml
`,
		},
		{
			name: "duplicate url",
			content: `
sources:
  - name: First
    url: https://example.com/feed.xml
  - name: Second
    url: https://example.com/feed.xml
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSourcesFile(t, tt.content)
			if _, err := config.LoadSources(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
