package notifier_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
	"github.com/FAFFA-GOLD/ai-news-batch/internal/infra/notifier"
)

func testArticle() *entity.Article {
	summary := "A short summary of the release."
	published := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	return &entity.Article{
		ID:          1,
		Source:      "OpenAI News",
		URL:         "https://openai.com/news/release",
		Title:       "New model release",
		Summary:     &summary,
		PublishedAt: &published,
	}
}

func TestSlackNotifier_NotifyNewArticle(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := notifier.NewSlackNotifier(notifier.SlackConfig{
		Enabled:    true,
		WebhookURL: server.URL,
		Timeout:    5 * time.Second,
	})

	if err := n.NotifyNewArticle(context.Background(), testArticle()); err != nil {
		t.Fatalf("NotifyNewArticle() error = %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	text, _ := payload["text"].(string)
	if !strings.Contains(text, "New model release") {
		t.Errorf("fallback text = %q, want article title", text)
	}
	if !strings.Contains(string(gotBody), "https://openai.com/news/release") {
		t.Errorf("expected article URL in payload, got: %s", gotBody)
	}
	if !strings.Contains(string(gotBody), "A short summary") {
		t.Errorf("expected summary in payload, got: %s", gotBody)
	}
}

func TestSlackNotifier_NilOptionalFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := notifier.NewSlackNotifier(notifier.SlackConfig{
		Enabled:    true,
		WebhookURL: server.URL,
		Timeout:    5 * time.Second,
	})

	article := testArticle()
	article.Summary = nil
	article.PublishedAt = nil

	if err := n.NotifyNewArticle(context.Background(), article); err != nil {
		t.Fatalf("NotifyNewArticle() error = %v", err)
	}
}

func TestSlackNotifier_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer server.Close()

	n := notifier.NewSlackNotifier(notifier.SlackConfig{
		Enabled:    true,
		WebhookURL: server.URL,
		Timeout:    5 * time.Second,
	})

	err := n.NotifyNewArticle(context.Background(), testArticle())
	if err == nil {
		t.Fatal("expected error for HTTP 400, got nil")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("expected status code in error, got: %v", err)
	}
}

func TestLoadSlackConfigFromEnv_DisabledWithoutWebhook(t *testing.T) {
	t.Setenv("SLACK_ENABLED", "true")
	t.Setenv("SLACK_WEBHOOK_URL", "")

	cfg := notifier.LoadSlackConfigFromEnv()
	if cfg.Enabled {
		t.Error("expected notifications disabled without webhook URL")
	}
}

func TestLoadSlackConfigFromEnv_Enabled(t *testing.T) {
	t.Setenv("SLACK_ENABLED", "true")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T000/B000/XXX")
	t.Setenv("SLACK_TIMEOUT", "3s")

	cfg := notifier.LoadSlackConfigFromEnv()
	if !cfg.Enabled {
		t.Error("expected notifications enabled")
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
}

func TestNoOpNotifier(t *testing.T) {
	n := notifier.NewNoOpNotifier()
	if err := n.NotifyNewArticle(context.Background(), testArticle()); err != nil {
		t.Errorf("NotifyNewArticle() error = %v, want nil", err)
	}
}
