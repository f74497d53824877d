package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
	pkgconfig "github.com/FAFFA-GOLD/ai-news-batch/pkg/config"
)

// SlackConfig contains configuration for Slack webhook notifications.
type SlackConfig struct {
	// Enabled indicates whether Slack notifications are enabled
	Enabled bool

	// WebhookURL is the Slack Incoming Webhook URL
	WebhookURL string

	// Timeout is the HTTP request timeout for webhook calls
	Timeout time.Duration
}

// LoadSlackConfigFromEnv reads Slack notification settings from the
// environment. Notifications stay disabled unless SLACK_ENABLED is true and
// a webhook URL is present.
func LoadSlackConfigFromEnv() SlackConfig {
	cfg := SlackConfig{
		Enabled:    pkgconfig.GetEnvBool("SLACK_ENABLED", false),
		WebhookURL: pkgconfig.GetEnvString("SLACK_WEBHOOK_URL", ""),
		Timeout:    pkgconfig.GetEnvDuration("SLACK_TIMEOUT", 10*time.Second),
	}
	if cfg.WebhookURL == "" {
		cfg.Enabled = false
	}
	return cfg
}

// SlackNotifier sends article notifications to Slack via Incoming Webhook.
// Sends are rate limited to 1 message per second (the webhook limit).
type SlackNotifier struct {
	config  SlackConfig
	client  *http.Client
	limiter *rate.Limiter
}

// NewSlackNotifier creates a new SlackNotifier with the given configuration.
func NewSlackNotifier(config SlackConfig) *SlackNotifier {
	return &SlackNotifier{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(1, 1),
	}
}

// slackWebhookPayload is the JSON payload sent to the webhook, using Block Kit.
type slackWebhookPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string            `json:"type"`
	Text     *slackTextObject  `json:"text,omitempty"`
	Elements []slackTextObject `json:"elements,omitempty"`
}

type slackTextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

const (
	// Block Kit limits
	maxSectionTextLength = 3000
	maxFallbackLength    = 150

	truncationSuffix = "..."
)

// buildPayload creates the webhook payload for a stored article: a section
// block with the linked title and summary, and a context block with the
// source name and publication timestamp.
func (s *SlackNotifier) buildPayload(article *entity.Article) slackWebhookPayload {
	fallback := fmt.Sprintf("%s - %s", article.Title, article.Source)
	if len(fallback) > maxFallbackLength {
		fallback = fallback[:maxFallbackLength-len(truncationSuffix)] + truncationSuffix
	}

	sectionText := fmt.Sprintf("*<%s|%s>*", article.URL, article.Title)
	if article.Summary != nil && *article.Summary != "" {
		sectionText = fmt.Sprintf("%s\n\n%s", sectionText, *article.Summary)
	}
	if len(sectionText) > maxSectionTextLength {
		sectionText = sectionText[:maxSectionTextLength-len(truncationSuffix)] + truncationSuffix
	}

	contextText := article.Source
	if article.PublishedAt != nil {
		contextText = fmt.Sprintf("%s • %s", article.Source, article.PublishedAt.Format(time.RFC3339))
	}

	return slackWebhookPayload{
		Text: fallback,
		Blocks: []slackBlock{
			{
				Type: "section",
				Text: &slackTextObject{Type: "mrkdwn", Text: sectionText},
			},
			{
				Type: "context",
				Elements: []slackTextObject{
					{Type: "mrkdwn", Text: contextText},
				},
			},
		},
	}
}

// NotifyNewArticle posts the article to the configured webhook.
// Non-2xx responses are returned as errors; the caller logs and continues.
func (s *SlackNotifier) NotifyNewArticle(ctx context.Context, article *entity.Article) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	jsonData, err := json.Marshal(s.buildPayload(article))
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("slack webhook returned %d: %s", resp.StatusCode, string(body))
}
