package notifier

import (
	"context"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
)

// NoOpNotifier is a no-operation implementation used when notifications are
// disabled. It avoids nil checks in the pipeline (Null Object pattern).
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// NotifyNewArticle does nothing and returns nil immediately.
func (n *NoOpNotifier) NotifyNewArticle(ctx context.Context, article *entity.Article) error {
	return nil
}
