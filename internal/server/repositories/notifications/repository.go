package notifications

import (
	"context"

	"github.com/oluccaa/qualidade-sub001/internal/models"
)

type Repository interface {
	Insert(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error)
	// MarkRead flags a notification owned by userID as read.
	MarkRead(ctx context.Context, id, userID string) error
}
