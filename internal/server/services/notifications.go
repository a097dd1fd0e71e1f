package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/repomanager"
)

// NotificationService delivers in-portal messages.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewNotificationService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *NotificationService {
	return &NotificationService{db: db, repomanager: m, logger: logger.With("service", "notifications")}
}

// Add sends a notification to target. Anyone may notify themselves;
// notifying others requires the inspect permission.
func (s *NotificationService) Add(ctx context.Context, sender models.User, target, title, body string, kind models.NotificationKind) (*models.Notification, error) {
	if target != sender.ID {
		if err := authorize(sender, models.ActionInspect); err != nil {
			return nil, err
		}
	}
	title = strings.TrimSpace(title)
	if target == "" || title == "" {
		return nil, fmt.Errorf("%w: recipient and title are required", common.ErrorValidation)
	}
	switch kind {
	case "":
		kind = models.NotificationInfo
	case models.NotificationInfo, models.NotificationSuccess, models.NotificationWarning, models.NotificationAlert:
	default:
		return nil, fmt.Errorf("%w: unknown notification kind %q", common.ErrorValidation, kind)
	}

	n := &models.Notification{UserID: target, Title: title, Body: body, Kind: kind}
	if err := s.repomanager.Notifications(s.db).Insert(ctx, n); err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "notification sent", "to", target, "kind", kind)
	return n, nil
}

// List returns the newest notifications of user.
func (s *NotificationService) List(ctx context.Context, user models.User, unreadOnly bool) ([]models.Notification, error) {
	items, err := s.repomanager.Notifications(s.db).ListByUser(ctx, user.ID, unreadOnly)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Notification{}
	}
	return items, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, user models.User, id string) error {
	return s.repomanager.Notifications(s.db).MarkRead(ctx, id, user.ID)
}
