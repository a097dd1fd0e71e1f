package notifications

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oluccaa/qualidade-sub001/internal/dbx"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// listLimit caps how many notifications a single listing returns.
const listLimit = 100

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO notifications (id, user_id, title, body, kind)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, n.ID, n.UserID, n.Title, n.Body, n.Kind).Scan(&n.CreatedAt)
	return dbx.MapError("insert notification", err)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	query :=
		`SELECT id, user_id, title, body, kind, read, created_at
		 FROM notifications
		 WHERE user_id = $1 AND (NOT $2 OR NOT read)
		 ORDER BY created_at DESC
		 LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, userID, unreadOnly, listLimit)
	if err != nil {
		return nil, dbx.MapError("list notifications", err)
	}
	defer rows.Close()

	var result []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Kind, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError("list notifications", err)
	}
	return result, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return dbx.MapError("mark notification read", err)
	}
	return dbx.ExpectOne("mark notification read", res)
}
