package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lonelywalls-events/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unseenOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error)
	CountUnseen(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkSeen(ctx context.Context, id uuid.UUID) error
	MarkAllSeen(ctx context.Context, userID uuid.UUID) error
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, sender_name, type, status, image, seen)
		VALUES ($1, $2, $3, $4, $5, $6, false)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at`

	rows, err := r.db.QueryxContext(ctx, query,
		notif.ID, notif.UserID, notif.SenderName, notif.Type, notif.Status, notif.Image,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&notif.CreatedAt); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unseenOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	params.Validate()

	filter := ``
	if unseenOnly {
		filter = ` AND seen = false`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1` + filter
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM notifications
		WHERE user_id = $1` + filter + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var notifications []domain.Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset())
	return notifications, total, err
}

func (r *notificationRepository) CountUnseen(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND seen = false`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *notificationRepository) MarkSeen(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET seen = true WHERE id = $1 AND seen = false`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *notificationRepository) MarkAllSeen(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET seen = true WHERE user_id = $1 AND seen = false`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
