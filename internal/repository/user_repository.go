package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lonelywalls-events/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

type userRow struct {
	ID                uuid.UUID `db:"id"`
	Name              string    `db:"name"`
	Email             string    `db:"email"`
	PushToken         *string   `db:"push_token"`
	NotifyExhibitions bool      `db:"notify_exhibitions"`
	NotifyMessages    bool      `db:"notify_messages"`
	NotifyPurchases   bool      `db:"notify_purchases"`
	CreatedAt         time.Time `db:"created_at"`
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		PushToken: row.PushToken,
		Settings: domain.NotificationSettings{
			Exhibitions: row.NotifyExhibitions,
			Messages:    row.NotifyMessages,
			Purchases:   row.NotifyPurchases,
		},
		CreatedAt: row.CreatedAt,
	}, nil
}
