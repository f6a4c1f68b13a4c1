package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lonelywalls-events/internal/domain"
)

type ChatRoomRepository interface {
	Create(ctx context.Context, room *domain.ChatRoom) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ChatRoom, error)
	GetByExhibition(ctx context.Context, exhibitionID uuid.UUID) (*domain.ChatRoom, error)
}

type chatRoomRepository struct {
	db *sqlx.DB
}

func NewChatRoomRepository(db *sqlx.DB) ChatRoomRepository {
	return &chatRoomRepository{db: db}
}

type chatRoomRow struct {
	ID           uuid.UUID      `db:"id"`
	ExhibitionID uuid.UUID      `db:"exhibition_id"`
	MemberIDs    pq.StringArray `db:"member_ids"`
	CreatorID    uuid.UUID      `db:"creator_id"`
	Seen         bool           `db:"seen"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r chatRoomRow) toDomain() *domain.ChatRoom {
	return &domain.ChatRoom{
		ID:           r.ID,
		ExhibitionID: r.ExhibitionID,
		MemberIDs:    stringsToUUIDs(r.MemberIDs),
		CreatorID:    r.CreatorID,
		Seen:         r.Seen,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *chatRoomRepository) Create(ctx context.Context, room *domain.ChatRoom) error {
	query := `
		INSERT INTO chat_rooms (id, exhibition_id, member_ids, creator_id, seen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		room.ID, room.ExhibitionID, uuidsToStrings(room.MemberIDs),
		room.CreatorID, room.Seen, room.CreatedAt,
	)
	return err
}

func (r *chatRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChatRoom, error) {
	var row chatRoomRow
	query := `SELECT * FROM chat_rooms WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *chatRoomRepository) GetByExhibition(ctx context.Context, exhibitionID uuid.UUID) (*domain.ChatRoom, error) {
	var row chatRoomRow
	query := `SELECT * FROM chat_rooms WHERE exhibition_id = $1 ORDER BY created_at LIMIT 1`

	err := r.db.GetContext(ctx, &row, query, exhibitionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}
