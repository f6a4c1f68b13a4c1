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

type ExhibitionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exhibition, error)
	SetChatRoomID(ctx context.Context, id, chatRoomID uuid.UUID) error
}

type exhibitionRepository struct {
	db *sqlx.DB
}

func NewExhibitionRepository(db *sqlx.DB) ExhibitionRepository {
	return &exhibitionRepository{db: db}
}

type exhibitionRow struct {
	ID         uuid.UUID      `db:"id"`
	Title      *string        `db:"title"`
	CreatedAt  time.Time      `db:"created_at"`
	EditedAt   *time.Time     `db:"edited_at"`
	EditedBy   *uuid.UUID     `db:"edited_by"`
	StartDate  *time.Time     `db:"start_date"`
	EndDate    *time.Time     `db:"end_date"`
	CreatorID  uuid.UUID      `db:"creator_id"`
	MemberIDs  pq.StringArray `db:"member_ids"`
	Status     string         `db:"status"`
	Venue      []byte         `db:"venue"`
	Artist     []byte         `db:"artist"`
	ChatRoomID *uuid.UUID     `db:"chat_room_id"`
	ArtworkIDs pq.StringArray `db:"artwork_ids"`
}

func (r exhibitionRow) toDomain() (*domain.Exhibition, error) {
	venue, err := unmarshalInto[domain.Venue](r.Venue)
	if err != nil {
		return nil, err
	}
	artist, err := unmarshalInto[domain.ArtistSnapshot](r.Artist)
	if err != nil {
		return nil, err
	}

	return &domain.Exhibition{
		ID:         r.ID,
		Title:      r.Title,
		CreatedAt:  r.CreatedAt,
		EditedAt:   r.EditedAt,
		EditedBy:   r.EditedBy,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		CreatorID:  r.CreatorID,
		MemberIDs:  stringsToUUIDs(r.MemberIDs),
		Status:     domain.ExhibitionStatus(r.Status),
		Venue:      venue,
		Artist:     artist,
		ChatRoomID: r.ChatRoomID,
		ArtworkIDs: stringsToUUIDs(r.ArtworkIDs),
	}, nil
}

func (r *exhibitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exhibition, error) {
	var row exhibitionRow
	query := `SELECT * FROM exhibitions WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain()
}

func (r *exhibitionRepository) SetChatRoomID(ctx context.Context, id, chatRoomID uuid.UUID) error {
	query := `UPDATE exhibitions SET chat_room_id = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, chatRoomID)
	return err
}
