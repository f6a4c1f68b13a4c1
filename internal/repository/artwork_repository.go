package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lonelywalls-events/internal/domain"
)

type ArtworkRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artwork, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Artwork, error)
	SetExhibited(ctx context.Context, id uuid.UUID, venue *domain.Venue) error
	SetSold(ctx context.Context, id uuid.UUID) error
}

type artworkRepository struct {
	db *sqlx.DB
}

func NewArtworkRepository(db *sqlx.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

type artworkRow struct {
	ID          uuid.UUID      `db:"id"`
	Key         string         `db:"key"`
	Category    string         `db:"category"`
	Title       string         `db:"title"`
	UserName    string         `db:"user_name"`
	UserID      uuid.UUID      `db:"user_id"`
	Description string         `db:"description"`
	Dimensions  []byte         `db:"dimensions"`
	Edition     string         `db:"edition"`
	Images      pq.StringArray `db:"images"`
	Orientation string         `db:"orientation"`
	Status      string         `db:"status"`
	Keywords    pq.StringArray `db:"keywords"`
	Materials   pq.StringArray `db:"materials"`
	Styles      pq.StringArray `db:"styles"`
	Year        string         `db:"year"`
	Price       float64        `db:"price"`
	Frame       bool           `db:"frame"`
	ShopID      *string        `db:"shop_id"`
	Venue       []byte         `db:"venue"`
	CreatedAt   sql.NullTime   `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}

func (r artworkRow) toDomain() (*domain.Artwork, error) {
	dims, err := unmarshalInto[domain.Dimensions](r.Dimensions)
	if err != nil {
		return nil, err
	}
	venue, err := unmarshalInto[domain.Venue](r.Venue)
	if err != nil {
		return nil, err
	}

	a := &domain.Artwork{
		ID:          r.ID,
		Key:         r.Key,
		Category:    r.Category,
		Title:       r.Title,
		UserName:    r.UserName,
		UserID:      r.UserID,
		Description: r.Description,
		Dimensions:  dims,
		Edition:     r.Edition,
		Images:      r.Images,
		Orientation: r.Orientation,
		Status:      domain.ArtworkStatus(r.Status),
		Keywords:    r.Keywords,
		Materials:   r.Materials,
		Styles:      r.Styles,
		Year:        r.Year,
		Price:       r.Price,
		Frame:       r.Frame,
		ShopID:      r.ShopID,
		Venue:       venue,
	}
	if r.CreatedAt.Valid {
		a.CreatedAt = r.CreatedAt.Time
	}
	if r.UpdatedAt.Valid {
		a.UpdatedAt = r.UpdatedAt.Time
	}
	return a, nil
}

func (r *artworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artwork, error) {
	var row artworkRow
	query := `SELECT * FROM artworks WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain()
}

func (r *artworkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Artwork, error) {
	var rows []artworkRow
	query := `SELECT * FROM artworks WHERE user_id = $1 ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	artworks := make([]domain.Artwork, 0, len(rows))
	for _, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, *a)
	}
	return artworks, nil
}

func (r *artworkRepository) SetExhibited(ctx context.Context, id uuid.UUID, venue *domain.Venue) error {
	var venueJSON []byte
	if venue != nil {
		var err error
		venueJSON, err = json.Marshal(venue)
		if err != nil {
			return err
		}
	}

	query := `UPDATE artworks SET status = $2, venue = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, domain.ArtworkExhibited, venueJSON)
	return err
}

func (r *artworkRepository) SetSold(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE artworks SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, domain.ArtworkSold)
	return err
}
