package repository

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lonelywalls-events/internal/domain"
)

type UserArtworksRepository interface {
	// Upsert replaces the user's aggregate wholesale; it is recomputed from
	// scratch on every artwork change, so last write wins.
	Upsert(ctx context.Context, agg *domain.UserArtworks) error
}

type userArtworksRepository struct {
	db *sqlx.DB
}

func NewUserArtworksRepository(db *sqlx.DB) UserArtworksRepository {
	return &userArtworksRepository{db: db}
}

func (r *userArtworksRepository) Upsert(ctx context.Context, agg *domain.UserArtworks) error {
	filters, err := json.Marshal(agg.Filters)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users_artworks (user_id, artwork_count, min_price, max_price, has_frame, filters, keywords, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			artwork_count = EXCLUDED.artwork_count,
			min_price = EXCLUDED.min_price,
			max_price = EXCLUDED.max_price,
			has_frame = EXCLUDED.has_frame,
			filters = EXCLUDED.filters,
			keywords = EXCLUDED.keywords,
			updated_at = NOW()`

	_, err = r.db.ExecContext(ctx, query,
		agg.UserID, agg.ArtworkCount, agg.MinPrice, agg.MaxPrice, agg.HasFrame,
		filters, pq.StringArray(agg.Keywords),
	)
	return err
}
