package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is the sale-pipeline document; only its creation is observed here.
type Order struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BuyerID   uuid.UUID `json:"buyer_id" db:"buyer_id"`
	ArtworkID uuid.UUID `json:"artwork_id" db:"artwork_id"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
