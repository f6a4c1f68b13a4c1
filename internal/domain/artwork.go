package domain

import (
	"time"

	"github.com/google/uuid"
)

type ArtworkStatus string

const (
	ArtworkAvailable ArtworkStatus = "available"
	ArtworkSold      ArtworkStatus = "sold"
	ArtworkExhibited ArtworkStatus = "exhibited"
)

type Dimensions struct {
	Height    float64 `json:"height"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
}

// Venue is the denormalized gallery snapshot attached to artworks and
// exhibitions. It is copied by value, never referenced.
type Venue struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Image   string `json:"image,omitempty"`
}

type Artwork struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Key         string        `json:"key" db:"key"`
	Category    string        `json:"category" db:"category"`
	Title       string        `json:"title" db:"title"`
	UserName    string        `json:"userName" db:"user_name"`
	UserID      uuid.UUID     `json:"userId" db:"user_id"`
	Description string        `json:"description" db:"description"`
	Dimensions  *Dimensions   `json:"dimensions,omitempty"`
	Edition     string        `json:"edition" db:"edition"`
	Images      []string      `json:"images"`
	Orientation string        `json:"orientation" db:"orientation"`
	Status      ArtworkStatus `json:"status" db:"status"`
	Keywords    []string      `json:"keywords"`
	Materials   []string      `json:"materials"`
	Styles      []string      `json:"styles"`
	Year        string        `json:"year" db:"year"`
	Price       float64       `json:"price" db:"price"`
	Frame       bool          `json:"frame" db:"frame"`
	ShopID      *string       `json:"shopId,omitempty" db:"shop_id"`
	Venue       *Venue        `json:"venue,omitempty"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// IndexProjection is the flattened document written to the search index.
// Nested dimensions and images are passed through untouched.
type IndexProjection struct {
	ID          string      `json:"id"`
	Key         string      `json:"key"`
	Category    string      `json:"category"`
	Title       string      `json:"title"`
	UserName    string      `json:"userName"`
	UserID      string      `json:"userId"`
	Description string      `json:"description"`
	Dimensions  *Dimensions `json:"dimensions"`
	Edition     string      `json:"edition"`
	Images      []string    `json:"images"`
	Orientation string      `json:"orientation"`
	Status      string      `json:"status"`
	Keywords    []string    `json:"keywords"`
	Materials   []string    `json:"materials"`
	Styles      []string    `json:"styles"`
	Year        string      `json:"year"`
	Price       float64     `json:"price"`
	Frame       bool        `json:"frame"`
}

func (a *Artwork) Projection() IndexProjection {
	p := IndexProjection{
		ID:          a.ID.String(),
		Key:         a.Key,
		Category:    a.Category,
		Title:       a.Title,
		UserName:    a.UserName,
		UserID:      a.UserID.String(),
		Description: a.Description,
		Dimensions:  a.Dimensions,
		Edition:     a.Edition,
		Images:      a.Images,
		Orientation: a.Orientation,
		Status:      string(a.Status),
		Keywords:    a.Keywords,
		Materials:   a.Materials,
		Styles:      a.Styles,
		Year:        a.Year,
		Price:       a.Price,
		Frame:       a.Frame,
	}
	if p.Keywords == nil {
		p.Keywords = []string{}
	}
	if p.Materials == nil {
		p.Materials = []string{}
	}
	if p.Styles == nil {
		p.Styles = []string{}
	}
	return p
}
