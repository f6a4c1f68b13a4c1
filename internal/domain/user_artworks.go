package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"lonelywalls-events/internal/pkg/keywords"
)

// ArtworkFilters are the facet values present across one user's artworks,
// used by the client to build filter menus without scanning every document.
type ArtworkFilters struct {
	Categories   []string `json:"categories"`
	Styles       []string `json:"styles"`
	Materials    []string `json:"materials"`
	Orientations []string `json:"orientations"`
}

// UserArtworks is the per-user aggregate recomputed whenever one of the
// user's artworks changes.
type UserArtworks struct {
	UserID       uuid.UUID      `json:"user_id" db:"user_id"`
	ArtworkCount int            `json:"artwork_count" db:"artwork_count"`
	MinPrice     *float64       `json:"min_price,omitempty" db:"min_price"`
	MaxPrice     *float64       `json:"max_price,omitempty" db:"max_price"`
	HasFrame     bool           `json:"has_frame" db:"has_frame"`
	Filters      ArtworkFilters `json:"filters"`
	Keywords     []string       `json:"keywords"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// BuildUserArtworks derives the aggregate from the user's current artworks.
func BuildUserArtworks(userID uuid.UUID, artworks []Artwork) *UserArtworks {
	agg := &UserArtworks{
		UserID:       userID,
		ArtworkCount: len(artworks),
		Filters: ArtworkFilters{
			Categories:   []string{},
			Styles:       []string{},
			Materials:    []string{},
			Orientations: []string{},
		},
		Keywords: []string{},
	}

	categories := make(map[string]struct{})
	styles := make(map[string]struct{})
	materials := make(map[string]struct{})
	orientations := make(map[string]struct{})
	keywordSets := make([][]string, 0, len(artworks))

	for _, a := range artworks {
		if agg.MinPrice == nil || a.Price < *agg.MinPrice {
			price := a.Price
			agg.MinPrice = &price
		}
		if agg.MaxPrice == nil || a.Price > *agg.MaxPrice {
			price := a.Price
			agg.MaxPrice = &price
		}
		if a.Frame {
			agg.HasFrame = true
		}
		if a.Category != "" {
			categories[a.Category] = struct{}{}
		}
		for _, s := range a.Styles {
			styles[s] = struct{}{}
		}
		for _, m := range a.Materials {
			materials[m] = struct{}{}
		}
		if a.Orientation != "" {
			orientations[a.Orientation] = struct{}{}
		}
		keywordSets = append(keywordSets, keywords.GeneratePhrase(a.Title))
	}

	agg.Filters.Categories = sortedKeys(categories)
	agg.Filters.Styles = sortedKeys(styles)
	agg.Filters.Materials = sortedKeys(materials)
	agg.Filters.Orientations = sortedKeys(orientations)
	agg.Keywords = keywords.Merge(keywordSets...)
	return agg
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
