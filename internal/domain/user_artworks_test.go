package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lonelywalls-events/internal/domain"
)

func TestBuildUserArtworks(t *testing.T) {
	userID := uuid.New()

	t.Run("Derives Prices Facets And Keywords", func(t *testing.T) {
		artworks := []domain.Artwork{
			{
				Title:       "Blue Sky",
				Category:    "painting",
				Price:       800,
				Frame:       true,
				Styles:      []string{"abstract"},
				Materials:   []string{"oil"},
				Orientation: "landscape",
			},
			{
				Title:       "Harbour",
				Category:    "print",
				Price:       150,
				Styles:      []string{"abstract", "minimalism"},
				Orientation: "portrait",
			},
		}

		agg := domain.BuildUserArtworks(userID, artworks)

		assert.Equal(t, userID, agg.UserID)
		assert.Equal(t, 2, agg.ArtworkCount)
		assert.Equal(t, 150.0, *agg.MinPrice)
		assert.Equal(t, 800.0, *agg.MaxPrice)
		assert.True(t, agg.HasFrame)
		assert.Equal(t, []string{"painting", "print"}, agg.Filters.Categories)
		assert.Equal(t, []string{"abstract", "minimalism"}, agg.Filters.Styles)
		assert.Equal(t, []string{"landscape", "portrait"}, agg.Filters.Orientations)
		assert.Contains(t, agg.Keywords, "blue sky")
		assert.Contains(t, agg.Keywords, "harbour")
	})

	t.Run("Empty Set Yields Empty Aggregate", func(t *testing.T) {
		agg := domain.BuildUserArtworks(userID, nil)

		assert.Equal(t, 0, agg.ArtworkCount)
		assert.Nil(t, agg.MinPrice)
		assert.Nil(t, agg.MaxPrice)
		assert.False(t, agg.HasFrame)
		assert.Empty(t, agg.Filters.Categories)
		assert.Empty(t, agg.Keywords)
	})
}

func TestExhibitionMembers(t *testing.T) {
	creator := uuid.New()
	other := uuid.New()
	ex := &domain.Exhibition{CreatorID: creator, MemberIDs: []uuid.UUID{creator, other}}

	assert.Equal(t, other, ex.Counterpart())
	assert.Equal(t, creator, ex.MemberOther(other))
	assert.Equal(t, uuid.Nil, (&domain.Exhibition{CreatorID: creator, MemberIDs: []uuid.UUID{creator}}).Counterpart())
}
