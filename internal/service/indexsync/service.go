// Package indexsync mirrors artwork documents into the search index and
// keeps the owning user's artwork aggregate current. Both writes are
// idempotent upserts: re-running a handler with the same input converges
// on the same state.
package indexsync

import (
	"context"
	"fmt"
	"log"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/repository"
	"lonelywalls-events/internal/search"
	"lonelywalls-events/internal/storage"
)

const artworksIndex = "artworks"

type Service interface {
	ArtworkSaved(ctx context.Context, artwork *domain.Artwork) error
	ArtworkDeleted(ctx context.Context, before *domain.Artwork) error
}

type service struct {
	artworks     repository.ArtworkRepository
	userArtworks repository.UserArtworksRepository
	indexer      search.Indexer
	media        storage.MediaStore
}

func NewService(
	artworks repository.ArtworkRepository,
	userArtworks repository.UserArtworksRepository,
	indexer search.Indexer,
	media storage.MediaStore,
) Service {
	return &service{
		artworks:     artworks,
		userArtworks: userArtworks,
		indexer:      indexer,
		media:        media,
	}
}

func (s *service) ArtworkSaved(ctx context.Context, artwork *domain.Artwork) error {
	// Incomplete documents (drafts mid-save, partial client writes) are
	// skipped, not errored: a later complete write will index them.
	if artwork.Title == "" || artwork.Category == "" {
		return nil
	}

	if err := s.indexer.Index(ctx, artworksIndex, artwork.ID.String(), artwork.Projection()); err != nil {
		return err
	}

	return s.refreshUserAggregate(ctx, artwork)
}

func (s *service) ArtworkDeleted(ctx context.Context, before *domain.Artwork) error {
	if err := s.indexer.Delete(ctx, artworksIndex, before.ID.String()); err != nil {
		return err
	}

	if s.media != nil {
		for _, key := range before.Images {
			if err := s.media.Remove(ctx, key); err != nil {
				log.Printf("indexsync: remove image object %s failed: %v", key, err)
			}
		}
	}

	return s.refreshUserAggregate(ctx, before)
}

func (s *service) refreshUserAggregate(ctx context.Context, artwork *domain.Artwork) error {
	remaining, err := s.artworks.ListByUser(ctx, artwork.UserID)
	if err != nil {
		return fmt.Errorf("failed to list user artworks: %w", err)
	}

	agg := domain.BuildUserArtworks(artwork.UserID, remaining)
	if err := s.userArtworks.Upsert(ctx, agg); err != nil {
		return fmt.Errorf("failed to upsert user artworks aggregate: %w", err)
	}
	return nil
}
