// Package order observes the sale pipeline: a new order marks the artwork
// sold and tells its owner.
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/events"
	"lonelywalls-events/internal/push"
	"lonelywalls-events/internal/repository"
	"lonelywalls-events/internal/service/notifier"
)

type Service interface {
	OrderCreated(ctx context.Context, ord *domain.Order) error
}

type service struct {
	artworks  repository.ArtworkRepository
	users     repository.UserRepository
	notifier  notifier.Service
	publisher events.Publisher
}

func NewService(artworks repository.ArtworkRepository, users repository.UserRepository, notifierSvc notifier.Service, publisher events.Publisher) Service {
	return &service{artworks: artworks, users: users, notifier: notifierSvc, publisher: publisher}
}

func (s *service) OrderCreated(ctx context.Context, ord *domain.Order) error {
	artwork, err := s.artworks.GetByID(ctx, ord.ArtworkID)
	if err != nil {
		return fmt.Errorf("failed to get ordered artwork: %w", err)
	}
	if artwork == nil {
		return nil
	}

	if err := s.artworks.SetSold(ctx, artwork.ID); err != nil {
		return fmt.Errorf("failed to mark artwork sold: %w", err)
	}
	s.publishArtworkUpdated(ctx, artwork.ID)

	buyerName := ""
	if buyer, err := s.users.GetByID(ctx, ord.BuyerID); err == nil && buyer != nil {
		buyerName = buyer.Name
	}

	var image *string
	if len(artwork.Images) > 0 {
		image = &artwork.Images[0]
	}
	status := string(domain.ArtworkSold)

	return s.notifier.Send(ctx, artwork.UserID, push.Payload{
		Title:     "Artwork sold",
		Body:      fmt.Sprintf("%q was purchased", artwork.Title),
		RouteName: "orders",
	}, &domain.Notification{
		ID:         domain.DeterministicID("notification", "order", ord.ID.String()),
		SenderName: buyerName,
		Type:       domain.NotifPurchase,
		Status:     &status,
		Image:      image,
	})
}

func (s *service) publishArtworkUpdated(ctx context.Context, artworkID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	artwork, err := s.artworks.GetByID(ctx, artworkID)
	if err != nil || artwork == nil {
		return
	}
	after, err := json.Marshal(artwork)
	if err != nil {
		return
	}
	ev := events.DocumentEvent{
		Collection: events.CollectionArtworks,
		Op:         events.OpUpdate,
		Params:     map[string]string{"artworkId": artworkID.String()},
		After:      after,
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		log.Printf("order: publish artwork update for %s failed: %v", artworkID, err)
	}
}
