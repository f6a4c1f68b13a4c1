package order_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/events"
	"lonelywalls-events/internal/mocks"
	"lonelywalls-events/internal/service/order"
)

func TestOrderCreated(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	buyer := uuid.New()

	artwork := &domain.Artwork{
		ID:       uuid.New(),
		UserID:   owner,
		Title:    "Harbour at Dusk",
		Category: "painting",
		Images:   []string{"artworks/a1.jpg"},
		Status:   domain.ArtworkAvailable,
	}

	t.Run("Marks Sold Publishes And Notifies Owner", func(t *testing.T) {
		artworks := new(mocks.ArtworkRepository)
		users := new(mocks.UserRepository)
		notifier := new(mocks.NotifierService)
		publisher := new(mocks.Publisher)
		svc := order.NewService(artworks, users, notifier, publisher)

		artworks.On("GetByID", ctx, artwork.ID).Return(artwork, nil)
		artworks.On("SetSold", ctx, artwork.ID).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(ev events.DocumentEvent) bool {
			return ev.Collection == events.CollectionArtworks &&
				ev.Op == events.OpUpdate &&
				ev.Params["artworkId"] == artwork.ID.String()
		})).Return(nil).Once()
		users.On("GetByID", ctx, buyer).Return(&domain.User{ID: buyer, Name: "Jonas Herre"}, nil).Once()
		notifier.On("Send", ctx, owner, mock.Anything, mock.MatchedBy(func(rec *domain.Notification) bool {
			return rec.Type == domain.NotifPurchase &&
				rec.SenderName == "Jonas Herre" &&
				rec.Status != nil && *rec.Status == "sold" &&
				rec.Image != nil && *rec.Image == "artworks/a1.jpg"
		})).Return(nil).Once()

		err := svc.OrderCreated(ctx, &domain.Order{ID: uuid.New(), BuyerID: buyer, ArtworkID: artwork.ID})

		assert.NoError(t, err)
		artworks.AssertExpectations(t)
		publisher.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("Missing Artwork Is A NoOp", func(t *testing.T) {
		artworks := new(mocks.ArtworkRepository)
		notifier := new(mocks.NotifierService)
		svc := order.NewService(artworks, new(mocks.UserRepository), notifier, nil)

		missing := uuid.New()
		artworks.On("GetByID", ctx, missing).Return(nil, nil).Once()

		err := svc.OrderCreated(ctx, &domain.Order{ID: uuid.New(), BuyerID: buyer, ArtworkID: missing})

		assert.NoError(t, err)
		artworks.AssertNotCalled(t, "SetSold", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redelivery Regenerates The Same Record ID", func(t *testing.T) {
		artworks := new(mocks.ArtworkRepository)
		users := new(mocks.UserRepository)
		notifier := new(mocks.NotifierService)
		svc := order.NewService(artworks, users, notifier, nil)

		artworks.On("GetByID", ctx, artwork.ID).Return(artwork, nil)
		artworks.On("SetSold", ctx, artwork.ID).Return(nil)
		users.On("GetByID", ctx, buyer).Return(nil, nil)

		var recIDs []uuid.UUID
		notifier.On("Send", ctx, owner, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			recIDs = append(recIDs, args.Get(3).(*domain.Notification).ID)
		}).Return(nil)

		ord := &domain.Order{ID: uuid.New(), BuyerID: buyer, ArtworkID: artwork.ID}
		assert.NoError(t, svc.OrderCreated(ctx, ord))
		assert.NoError(t, svc.OrderCreated(ctx, ord))

		assert.Len(t, recIDs, 2)
		assert.NotEqual(t, uuid.Nil, recIDs[0])
		assert.Equal(t, recIDs[0], recIDs[1])
	})

	t.Run("Unknown Buyer Leaves Sender Name Empty", func(t *testing.T) {
		artworks := new(mocks.ArtworkRepository)
		users := new(mocks.UserRepository)
		notifier := new(mocks.NotifierService)
		svc := order.NewService(artworks, users, notifier, nil)

		artworks.On("GetByID", ctx, artwork.ID).Return(artwork, nil)
		artworks.On("SetSold", ctx, artwork.ID).Return(nil).Once()
		users.On("GetByID", ctx, buyer).Return(nil, nil).Once()
		notifier.On("Send", ctx, owner, mock.Anything, mock.MatchedBy(func(rec *domain.Notification) bool {
			return rec.SenderName == ""
		})).Return(nil).Once()

		err := svc.OrderCreated(ctx, &domain.Order{ID: uuid.New(), BuyerID: buyer, ArtworkID: artwork.ID})

		assert.NoError(t, err)
		notifier.AssertExpectations(t)
	})
}
