package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/events"
	"lonelywalls-events/internal/mocks"
	"lonelywalls-events/internal/service"
)

type dispatcherMocks struct {
	indexSync  *mocks.IndexSyncService
	exhibition *mocks.ExhibitionService
	chat       *mocks.ChatService
	order      *mocks.OrderService
}

func newDispatcher() (*service.Dispatcher, *dispatcherMocks) {
	m := &dispatcherMocks{
		indexSync:  new(mocks.IndexSyncService),
		exhibition: new(mocks.ExhibitionService),
		chat:       new(mocks.ChatService),
		order:      new(mocks.OrderService),
	}
	d := &service.Dispatcher{
		IndexSync:  m.indexSync,
		Exhibition: m.exhibition,
		Chat:       m.chat,
		Order:      m.order,
	}
	return d, m
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return raw
}

func TestHandle_Artworks(t *testing.T) {
	ctx := context.Background()
	artworkID := uuid.New()

	t.Run("Update Routes To ArtworkSaved", func(t *testing.T) {
		d, m := newDispatcher()
		after := mustJSON(t, domain.Artwork{ID: artworkID, Title: "Harbour at Dusk", Category: "painting"})

		m.indexSync.On("ArtworkSaved", ctx, mock.MatchedBy(func(a *domain.Artwork) bool {
			return a.ID == artworkID
		})).Return(nil).Once()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionArtworks,
			Op:         events.OpUpdate,
			Params:     map[string]string{"artworkId": artworkID.String()},
			After:      after,
		})

		assert.NoError(t, err)
		m.indexSync.AssertExpectations(t)
	})

	t.Run("Delete Routes Before Snapshot", func(t *testing.T) {
		d, m := newDispatcher()
		before := mustJSON(t, domain.Artwork{ID: artworkID, Title: "Harbour at Dusk", Category: "painting"})

		m.indexSync.On("ArtworkDeleted", ctx, mock.Anything).Return(nil).Once()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionArtworks,
			Op:         events.OpDelete,
			Before:     before,
		})

		assert.NoError(t, err)
		m.indexSync.AssertExpectations(t)
	})

	t.Run("Snapshot Without ID Uses Path Param", func(t *testing.T) {
		d, m := newDispatcher()

		m.indexSync.On("ArtworkSaved", ctx, mock.MatchedBy(func(a *domain.Artwork) bool {
			return a.ID == artworkID
		})).Return(nil).Once()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionArtworks,
			Op:         events.OpCreate,
			Params:     map[string]string{"artworkId": artworkID.String()},
			After:      json.RawMessage(`{"title":"Untitled","category":"print"}`),
		})

		assert.NoError(t, err)
		m.indexSync.AssertExpectations(t)
	})

	t.Run("Undecodable Snapshot Is Dropped", func(t *testing.T) {
		d, m := newDispatcher()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionArtworks,
			Op:         events.OpUpdate,
			After:      json.RawMessage(`{not json`),
		})

		assert.NoError(t, err)
		m.indexSync.AssertNotCalled(t, "ArtworkSaved", mock.Anything, mock.Anything)
	})
}

func TestHandle_Exhibitions(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Routes To Created", func(t *testing.T) {
		d, m := newDispatcher()
		after := mustJSON(t, domain.Exhibition{ID: uuid.New(), Status: domain.ExhibitionRequested})

		m.exhibition.On("Created", ctx, mock.Anything).Return(nil).Once()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionExhibitions,
			Op:         events.OpCreate,
			After:      after,
		})

		assert.NoError(t, err)
		m.exhibition.AssertExpectations(t)
	})

	t.Run("Update Carries Both Snapshots", func(t *testing.T) {
		d, m := newDispatcher()
		id := uuid.New()
		before := mustJSON(t, domain.Exhibition{ID: id, Status: domain.ExhibitionRequested})
		after := mustJSON(t, domain.Exhibition{ID: id, Status: domain.ExhibitionAccepted})

		m.exhibition.On("Updated", ctx,
			mock.MatchedBy(func(ex *domain.Exhibition) bool { return ex.Status == domain.ExhibitionRequested }),
			mock.MatchedBy(func(ex *domain.Exhibition) bool { return ex.Status == domain.ExhibitionAccepted }),
		).Return(nil).Once()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionExhibitions,
			Op:         events.OpUpdate,
			Before:     before,
			After:      after,
		})

		assert.NoError(t, err)
		m.exhibition.AssertExpectations(t)
	})

	t.Run("Update Without Before Passes Nil", func(t *testing.T) {
		d, m := newDispatcher()
		after := mustJSON(t, domain.Exhibition{ID: uuid.New(), Status: domain.ExhibitionClosed})

		m.exhibition.On("Updated", ctx, (*domain.Exhibition)(nil), mock.Anything).Return(nil).Once()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionExhibitions,
			Op:         events.OpUpdate,
			After:      after,
		})

		assert.NoError(t, err)
		m.exhibition.AssertExpectations(t)
	})
}

func TestHandle_Messages(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("Create Routes To MessageCreated", func(t *testing.T) {
		d, m := newDispatcher()
		after := mustJSON(t, domain.Message{ID: uuid.New(), Type: domain.MessageTypeMessage, SenderID: uuid.New()})

		m.chat.On("MessageCreated", ctx, roomID, mock.Anything).Return(nil).Once()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionMessages,
			Op:         events.OpCreate,
			Params:     map[string]string{"chatRoomId": roomID.String()},
			After:      after,
		})

		assert.NoError(t, err)
		m.chat.AssertExpectations(t)
	})

	t.Run("Missing Room Param Drops Event", func(t *testing.T) {
		d, m := newDispatcher()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionMessages,
			Op:         events.OpCreate,
			After:      mustJSON(t, domain.Message{ID: uuid.New()}),
		})

		assert.NoError(t, err)
		m.chat.AssertNotCalled(t, "MessageCreated", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Non Create Ops Are Ignored", func(t *testing.T) {
		d, m := newDispatcher()

		for _, op := range []events.Op{events.OpUpdate, events.OpDelete} {
			err := d.Handle(ctx, events.DocumentEvent{
				Collection: events.CollectionMessages,
				Op:         op,
				Params:     map[string]string{"chatRoomId": roomID.String()},
			})
			assert.NoError(t, err, fmt.Sprintf("op %s", op))
		}
		m.chat.AssertNotCalled(t, "MessageCreated", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandle_Orders(t *testing.T) {
	ctx := context.Background()

	t.Run("Buyer Falls Back To Path Param", func(t *testing.T) {
		d, m := newDispatcher()
		buyerID := uuid.New()
		after := mustJSON(t, domain.Order{ID: uuid.New(), ArtworkID: uuid.New()})

		m.order.On("OrderCreated", ctx, mock.MatchedBy(func(ord *domain.Order) bool {
			return ord.BuyerID == buyerID
		})).Return(nil).Once()

		err := d.Handle(ctx, events.DocumentEvent{
			Collection: events.CollectionOrders,
			Op:         events.OpCreate,
			Params:     map[string]string{"userId": buyerID.String()},
			After:      after,
		})

		assert.NoError(t, err)
		m.order.AssertExpectations(t)
	})
}

func TestHandle_UnknownCollection(t *testing.T) {
	d, m := newDispatcher()

	err := d.Handle(context.Background(), events.DocumentEvent{Collection: "galleries", Op: events.OpCreate})

	assert.NoError(t, err)
	m.indexSync.AssertNotCalled(t, "ArtworkSaved", mock.Anything, mock.Anything)
}
