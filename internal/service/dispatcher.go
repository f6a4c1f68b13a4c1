package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/events"
	"lonelywalls-events/internal/service/chat"
	"lonelywalls-events/internal/service/exhibition"
	"lonelywalls-events/internal/service/indexsync"
	"lonelywalls-events/internal/service/order"
)

// Dispatcher routes document events to the handler owning the collection.
// Unknown collections and undecodable snapshots are dropped, not retried:
// redelivering them cannot change the outcome.
type Dispatcher struct {
	IndexSync  indexsync.Service
	Exhibition exhibition.Service
	Chat       chat.Service
	Order      order.Service
}

func NewDispatcher(services *Services) *Dispatcher {
	return &Dispatcher{
		IndexSync:  services.IndexSync,
		Exhibition: services.Exhibition,
		Chat:       services.Chat,
		Order:      services.Order,
	}
}

func (d *Dispatcher) Handle(ctx context.Context, ev events.DocumentEvent) error {
	switch ev.Collection {
	case events.CollectionArtworks:
		return d.handleArtwork(ctx, ev)
	case events.CollectionExhibitions:
		return d.handleExhibition(ctx, ev)
	case events.CollectionMessages:
		return d.handleMessage(ctx, ev)
	case events.CollectionOrders:
		return d.handleOrder(ctx, ev)
	default:
		log.Printf("dispatcher: ignoring event for unknown collection %q", ev.Collection)
		return nil
	}
}

func (d *Dispatcher) handleArtwork(ctx context.Context, ev events.DocumentEvent) error {
	switch ev.Op {
	case events.OpCreate, events.OpUpdate:
		artwork, ok := decodeArtwork(ev.After, ev.Params["artworkId"])
		if !ok {
			return nil
		}
		return d.IndexSync.ArtworkSaved(ctx, artwork)
	case events.OpDelete:
		artwork, ok := decodeArtwork(ev.Before, ev.Params["artworkId"])
		if !ok {
			return nil
		}
		return d.IndexSync.ArtworkDeleted(ctx, artwork)
	default:
		return nil
	}
}

func (d *Dispatcher) handleExhibition(ctx context.Context, ev events.DocumentEvent) error {
	switch ev.Op {
	case events.OpCreate:
		after, ok := decode[domain.Exhibition](ev.After, "exhibition")
		if !ok {
			return nil
		}
		return d.Exhibition.Created(ctx, after)
	case events.OpUpdate:
		after, ok := decode[domain.Exhibition](ev.After, "exhibition")
		if !ok {
			return nil
		}
		before, _ := decode[domain.Exhibition](ev.Before, "exhibition")
		return d.Exhibition.Updated(ctx, before, after)
	default:
		return nil
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, ev events.DocumentEvent) error {
	if ev.Op != events.OpCreate {
		return nil
	}
	chatRoomID, err := uuid.Parse(ev.Params["chatRoomId"])
	if err != nil {
		log.Printf("dispatcher: message event without usable chatRoomId: %v", err)
		return nil
	}
	msg, ok := decode[domain.Message](ev.After, "message")
	if !ok {
		return nil
	}
	return d.Chat.MessageCreated(ctx, chatRoomID, msg)
}

func (d *Dispatcher) handleOrder(ctx context.Context, ev events.DocumentEvent) error {
	if ev.Op != events.OpCreate {
		return nil
	}
	ord, ok := decode[domain.Order](ev.After, "order")
	if !ok {
		return nil
	}
	if ord.BuyerID == uuid.Nil {
		if buyerID, err := uuid.Parse(ev.Params["userId"]); err == nil {
			ord.BuyerID = buyerID
		}
	}
	return d.Order.OrderCreated(ctx, ord)
}

func decode[T any](raw json.RawMessage, kind string) (*T, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("dispatcher: drop undecodable %s snapshot: %v", kind, err)
		return nil, false
	}
	return &v, true
}

// decodeArtwork also fills the document id from the path parameter, which
// is authoritative when the snapshot body omits it.
func decodeArtwork(raw json.RawMessage, idParam string) (*domain.Artwork, bool) {
	artwork, ok := decode[domain.Artwork](raw, "artwork")
	if !ok {
		return nil, false
	}
	if artwork.ID == uuid.Nil && idParam != "" {
		if id, err := uuid.Parse(idParam); err == nil {
			artwork.ID = id
		}
	}
	if artwork.ID == uuid.Nil {
		log.Printf("dispatcher: drop artwork event without id")
		return nil, false
	}
	return artwork, true
}
