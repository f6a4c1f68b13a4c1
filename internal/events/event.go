// Package events carries document mutation events between the client-facing
// app and this worker over a durable queue. Delivery is at-least-once, so
// every handler downstream must tolerate re-running with the same event.
package events

import (
	"context"
	"encoding/json"
	"time"
)

const (
	QueueName = "document.events"

	// Deliveries rejected by the consumer route here instead of being
	// discarded, leaving an inspectable trail of failed events.
	DeadLetterExchange = "document.events.dlx"
	DeadLetterQueue    = "document.events.dead"
)

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

const (
	CollectionArtworks    = "artworks"
	CollectionExhibitions = "exhibitions"
	CollectionMessages    = "messages"
	CollectionOrders      = "orders"
)

// DocumentEvent is the envelope for one document mutation: the collection,
// the operation, path parameters, and the before/after snapshots.
type DocumentEvent struct {
	ID         string            `json:"id"`
	Collection string            `json:"collection"`
	Op         Op                `json:"op"`
	Params     map[string]string `json:"params,omitempty"`
	Before     json.RawMessage   `json:"before,omitempty"`
	After      json.RawMessage   `json:"after,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev DocumentEvent) error
}
