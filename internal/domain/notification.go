package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifPurchase          NotificationType = "Purchase"
	NotifRequestExhibition NotificationType = "RequestExhibition"
	NotifMessage           NotificationType = "Message"
)

// Notification is the durable in-app record. It is written exactly once by
// the dispatcher; push delivery is a best-effort nudge on top of it.
type Notification struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	UserID     uuid.UUID        `json:"user_id" db:"user_id"`
	SenderName string           `json:"sender_name" db:"sender_name"`
	Type       NotificationType `json:"type" db:"type"`
	Status     *string          `json:"status,omitempty" db:"status"`
	Image      *string          `json:"image,omitempty" db:"image"`
	Seen       bool             `json:"seen" db:"seen"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}
