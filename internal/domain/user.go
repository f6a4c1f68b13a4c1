package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettings are the per-category push opt-in flags a user
// controls from the app.
type NotificationSettings struct {
	Exhibitions bool `json:"exhibitions" db:"notify_exhibitions"`
	Messages    bool `json:"messages" db:"notify_messages"`
	Purchases   bool `json:"purchases" db:"notify_purchases"`
}

func (s NotificationSettings) Allows(t NotificationType) bool {
	switch t {
	case NotifRequestExhibition:
		return s.Exhibitions
	case NotifMessage:
		return s.Messages
	case NotifPurchase:
		return s.Purchases
	default:
		return false
	}
}

type User struct {
	ID        uuid.UUID            `json:"id" db:"id"`
	Name      string               `json:"name" db:"name"`
	Email     string               `json:"email" db:"email"`
	PushToken *string              `json:"push_token,omitempty" db:"push_token"`
	Settings  NotificationSettings `json:"settings"`
	CreatedAt time.Time            `json:"created_at" db:"created_at"`
}
