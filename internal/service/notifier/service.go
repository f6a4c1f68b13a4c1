// Package notifier is the notification dispatcher: it resolves the
// recipient, attempts a best-effort push, and always writes the durable
// notification record. The record, not the push, is the source of truth
// for the in-app notification list.
package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/push"
	"lonelywalls-events/internal/repository"
	"lonelywalls-events/internal/service/email"
)

type Service interface {
	// Send delivers a push to the user's device when a token is registered
	// and the category is opted in, then persists rec with seen=false.
	// A missing user means there is nothing to do.
	Send(ctx context.Context, userID uuid.UUID, payload push.Payload, rec *domain.Notification) error

	List(ctx context.Context, userID uuid.UUID, unseenOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	CountUnseen(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkSeen(ctx context.Context, id uuid.UUID) error
	MarkAllSeen(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	pusher        push.Sender
	emailSvc      email.Service
}

func NewService(
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	pusher push.Sender,
	emailSvc email.Service,
) Service {
	return &service{
		notifications: notifications,
		users:         users,
		pusher:        pusher,
		emailSvc:      emailSvc,
	}
}

func (s *service) Send(ctx context.Context, userID uuid.UUID, payload push.Payload, rec *domain.Notification) error {
	if userID == uuid.Nil {
		return nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get notification recipient: %w", err)
	}
	if user == nil {
		return nil
	}

	if s.pusher != nil && user.PushToken != nil && user.Settings.Allows(rec.Type) {
		// Fire-and-forget: delivery failure is never surfaced to the caller.
		if err := s.pusher.SendToDevice(ctx, *user.PushToken, payload); err != nil {
			log.Printf("notifier: push delivery to user %s failed: %v", userID, err)
		}
	}

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.UserID = userID
	if err := s.notifications.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	if s.emailSvc != nil && user.Email != "" && emailWorthy(rec.Type) {
		go func(toEmail, name, subject, body string) {
			ctx := context.Background()
			if err := s.emailSvc.SendNotificationEmail(ctx, toEmail, name, subject, body); err != nil {
				log.Printf("notifier: email copy to %s failed: %v", toEmail, err)
			}
		}(user.Email, user.Name, payload.Title, payload.Body)
	}

	return nil
}

// Chat messages are too chatty for email; only request and purchase events
// get a copy.
func emailWorthy(t domain.NotificationType) bool {
	return t == domain.NotifRequestExhibition || t == domain.NotifPurchase
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unseenOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifications.ListByUser(ctx, userID, unseenOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) CountUnseen(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifications.CountUnseen(ctx, userID)
}

func (s *service) MarkSeen(ctx context.Context, id uuid.UUID) error {
	return s.notifications.MarkSeen(ctx, id)
}

func (s *service) MarkAllSeen(ctx context.Context, userID uuid.UUID) error {
	return s.notifications.MarkAllSeen(ctx, userID)
}
