// Package chat reacts to new user-written messages in exhibition threads
// and nudges the other participant.
package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/push"
	"lonelywalls-events/internal/repository"
	"lonelywalls-events/internal/service/notifier"
)

type Service interface {
	MessageCreated(ctx context.Context, chatRoomID uuid.UUID, msg *domain.Message) error
}

type service struct {
	chatRooms repository.ChatRoomRepository
	users     repository.UserRepository
	notifier  notifier.Service
}

func NewService(chatRooms repository.ChatRoomRepository, users repository.UserRepository, notifierSvc notifier.Service) Service {
	return &service{chatRooms: chatRooms, users: users, notifier: notifierSvc}
}

func (s *service) MessageCreated(ctx context.Context, chatRoomID uuid.UUID, msg *domain.Message) error {
	// Action messages are minted by the workflow engine, which does its own
	// notification fan-out.
	if msg.Type != domain.MessageTypeMessage {
		return nil
	}

	room, err := s.chatRooms.GetByID(ctx, chatRoomID)
	if err != nil {
		return fmt.Errorf("failed to get chat room: %w", err)
	}
	if room == nil {
		return nil
	}

	var recipient uuid.UUID
	for _, m := range room.MemberIDs {
		if m != msg.SenderID {
			recipient = m
			break
		}
	}
	if recipient == uuid.Nil {
		return nil
	}

	senderName := ""
	if sender, err := s.users.GetByID(ctx, msg.SenderID); err == nil && sender != nil {
		senderName = sender.Name
	}

	body := "sent you a message"
	if msg.Text != nil && *msg.Text != "" {
		body = *msg.Text
	}

	return s.notifier.Send(ctx, recipient, push.Payload{
		Title:     "New message",
		Body:      fmt.Sprintf("%s: %s", senderName, body),
		RouteName: "chat",
	}, &domain.Notification{
		// Keyed to the message so a redelivered event cannot duplicate the
		// record.
		ID:         domain.DeterministicID("notification", "message", msg.ID.String()),
		SenderName: senderName,
		Type:       domain.NotifMessage,
	})
}
