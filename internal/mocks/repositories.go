// Package mocks provides hand-written testify mocks for the repository and
// collaborator interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lonelywalls-events/internal/domain"
)

type ArtworkRepository struct {
	mock.Mock
}

func (m *ArtworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artwork), args.Error(1)
}

func (m *ArtworkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Artwork, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

func (m *ArtworkRepository) SetExhibited(ctx context.Context, id uuid.UUID, venue *domain.Venue) error {
	args := m.Called(ctx, id, venue)
	return args.Error(0)
}

func (m *ArtworkRepository) SetSold(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ExhibitionRepository struct {
	mock.Mock
}

func (m *ExhibitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exhibition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exhibition), args.Error(1)
}

func (m *ExhibitionRepository) SetChatRoomID(ctx context.Context, id, chatRoomID uuid.UUID) error {
	args := m.Called(ctx, id, chatRoomID)
	return args.Error(0)
}

type ChatRoomRepository struct {
	mock.Mock
}

func (m *ChatRoomRepository) Create(ctx context.Context, room *domain.ChatRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *ChatRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChatRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatRoom), args.Error(1)
}

func (m *ChatRoomRepository) GetByExhibition(ctx context.Context, exhibitionID uuid.UUID) (*domain.ChatRoom, error) {
	args := m.Called(ctx, exhibitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatRoom), args.Error(1)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Append(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) QueryByPayloadStatus(ctx context.Context, chatRoomID uuid.UUID, sender, receiver *domain.PayloadStatus) ([]domain.Message, error) {
	args := m.Called(ctx, chatRoomID, sender, receiver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MessageRepository) PatchPayloadStatus(ctx context.Context, messageID uuid.UUID, sender, receiver domain.PayloadStatus) error {
	args := m.Called(ctx, messageID, sender, receiver)
	return args.Error(0)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unseenOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, unseenOnly, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *NotificationRepository) CountUnseen(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) MarkSeen(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationRepository) MarkAllSeen(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type UserArtworksRepository struct {
	mock.Mock
}

func (m *UserArtworksRepository) Upsert(ctx context.Context, agg *domain.UserArtworks) error {
	args := m.Called(ctx, agg)
	return args.Error(0)
}
