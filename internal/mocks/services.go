package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lonelywalls-events/internal/domain"
)

type IndexSyncService struct {
	mock.Mock
}

func (m *IndexSyncService) ArtworkSaved(ctx context.Context, artwork *domain.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}

func (m *IndexSyncService) ArtworkDeleted(ctx context.Context, before *domain.Artwork) error {
	args := m.Called(ctx, before)
	return args.Error(0)
}

type ExhibitionService struct {
	mock.Mock
}

func (m *ExhibitionService) Created(ctx context.Context, ex *domain.Exhibition) error {
	args := m.Called(ctx, ex)
	return args.Error(0)
}

func (m *ExhibitionService) Updated(ctx context.Context, before, after *domain.Exhibition) error {
	args := m.Called(ctx, before, after)
	return args.Error(0)
}

type ChatService struct {
	mock.Mock
}

func (m *ChatService) MessageCreated(ctx context.Context, chatRoomID uuid.UUID, msg *domain.Message) error {
	args := m.Called(ctx, chatRoomID, msg)
	return args.Error(0)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) OrderCreated(ctx context.Context, ord *domain.Order) error {
	args := m.Called(ctx, ord)
	return args.Error(0)
}
