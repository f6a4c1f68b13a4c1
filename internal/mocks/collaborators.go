package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/events"
	"lonelywalls-events/internal/push"
	"lonelywalls-events/internal/search"
)

type Indexer struct {
	mock.Mock
}

func (m *Indexer) Index(ctx context.Context, index, id string, body any) error {
	args := m.Called(ctx, index, id, body)
	return args.Error(0)
}

func (m *Indexer) Delete(ctx context.Context, index, id string) error {
	args := m.Called(ctx, index, id)
	return args.Error(0)
}

func (m *Indexer) Search(ctx context.Context, index string, query json.RawMessage) (*search.Result, error) {
	args := m.Called(ctx, index, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*search.Result), args.Error(1)
}

type PushSender struct {
	mock.Mock
}

func (m *PushSender) SendToDevice(ctx context.Context, token string, p push.Payload) error {
	args := m.Called(ctx, token, p)
	return args.Error(0)
}

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendNotificationEmail(ctx context.Context, toEmail, recipientName, subject, body string) error {
	args := m.Called(ctx, toEmail, recipientName, subject, body)
	return args.Error(0)
}

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, ev events.DocumentEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type MediaStore struct {
	mock.Mock
}

func (m *MediaStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type NotifierService struct {
	mock.Mock
}

func (m *NotifierService) Send(ctx context.Context, userID uuid.UUID, payload push.Payload, rec *domain.Notification) error {
	args := m.Called(ctx, userID, payload, rec)
	return args.Error(0)
}

func (m *NotifierService) List(ctx context.Context, userID uuid.UUID, unseenOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, unseenOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotifierService) CountUnseen(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotifierService) MarkSeen(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotifierService) MarkAllSeen(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
