package notifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/mocks"
	"lonelywalls-events/internal/push"
	"lonelywalls-events/internal/service/notifier"
)

func testUser(token *string) *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Name:      "Jonas Herre",
		PushToken: token,
		Settings: domain.NotificationSettings{
			Exhibitions: true,
			Messages:    true,
			Purchases:   true,
		},
	}
}

func TestSend(t *testing.T) {
	ctx := context.Background()
	payload := push.Payload{Title: "Exhibition update", Body: "Mara accepted", RouteName: "exhibitions"}

	t.Run("Pushes And Persists Record", func(t *testing.T) {
		notifications := new(mocks.NotificationRepository)
		users := new(mocks.UserRepository)
		pusher := new(mocks.PushSender)
		svc := notifier.NewService(notifications, users, pusher, nil)

		token := "device-token"
		user := testUser(&token)
		users.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		pusher.On("SendToDevice", ctx, token, payload).Return(nil).Once()
		notifications.On("Create", ctx, mock.MatchedBy(func(rec *domain.Notification) bool {
			return rec.UserID == user.ID && rec.ID != uuid.Nil && !rec.Seen
		})).Return(nil).Once()

		err := svc.Send(ctx, user.ID, payload, &domain.Notification{Type: domain.NotifMessage})

		assert.NoError(t, err)
		users.AssertExpectations(t)
		pusher.AssertExpectations(t)
		notifications.AssertExpectations(t)
	})

	t.Run("Missing Token Still Persists Record", func(t *testing.T) {
		notifications := new(mocks.NotificationRepository)
		users := new(mocks.UserRepository)
		pusher := new(mocks.PushSender)
		svc := notifier.NewService(notifications, users, pusher, nil)

		user := testUser(nil)
		users.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		notifications.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.Send(ctx, user.ID, payload, &domain.Notification{Type: domain.NotifMessage})

		assert.NoError(t, err)
		pusher.AssertNotCalled(t, "SendToDevice", mock.Anything, mock.Anything, mock.Anything)
		notifications.AssertExpectations(t)
	})

	t.Run("Opted Out Category Skips Push", func(t *testing.T) {
		notifications := new(mocks.NotificationRepository)
		users := new(mocks.UserRepository)
		pusher := new(mocks.PushSender)
		svc := notifier.NewService(notifications, users, pusher, nil)

		token := "device-token"
		user := testUser(&token)
		user.Settings.Messages = false
		users.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		notifications.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.Send(ctx, user.ID, payload, &domain.Notification{Type: domain.NotifMessage})

		assert.NoError(t, err)
		pusher.AssertNotCalled(t, "SendToDevice", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Push Failure Does Not Block The Record", func(t *testing.T) {
		notifications := new(mocks.NotificationRepository)
		users := new(mocks.UserRepository)
		pusher := new(mocks.PushSender)
		svc := notifier.NewService(notifications, users, pusher, nil)

		token := "device-token"
		user := testUser(&token)
		users.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		pusher.On("SendToDevice", ctx, token, payload).Return(errors.New("unregistered")).Once()
		notifications.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.Send(ctx, user.ID, payload, &domain.Notification{Type: domain.NotifMessage})

		assert.NoError(t, err)
		notifications.AssertExpectations(t)
	})

	t.Run("Unknown User Is A NoOp", func(t *testing.T) {
		notifications := new(mocks.NotificationRepository)
		users := new(mocks.UserRepository)
		svc := notifier.NewService(notifications, users, nil, nil)

		userID := uuid.New()
		users.On("GetByID", ctx, userID).Return(nil, nil).Once()

		err := svc.Send(ctx, userID, payload, &domain.Notification{Type: domain.NotifMessage})

		assert.NoError(t, err)
		notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Nil Recipient Is A NoOp", func(t *testing.T) {
		notifications := new(mocks.NotificationRepository)
		users := new(mocks.UserRepository)
		svc := notifier.NewService(notifications, users, nil, nil)

		err := svc.Send(ctx, uuid.Nil, payload, &domain.Notification{Type: domain.NotifMessage})

		assert.NoError(t, err)
		users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Preserves Caller Assigned ID", func(t *testing.T) {
		notifications := new(mocks.NotificationRepository)
		users := new(mocks.UserRepository)
		svc := notifier.NewService(notifications, users, nil, nil)

		user := testUser(nil)
		recID := uuid.New()
		users.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		notifications.On("Create", ctx, mock.MatchedBy(func(rec *domain.Notification) bool {
			return rec.ID == recID
		})).Return(nil).Once()

		err := svc.Send(ctx, user.ID, payload, &domain.Notification{ID: recID, Type: domain.NotifMessage})

		assert.NoError(t, err)
		notifications.AssertExpectations(t)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	notifications := new(mocks.NotificationRepository)
	users := new(mocks.UserRepository)
	svc := notifier.NewService(notifications, users, nil, nil)

	userID := uuid.New()
	params := domain.PaginationParams{Page: 1, PageSize: 20}
	items := []domain.Notification{{ID: uuid.New(), UserID: userID}}
	notifications.On("ListByUser", ctx, userID, false, params).Return(items, int64(1), nil).Once()

	resp, err := svc.List(ctx, userID, false, params)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalItems)
	assert.Len(t, resp.Data, 1)
}

func TestMarkSeen(t *testing.T) {
	ctx := context.Background()
	notifications := new(mocks.NotificationRepository)
	svc := notifier.NewService(notifications, new(mocks.UserRepository), nil, nil)

	id := uuid.New()
	notifications.On("MarkSeen", ctx, id).Return(nil).Once()

	assert.NoError(t, svc.MarkSeen(ctx, id))
	notifications.AssertExpectations(t)
}
