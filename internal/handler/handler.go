package handler

import "lonelywalls-events/internal/service"

type Handlers struct {
	Search       *SearchHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Search:       NewSearchHandler(services.Search),
		Notification: NewNotificationHandler(services.Notifier),
	}
}
