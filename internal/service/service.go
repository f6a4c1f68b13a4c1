package service

import (
	"lonelywalls-events/internal/config"
	"lonelywalls-events/internal/events"
	"lonelywalls-events/internal/push"
	"lonelywalls-events/internal/repository"
	"lonelywalls-events/internal/search"
	"lonelywalls-events/internal/service/chat"
	"lonelywalls-events/internal/service/email"
	"lonelywalls-events/internal/service/exhibition"
	"lonelywalls-events/internal/service/indexsync"
	"lonelywalls-events/internal/service/notifier"
	"lonelywalls-events/internal/service/order"
	"lonelywalls-events/internal/storage"
)

type Services struct {
	Email      email.Service
	Notifier   notifier.Service
	Exhibition exhibition.Service
	IndexSync  indexsync.Service
	Chat       chat.Service
	Order      order.Service
	Search     search.Indexer
}

func NewServices(
	repos *repository.Repositories,
	indexer search.Indexer,
	pusher push.Sender,
	media storage.MediaStore,
	publisher events.Publisher,
	cfg *config.Config,
) *Services {
	emailService := email.NewService(cfg)
	notifierService := notifier.NewService(repos.Notification, repos.User, pusher, emailService)
	exhibitionService := exhibition.NewService(repos.Exhibition, repos.ChatRoom, repos.Message, repos.Artwork, notifierService, publisher)
	indexSyncService := indexsync.NewService(repos.Artwork, repos.UserArtworks, indexer, media)
	chatService := chat.NewService(repos.ChatRoom, repos.User, notifierService)
	orderService := order.NewService(repos.Artwork, repos.User, notifierService, publisher)

	return &Services{
		Email:      emailService,
		Notifier:   notifierService,
		Exhibition: exhibitionService,
		IndexSync:  indexSyncService,
		Chat:       chatService,
		Order:      orderService,
		Search:     indexer,
	}
}
