package repository

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repositories struct {
	Artwork      ArtworkRepository
	Exhibition   ExhibitionRepository
	ChatRoom     ChatRoomRepository
	Message      MessageRepository
	Notification NotificationRepository
	User         UserRepository
	UserArtworks UserArtworksRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Artwork:      NewArtworkRepository(db),
		Exhibition:   NewExhibitionRepository(db),
		ChatRoom:     NewChatRoomRepository(db),
		Message:      NewMessageRepository(db),
		Notification: NewNotificationRepository(db),
		User:         NewUserRepository(db),
		UserArtworks: NewUserArtworksRepository(db),
	}
}

func uuidsToStrings(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func stringsToUUIDs(ids pq.StringArray) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, s := range ids {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}

func unmarshalInto[T any](raw []byte) (*T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
