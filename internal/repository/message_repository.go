package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lonelywalls-events/internal/domain"
)

type MessageRepository interface {
	// Append inserts the message. The id is caller-assigned, so redelivered
	// events re-running the same append are no-ops.
	Append(ctx context.Context, msg *domain.Message) error
	// QueryByPayloadStatus returns messages in a chat room whose payload
	// matches the given status filter; nil fields match anything.
	QueryByPayloadStatus(ctx context.Context, chatRoomID uuid.UUID, sender, receiver *domain.PayloadStatus) ([]domain.Message, error)
	// PatchPayloadStatus overwrites the status pair of one message, leaving
	// the embedded details snapshot untouched.
	PatchPayloadStatus(ctx context.Context, messageID uuid.UUID, sender, receiver domain.PayloadStatus) error
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

type messageRow struct {
	ID             uuid.UUID `db:"id"`
	ChatRoomID     uuid.UUID `db:"chat_room_id"`
	Type           string    `db:"type"`
	SenderID       uuid.UUID `db:"sender_id"`
	CreatedAt      time.Time `db:"created_at"`
	Read           bool      `db:"read"`
	Text           *string   `db:"text"`
	SenderStatus   *string   `db:"payload_sender_status"`
	ReceiverStatus *string   `db:"payload_receiver_status"`
	Details        []byte    `db:"payload_details"`
}

func (r messageRow) toDomain() (*domain.Message, error) {
	msg := &domain.Message{
		ID:         r.ID,
		ChatRoomID: r.ChatRoomID,
		Type:       domain.MessageType(r.Type),
		SenderID:   r.SenderID,
		CreatedAt:  r.CreatedAt,
		Read:       r.Read,
		Text:       r.Text,
	}
	if r.SenderStatus != nil && r.ReceiverStatus != nil {
		details, err := unmarshalInto[domain.ExhibitionDetails](r.Details)
		if err != nil {
			return nil, err
		}
		msg.Payload = &domain.MessagePayload{
			SenderStatus:   domain.PayloadStatus(*r.SenderStatus),
			ReceiverStatus: domain.PayloadStatus(*r.ReceiverStatus),
			Details:        details,
		}
	}
	return msg, nil
}

func (r *messageRepository) Append(ctx context.Context, msg *domain.Message) error {
	var senderStatus, receiverStatus *string
	var details []byte
	if msg.Payload != nil {
		s := string(msg.Payload.SenderStatus)
		rv := string(msg.Payload.ReceiverStatus)
		senderStatus, receiverStatus = &s, &rv
		if msg.Payload.Details != nil {
			var err error
			details, err = json.Marshal(msg.Payload.Details)
			if err != nil {
				return err
			}
		}
	}

	query := `
		INSERT INTO messages (id, chat_room_id, type, sender_id, created_at, read, text,
			payload_sender_status, payload_receiver_status, payload_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.ChatRoomID, msg.Type, msg.SenderID, msg.CreatedAt, msg.Read,
		msg.Text, senderStatus, receiverStatus, details,
	)
	return err
}

func (r *messageRepository) QueryByPayloadStatus(ctx context.Context, chatRoomID uuid.UUID, sender, receiver *domain.PayloadStatus) ([]domain.Message, error) {
	query := `
		SELECT * FROM messages
		WHERE chat_room_id = $1
			AND ($2::text IS NULL OR payload_sender_status = $2)
			AND ($3::text IS NULL OR payload_receiver_status = $3)
			AND payload_sender_status IS NOT NULL`

	var rows []messageRow
	if err := r.db.SelectContext(ctx, &rows, query, chatRoomID, statusArg(sender), statusArg(receiver)); err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		msg, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, nil
}

func (r *messageRepository) PatchPayloadStatus(ctx context.Context, messageID uuid.UUID, sender, receiver domain.PayloadStatus) error {
	query := `
		UPDATE messages
		SET payload_sender_status = $2, payload_receiver_status = $3
		WHERE id = $1 AND payload_sender_status IS NOT NULL`

	_, err := r.db.ExecContext(ctx, query, messageID, string(sender), string(receiver))
	return err
}

func statusArg(s *domain.PayloadStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
