package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChatRoom struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	ExhibitionID uuid.UUID   `json:"exhibition_id" db:"exhibition_id"`
	MemberIDs    []uuid.UUID `json:"member_ids"`
	CreatorID    uuid.UUID   `json:"creator_id" db:"creator_id"`
	Seen         bool        `json:"seen" db:"seen"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}

type MessageType string

const (
	MessageTypeMessage MessageType = "message"
	MessageTypeAction  MessageType = "action"
)

// PayloadStatus is the closed set of logical states a workflow message can
// carry. The terminal close value is always "closed"; earlier builds wrote
// "close" on the bulk rewrite, which left unmatched pairs in old threads.
type PayloadStatus string

const (
	StatusRequested             PayloadStatus = "requested"
	StatusRequestWaitingApprove PayloadStatus = "request_waiting_approve"
	StatusRequestAccepted       PayloadStatus = "request_accepted"
	StatusRequestCanceled       PayloadStatus = "request_canceled"
	StatusRequestDeclined       PayloadStatus = "request_declined"
	StatusWaitingDetails        PayloadStatus = "waiting_details"
	StatusWaitingReview         PayloadStatus = "waiting_review"
	StatusCheckDetails          PayloadStatus = "check_details"
	StatusDetailsAccepted       PayloadStatus = "details_accepted"
	StatusDetailsChanged        PayloadStatus = "details_changed"
	StatusWaitingOpening        PayloadStatus = "waiting_opening"
	StatusOpen                  PayloadStatus = "open"
	StatusViewExhibition        PayloadStatus = "view_exhibition"
	StatusClosed                PayloadStatus = "closed"
)

// MessagePayload is mutable scaffolding: the workflow engine overwrites the
// status pair of already-sent messages as the exhibition progresses.
type MessagePayload struct {
	SenderStatus   PayloadStatus      `json:"senderStatus"`
	ReceiverStatus PayloadStatus      `json:"receiverStatus"`
	Details        *ExhibitionDetails `json:"details,omitempty"`
}

type Message struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	ChatRoomID uuid.UUID       `json:"chat_room_id" db:"chat_room_id"`
	Type       MessageType     `json:"type" db:"type"`
	SenderID   uuid.UUID       `json:"sender_id" db:"sender_id"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	Read       bool            `json:"read" db:"read"`
	Text       *string         `json:"text,omitempty" db:"text"`
	Payload    *MessagePayload `json:"payload,omitempty"`
}
