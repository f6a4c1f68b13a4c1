package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExhibitionStatus string

const (
	ExhibitionRequested       ExhibitionStatus = "REQUESTED"
	ExhibitionAccepted        ExhibitionStatus = "ACCEPTED"
	ExhibitionReview          ExhibitionStatus = "REVIEW"
	ExhibitionDetailsAccepted ExhibitionStatus = "DETAILS_ACCEPTED"
	ExhibitionDetailsChanged  ExhibitionStatus = "DETAILS_CHANGED"
	ExhibitionOpen            ExhibitionStatus = "OPEN"
	ExhibitionClosed          ExhibitionStatus = "CLOSED"
	ExhibitionDeclined        ExhibitionStatus = "DECLINED"
	ExhibitionCanceled        ExhibitionStatus = "CANCELED"
)

// ArtistSnapshot is the denormalized artist carried on an exhibition.
type ArtistSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image,omitempty"`
}

type Exhibition struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	Title      *string          `json:"title,omitempty" db:"title"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	EditedAt   *time.Time       `json:"edited_at,omitempty" db:"edited_at"`
	EditedBy   *uuid.UUID       `json:"edited_by,omitempty" db:"edited_by"`
	StartDate  *time.Time       `json:"start_date,omitempty" db:"start_date"`
	EndDate    *time.Time       `json:"end_date,omitempty" db:"end_date"`
	CreatorID  uuid.UUID        `json:"creator_id" db:"creator_id"`
	MemberIDs  []uuid.UUID      `json:"member_ids"`
	Status     ExhibitionStatus `json:"status" db:"status"`
	Venue      *Venue           `json:"venue,omitempty"`
	Artist     *ArtistSnapshot  `json:"artist,omitempty"`
	ChatRoomID *uuid.UUID       `json:"chat_room_id,omitempty" db:"chat_room_id"`
	ArtworkIDs []uuid.UUID      `json:"artwork_ids"`
}

// ExhibitionDetails is the snapshot embedded into workflow messages so the
// chat thread can render the negotiated terms as they were at send time.
type ExhibitionDetails struct {
	ExhibitionID uuid.UUID  `json:"exhibition_id"`
	Title        *string    `json:"title,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Venue        *Venue     `json:"venue,omitempty"`
}

func (e *Exhibition) Details() *ExhibitionDetails {
	return &ExhibitionDetails{
		ExhibitionID: e.ID,
		Title:        e.Title,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Venue:        e.Venue,
	}
}

// Counterpart returns the member that is not the exhibition creator, or
// uuid.Nil when the member list is malformed.
func (e *Exhibition) Counterpart() uuid.UUID {
	return e.MemberOther(e.CreatorID)
}

// MemberOther returns the member that is not the given user, or uuid.Nil.
func (e *Exhibition) MemberOther(id uuid.UUID) uuid.UUID {
	for _, m := range e.MemberIDs {
		if m != id {
			return m
		}
	}
	return uuid.Nil
}
