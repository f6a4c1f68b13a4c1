// Package exhibition implements the workflow engine behind exhibition
// requests. The engine does not police transitions: it reacts to whatever
// status the client wrote, and deterministically derives the chat-thread
// mutations and side effects for that status.
package exhibition

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/events"
	"lonelywalls-events/internal/push"
	"lonelywalls-events/internal/repository"
	"lonelywalls-events/internal/service/notifier"
)

type Service interface {
	// Created handles a new exhibition document. Only REQUESTED is a valid
	// initial state; anything else is ignored.
	Created(ctx context.Context, ex *domain.Exhibition) error
	// Updated handles a status change. The before snapshot may be nil when
	// the event source did not capture it.
	Updated(ctx context.Context, before, after *domain.Exhibition) error
}

type service struct {
	exhibitions repository.ExhibitionRepository
	chatRooms   repository.ChatRoomRepository
	messages    repository.MessageRepository
	artworks    repository.ArtworkRepository
	notifier    notifier.Service
	publisher   events.Publisher
}

func NewService(
	exhibitions repository.ExhibitionRepository,
	chatRooms repository.ChatRoomRepository,
	messages repository.MessageRepository,
	artworks repository.ArtworkRepository,
	notifierSvc notifier.Service,
	publisher events.Publisher,
) Service {
	return &service{
		exhibitions: exhibitions,
		chatRooms:   chatRooms,
		messages:    messages,
		artworks:    artworks,
		notifier:    notifierSvc,
		publisher:   publisher,
	}
}

func (s *service) Created(ctx context.Context, ex *domain.Exhibition) error {
	if ex.Status != domain.ExhibitionRequested {
		return nil
	}

	room := &domain.ChatRoom{
		ID:           domain.DeterministicID("chat-room", ex.ID.String()),
		ExhibitionID: ex.ID,
		MemberIDs:    ex.MemberIDs,
		CreatorID:    ex.CreatorID,
		CreatedAt:    time.Now().UTC(),
	}

	// One chat room per exhibition. A redelivered event resumes with the
	// room the first run created, so a failure after room creation still
	// completes the remaining steps.
	existing, err := s.chatRooms.GetByExhibition(ctx, ex.ID)
	if err != nil {
		return fmt.Errorf("failed to check for existing chat room: %w", err)
	}
	if existing != nil {
		room = existing
	} else if err := s.chatRooms.Create(ctx, room); err != nil {
		return fmt.Errorf("failed to create chat room: %w", err)
	}

	msg := actionMessage(messageID(ex, domain.StatusRequested, domain.StatusRequestWaitingApprove),
		room.ID, ex.CreatorID, domain.StatusRequested, domain.StatusRequestWaitingApprove, ex.Details(), room.CreatedAt)
	if err := s.messages.Append(ctx, msg); err != nil {
		return fmt.Errorf("failed to append request message: %w", err)
	}

	if err := s.exhibitions.SetChatRoomID(ctx, ex.ID, room.ID); err != nil {
		return fmt.Errorf("failed to attach chat room to exhibition: %w", err)
	}

	status := string(domain.ExhibitionRequested)
	return s.notifier.Send(ctx, ex.Counterpart(), push.Payload{
		Title:     "New exhibition request",
		Body:      fmt.Sprintf("%s sent you an exhibition request", senderName(ex, ex.CreatorID)),
		RouteName: "exhibitions",
	}, &domain.Notification{
		ID:         notificationID(ex),
		SenderName: senderName(ex, ex.CreatorID),
		Type:       domain.NotifRequestExhibition,
		Status:     &status,
	})
}

func (s *service) Updated(ctx context.Context, before, after *domain.Exhibition) error {
	if before != nil && before.Status == after.Status {
		return nil
	}

	switch after.Status {
	case domain.ExhibitionAccepted:
		return s.accepted(ctx, after)
	case domain.ExhibitionCanceled:
		return s.canceled(ctx, after)
	case domain.ExhibitionDeclined:
		return s.declined(ctx, after)
	case domain.ExhibitionReview:
		return s.review(ctx, after)
	case domain.ExhibitionDetailsAccepted:
		return s.detailsAccepted(ctx, after)
	case domain.ExhibitionDetailsChanged:
		return s.detailsChanged(ctx, after)
	case domain.ExhibitionOpen:
		return s.open(ctx, after)
	case domain.ExhibitionClosed:
		return s.closed(ctx, after)
	case domain.ExhibitionRequested:
		// REQUESTED is initial-only; a write-back (e.g. attaching the chat
		// room id) must not re-run creation.
		return nil
	default:
		log.Printf("exhibition: ignoring unknown status %q on %s", after.Status, after.ID)
		return nil
	}
}

func (s *service) accepted(ctx context.Context, ex *domain.Exhibition) error {
	if err := s.rewrite(ctx, ex, statusPair(domain.StatusRequested), statusPair(domain.StatusRequestWaitingApprove), domain.StatusRequestAccepted, domain.StatusRequestAccepted); err != nil {
		return err
	}

	msg := actionMessage(messageID(ex, domain.StatusWaitingDetails, domain.StatusWaitingDetails),
		roomOf(ex), ex.CreatorID, domain.StatusWaitingDetails, domain.StatusWaitingDetails, ex.Details(), time.Now().UTC())
	if err := s.appendIfRoom(ctx, ex, msg); err != nil {
		return err
	}

	return s.notifyTransition(ctx, ex, ex.Counterpart(), ex.CreatorID, "accepted the exhibition request")
}

func (s *service) canceled(ctx context.Context, ex *domain.Exhibition) error {
	if err := s.rewrite(ctx, ex, statusPair(domain.StatusRequested), statusPair(domain.StatusRequestWaitingApprove), domain.StatusRequestCanceled, domain.StatusRequestCanceled); err != nil {
		return err
	}
	return s.notifyTransition(ctx, ex, ex.CreatorID, ex.Counterpart(), "canceled the exhibition request")
}

func (s *service) declined(ctx context.Context, ex *domain.Exhibition) error {
	if err := s.rewrite(ctx, ex, statusPair(domain.StatusRequested), statusPair(domain.StatusRequestWaitingApprove), domain.StatusRequestDeclined, domain.StatusRequestDeclined); err != nil {
		return err
	}
	return s.notifyTransition(ctx, ex, ex.Counterpart(), ex.CreatorID, "declined the exhibition request")
}

func (s *service) review(ctx context.Context, ex *domain.Exhibition) error {
	editor := ex.EditedBy
	if editor == nil {
		return nil
	}

	msg := actionMessage(messageID(ex, domain.StatusWaitingReview, domain.StatusCheckDetails),
		roomOf(ex), *editor, domain.StatusWaitingReview, domain.StatusCheckDetails, ex.Details(), editTime(ex))
	if err := s.appendIfRoom(ctx, ex, msg); err != nil {
		return err
	}
	return s.notifyTransition(ctx, ex, ex.MemberOther(*editor), *editor, "updated the exhibition details")
}

func (s *service) detailsAccepted(ctx context.Context, ex *domain.Exhibition) error {
	if err := s.rewrite(ctx, ex, nil, statusPair(domain.StatusCheckDetails), domain.StatusDetailsAccepted, domain.StatusDetailsAccepted); err != nil {
		return err
	}

	editor := ex.EditedBy
	if editor == nil {
		return nil
	}

	msg := actionMessage(messageID(ex, domain.StatusWaitingOpening, domain.StatusWaitingOpening),
		roomOf(ex), *editor, domain.StatusWaitingOpening, domain.StatusWaitingOpening, ex.Details(), time.Now().UTC())
	if err := s.appendIfRoom(ctx, ex, msg); err != nil {
		return err
	}
	return s.notifyTransition(ctx, ex, ex.MemberOther(*editor), *editor, "accepted the exhibition details")
}

func (s *service) detailsChanged(ctx context.Context, ex *domain.Exhibition) error {
	if err := s.rewrite(ctx, ex, nil, statusPair(domain.StatusCheckDetails), domain.StatusDetailsChanged, domain.StatusDetailsChanged); err != nil {
		return err
	}

	editor := ex.EditedBy
	if editor == nil {
		return nil
	}

	msg := actionMessage(messageID(ex, domain.StatusWaitingReview, domain.StatusCheckDetails),
		roomOf(ex), *editor, domain.StatusWaitingReview, domain.StatusCheckDetails, ex.Details(), editTime(ex))
	if err := s.appendIfRoom(ctx, ex, msg); err != nil {
		return err
	}
	return s.notifyTransition(ctx, ex, ex.MemberOther(*editor), *editor, "changed the exhibition details")
}

func (s *service) open(ctx context.Context, ex *domain.Exhibition) error {
	if err := s.rewrite(ctx, ex, statusPair(domain.StatusWaitingOpening), statusPair(domain.StatusWaitingOpening), domain.StatusOpen, domain.StatusOpen); err != nil {
		return err
	}

	editor := ex.EditedBy
	if editor != nil {
		msg := actionMessage(messageID(ex, domain.StatusViewExhibition, domain.StatusViewExhibition),
			roomOf(ex), *editor, domain.StatusViewExhibition, domain.StatusViewExhibition, ex.Details(), time.Now().UTC())
		if err := s.appendIfRoom(ctx, ex, msg); err != nil {
			return err
		}
	}

	// Every attached artwork goes on exhibition at the venue. Mutations are
	// independent; a failure mid-list leaves earlier artworks updated, which
	// redelivery will reconcile.
	for _, artworkID := range ex.ArtworkIDs {
		if err := s.artworks.SetExhibited(ctx, artworkID, ex.Venue); err != nil {
			return fmt.Errorf("failed to set artwork %s exhibited: %w", artworkID, err)
		}
		s.publishArtworkUpdated(ctx, artworkID)
	}

	if editor == nil {
		return nil
	}
	return s.notifyTransition(ctx, ex, ex.MemberOther(*editor), *editor, "opened the exhibition")
}

func (s *service) closed(ctx context.Context, ex *domain.Exhibition) error {
	if err := s.rewrite(ctx, ex, statusPair(domain.StatusOpen), statusPair(domain.StatusOpen), domain.StatusClosed, domain.StatusClosed); err != nil {
		return err
	}

	editor := ex.EditedBy
	if editor == nil {
		return nil
	}

	msg := actionMessage(messageID(ex, domain.StatusClosed, domain.StatusClosed),
		roomOf(ex), *editor, domain.StatusClosed, domain.StatusClosed, ex.Details(), time.Now().UTC())
	if err := s.appendIfRoom(ctx, ex, msg); err != nil {
		return err
	}
	return s.notifyTransition(ctx, ex, ex.MemberOther(*editor), *editor, "closed the exhibition")
}

// rewrite patches every message in the exhibition's chat room matching the
// (sender, receiver) filter to the new status pair. This is a best-effort
// bulk update over a point-in-time snapshot, not a transaction.
func (s *service) rewrite(ctx context.Context, ex *domain.Exhibition, sender, receiver *domain.PayloadStatus, newSender, newReceiver domain.PayloadStatus) error {
	if ex.ChatRoomID == nil {
		return nil
	}

	matches, err := s.messages.QueryByPayloadStatus(ctx, *ex.ChatRoomID, sender, receiver)
	if err != nil {
		return fmt.Errorf("failed to query messages for rewrite: %w", err)
	}
	for _, m := range matches {
		if err := s.messages.PatchPayloadStatus(ctx, m.ID, newSender, newReceiver); err != nil {
			return fmt.Errorf("failed to patch message %s: %w", m.ID, err)
		}
	}
	return nil
}

func (s *service) appendIfRoom(ctx context.Context, ex *domain.Exhibition, msg *domain.Message) error {
	if ex.ChatRoomID == nil {
		return nil
	}
	if err := s.messages.Append(ctx, msg); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (s *service) notifyTransition(ctx context.Context, ex *domain.Exhibition, recipient, sender uuid.UUID, action string) error {
	if recipient == uuid.Nil {
		return nil
	}

	status := string(ex.Status)
	name := senderName(ex, sender)
	return s.notifier.Send(ctx, recipient, push.Payload{
		Title:     "Exhibition update",
		Body:      fmt.Sprintf("%s %s", name, action),
		RouteName: "exhibitions",
	}, &domain.Notification{
		ID:         notificationID(ex),
		SenderName: name,
		Type:       domain.NotifMessage,
		Status:     &status,
	})
}

// publishArtworkUpdated nudges the index sync handler to reindex an artwork
// this workflow just mutated. Best-effort: search lags, it does not block.
func (s *service) publishArtworkUpdated(ctx context.Context, artworkID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	artwork, err := s.artworks.GetByID(ctx, artworkID)
	if err != nil || artwork == nil {
		return
	}
	after, err := json.Marshal(artwork)
	if err != nil {
		return
	}
	ev := events.DocumentEvent{
		Collection: events.CollectionArtworks,
		Op:         events.OpUpdate,
		Params:     map[string]string{"artworkId": artworkID.String()},
		After:      after,
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		log.Printf("exhibition: publish artwork update for %s failed: %v", artworkID, err)
	}
}

func actionMessage(id, chatRoomID, sender uuid.UUID, senderStatus, receiverStatus domain.PayloadStatus, details *domain.ExhibitionDetails, at time.Time) *domain.Message {
	return &domain.Message{
		ID:         id,
		ChatRoomID: chatRoomID,
		Type:       domain.MessageTypeAction,
		SenderID:   sender,
		CreatedAt:  at,
		Payload: &domain.MessagePayload{
			SenderStatus:   senderStatus,
			ReceiverStatus: receiverStatus,
			Details:        details,
		},
	}
}

// messageID derives the id of a transition's appended message from the
// event content. A redelivery regenerates the same id and the append upsert
// drops the duplicate; a later edit carries a new EditedAt and gets a fresh
// id, so repeated review cycles still append.
func messageID(ex *domain.Exhibition, sender, receiver domain.PayloadStatus) uuid.UUID {
	parts := []string{"message", ex.ID.String(), string(ex.Status), string(sender), string(receiver)}
	if ex.EditedAt != nil {
		parts = append(parts, ex.EditedAt.UTC().Format(time.RFC3339Nano))
	}
	return domain.DeterministicID(parts...)
}

func notificationID(ex *domain.Exhibition) uuid.UUID {
	parts := []string{"notification", ex.ID.String(), string(ex.Status)}
	if ex.EditedAt != nil {
		parts = append(parts, ex.EditedAt.UTC().Format(time.RFC3339Nano))
	}
	return domain.DeterministicID(parts...)
}

func roomOf(ex *domain.Exhibition) uuid.UUID {
	if ex.ChatRoomID == nil {
		return uuid.Nil
	}
	return *ex.ChatRoomID
}

func editTime(ex *domain.Exhibition) time.Time {
	if ex.EditedAt != nil {
		return *ex.EditedAt
	}
	return time.Now().UTC()
}

func senderName(ex *domain.Exhibition, sender uuid.UUID) string {
	if ex.Artist != nil && ex.Artist.ID == sender {
		return ex.Artist.Name
	}
	if ex.Venue != nil && ex.Venue.Name != "" {
		return ex.Venue.Name
	}
	if ex.Artist != nil {
		return ex.Artist.Name
	}
	return ""
}

func statusPair(s domain.PayloadStatus) *domain.PayloadStatus {
	return &s
}
