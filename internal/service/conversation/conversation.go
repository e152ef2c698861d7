package conversation

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entconv "github.com/nutrivida/nutrivida_backend/internal/repo/conversation"
	entmsg "github.com/nutrivida/nutrivida_backend/internal/repo/message"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SendMessageRequest struct {
	SenderID uuid.UUID
	Content  *string
	MediaKey *string
}

type ListMessagesRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// GetOrCreate returns the patient's thread with the nutritionist,
	// creating it on first use.
	GetOrCreate(ctx context.Context, patientID uuid.UUID) (*repo.Conversation, error)

	// Inbox is the nutritionist's thread list, most recent first.
	Inbox(ctx context.Context) ([]*repo.Conversation, error)

	ListMessages(ctx context.Context, convID uuid.UUID, req ListMessagesRequest) ([]*repo.Message, error)
	SendMessage(ctx context.Context, convID uuid.UUID, req SendMessageRequest) (*repo.Message, error)

	// MarkRead marks every message not sent by readerID as read.
	MarkRead(ctx context.Context, convID, readerID uuid.UUID) error

	// Authorize verifies userID may access convID. The nutritionist may
	// access every thread, a patient only their own.
	Authorize(ctx context.Context, convID, userID uuid.UUID, isAdmin bool) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type conversationService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &conversationService{db: db, nc: nc}
}

func (s *conversationService) GetOrCreate(ctx context.Context, patientID uuid.UUID) (*repo.Conversation, error) {
	conv, err := s.db.Conversation.Query().
		Where(entconv.PatientID(patientID)).
		Only(ctx)
	if err == nil {
		return conv, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	conv, err = s.db.Conversation.Create().
		SetPatientID(patientID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			// concurrent first message, reread
			return s.db.Conversation.Query().
				Where(entconv.PatientID(patientID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (s *conversationService) Inbox(ctx context.Context) ([]*repo.Conversation, error) {
	convs, err := s.db.Conversation.Query().
		Order(entconv.ByLastMessageAt(sql.OrderDesc(), sql.OrderNullsLast())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *conversationService) ListMessages(ctx context.Context, convID uuid.UUID, req ListMessagesRequest) ([]*repo.Message, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}

	msgs, err := s.db.Message.Query().
		Where(
			entmsg.ConversationID(convID),
			entmsg.DeletedAtIsNil(),
		).
		Order(entmsg.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *conversationService) SendMessage(ctx context.Context, convID uuid.UUID, req SendMessageRequest) (*repo.Message, error) {
	if (req.Content == nil || *req.Content == "") && req.MediaKey == nil {
		return nil, ErrEmptyMessage
	}

	c := s.db.Message.Create().
		SetConversationID(convID).
		SetSenderID(req.SenderID)
	if req.Content != nil {
		c = c.SetContent(*req.Content)
	}
	if req.MediaKey != nil {
		c = c.SetMediaKey(*req.MediaKey)
	}

	msg, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	// Update last_message_at on the conversation
	_ = s.db.Conversation.Update().
		Where(entconv.ID(convID)).
		SetLastMessageAt(msg.CreatedAt).
		Exec(ctx)

	// Publish NATS event
	if s.nc != nil {
		subject := fmt.Sprintf("nutrivida.message.new.%s", convID.String())
		_ = s.nc.Publish(subject, []byte(msg.ID.String()))
	}

	return msg, nil
}

func (s *conversationService) MarkRead(ctx context.Context, convID, readerID uuid.UUID) error {
	_, err := s.db.Message.Update().
		Where(
			entmsg.ConversationID(convID),
			entmsg.SenderIDNEQ(readerID),
			entmsg.IsRead(false),
		).
		SetIsRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}

func (s *conversationService) Authorize(ctx context.Context, convID, userID uuid.UUID, isAdmin bool) error {
	if isAdmin {
		exists, err := s.db.Conversation.Query().
			Where(entconv.ID(convID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("get conversation: %w", err)
		}
		if !exists {
			return ErrConversationNotFound
		}
		return nil
	}

	conv, err := s.db.Conversation.Get(ctx, convID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrConversationNotFound
		}
		return fmt.Errorf("get conversation: %w", err)
	}
	if conv.PatientID != userID {
		return ErrNotParticipant
	}
	return nil
}
