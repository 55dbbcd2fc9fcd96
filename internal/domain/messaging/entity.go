package messaging

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfMessage  = errors.New("cannot message yourself")
	ErrEmptyContent = errors.New("message content is required")
	ErrBlocked      = errors.New("messaging between these users is blocked")
)

type Message struct {
	id          uuid.UUID
	senderID    uuid.UUID
	recipientID uuid.UUID
	content     string
	createdAt   time.Time
}

func NewMessage(senderID, recipientID uuid.UUID, content string, now time.Time) (*Message, error) {
	if senderID == recipientID {
		return nil, ErrSelfMessage
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return &Message{
		id:          uuid.New(),
		senderID:    senderID,
		recipientID: recipientID,
		content:     content,
		createdAt:   now,
	}, nil
}

func ReconstructMessage(id, senderID, recipientID uuid.UUID, content string, createdAt time.Time) *Message {
	return &Message{
		id:          id,
		senderID:    senderID,
		recipientID: recipientID,
		content:     content,
		createdAt:   createdAt,
	}
}

func (m *Message) ID() uuid.UUID          { return m.id }
func (m *Message) SenderID() uuid.UUID    { return m.senderID }
func (m *Message) RecipientID() uuid.UUID { return m.recipientID }
func (m *Message) Content() string        { return m.content }
func (m *Message) CreatedAt() time.Time   { return m.createdAt }

// BlockSet is the set of user ids involved in a block with a given user,
// in either direction. Sending and reading conversations consult it.
type BlockSet map[uuid.UUID]struct{}

func (s BlockSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// CanExchange reports whether two users may message each other given the
// blocks involving either of them.
func CanExchange(senderID, recipientID uuid.UUID, blocked BlockSet) error {
	if senderID == recipientID {
		return ErrSelfMessage
	}
	if blocked.Contains(recipientID) {
		return ErrBlocked
	}
	return nil
}
