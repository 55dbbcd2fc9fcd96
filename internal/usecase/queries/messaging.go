package queries

import (
	"context"

	"servicedesk/internal/domain/messaging"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessagingQueries interface {
	// Contacts lists every other user, flagging the ones the actor blocked.
	Contacts(ctx context.Context, actor shared.Actor) ([]*ContactView, error)
	// Conversation returns the ordered messages between the actor and
	// another user. Refused when the other side blocked the actor or when
	// the actor asks for a conversation with themselves.
	Conversation(ctx context.Context, actor shared.Actor, otherID uuid.UUID) ([]*MessageView, error)
}

type MessageViewRepo interface {
	FindContacts(ctx context.Context, userID uuid.UUID) ([]*ContactView, error)
	FindConversation(ctx context.Context, a, b uuid.UUID) ([]*MessageView, error)
	IsBlocked(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error)
}

type messagingQueriesImpl struct {
	repo MessageViewRepo
}

func NewMessagingQueries(repo MessageViewRepo) MessagingQueries {
	return &messagingQueriesImpl{repo: repo}
}

func (q *messagingQueriesImpl) Contacts(ctx context.Context, actor shared.Actor) ([]*ContactView, error) {
	return q.repo.FindContacts(ctx, actor.ID)
}

func (q *messagingQueriesImpl) Conversation(ctx context.Context, actor shared.Actor, otherID uuid.UUID) ([]*MessageView, error) {
	if actor.ID == otherID {
		return nil, messaging.ErrSelfMessage
	}

	blocked, err := q.repo.IsBlocked(ctx, otherID, actor.ID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, messaging.ErrBlocked
	}

	return q.repo.FindConversation(ctx, actor.ID, otherID)
}
