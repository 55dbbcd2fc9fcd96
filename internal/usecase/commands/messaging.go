package commands

import (
	"context"
	"errors"

	"servicedesk/internal/domain/messaging"
	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/clock"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessagingCommands interface {
	// Send refuses self-messages and any pair with a block in either
	// direction.
	Send(ctx context.Context, actor shared.Actor, req reqdto.SendMessageRequest) (uuid.UUID, error)
	// Block is idempotent.
	Block(ctx context.Context, actor shared.Actor, otherID uuid.UUID) error
	Unblock(ctx context.Context, actor shared.Actor, otherID uuid.UUID) error
	// DeleteConversation removes messages in both directions.
	DeleteConversation(ctx context.Context, actor shared.Actor, otherID uuid.UUID) error
}

type messagingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMessagingCommands(uow shared.UnitOfWork, clk clock.Clock) MessagingCommands {
	return &messagingCommandsImpl{uow: uow, clock: clk}
}

func (m *messagingCommandsImpl) Send(ctx context.Context, actor shared.Actor, req reqdto.SendMessageRequest) (uuid.UUID, error) {
	msg, err := messaging.NewMessage(actor.ID, req.RecipientID, req.Content, m.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().UserByID(ctx, req.RecipientID); readErr != nil {
			return readErr
		}

		blocked, blockErr := tx.Reads().BlockedEither(ctx, actor.ID, req.RecipientID)
		if blockErr != nil {
			return blockErr
		}
		if blocked {
			return messaging.ErrBlocked
		}

		createdID, createErr := tx.Messages().Create(ctx, tx.DB(), msg)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, messaging.ErrBlocked):
			return uuid.Nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return uuid.Nil, errs.Mark(err, errs.ErrNotFound)
		default:
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return id, nil
}

func (m *messagingCommandsImpl) Block(ctx context.Context, actor shared.Actor, otherID uuid.UUID) error {
	if actor.ID == otherID {
		return messaging.ErrSelfMessage
	}
	return m.withUserCheck(ctx, otherID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Messages().Block(ctx, tx.DB(), actor.ID, otherID)
	})
}

func (m *messagingCommandsImpl) Unblock(ctx context.Context, actor shared.Actor, otherID uuid.UUID) error {
	return m.withUserCheck(ctx, otherID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Messages().Unblock(ctx, tx.DB(), actor.ID, otherID)
	})
}

func (m *messagingCommandsImpl) DeleteConversation(ctx context.Context, actor shared.Actor, otherID uuid.UUID) error {
	return m.withUserCheck(ctx, otherID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Messages().DeleteConversation(ctx, tx.DB(), actor.ID, otherID)
	})
}

func (m *messagingCommandsImpl) withUserCheck(ctx context.Context, otherID uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().UserByID(ctx, otherID); readErr != nil {
			return readErr
		}
		return fn(ctx, tx)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
