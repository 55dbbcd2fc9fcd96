package repository

import (
	"context"

	"servicedesk/internal/domain/messaging"
	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

const createMessageSQL = `
INSERT INTO messages (id, sender_id, recipient_id, content, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *MessageRepository) Create(ctx context.Context, tx db.DBTX, m *messaging.Message) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createMessageSQL,
		pgconv.ToUUID(m.ID()),
		pgconv.ToUUID(m.SenderID()),
		pgconv.ToUUID(m.RecipientID()),
		m.Content(),
		pgconv.ToTimestamptz(m.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create message", err)
	}
	return pgconv.FromUUID(id), nil
}

const blockUserSQL = `
INSERT INTO blocked_users (blocker_id, blocked_id, created_at)
VALUES ($1, $2, now())
ON CONFLICT (blocker_id, blocked_id) DO NOTHING
`

// Block is idempotent; re-blocking an already blocked user is a no-op.
func (r *MessageRepository) Block(ctx context.Context, tx db.DBTX, blockerID, blockedID uuid.UUID) error {
	_, err := tx.Exec(ctx, blockUserSQL, pgconv.ToUUID(blockerID), pgconv.ToUUID(blockedID))
	if err != nil {
		return infra.WrapRepoErr("failed to block user", err)
	}
	return nil
}

const unblockUserSQL = `
DELETE FROM blocked_users WHERE blocker_id = $1 AND blocked_id = $2
`

func (r *MessageRepository) Unblock(ctx context.Context, tx db.DBTX, blockerID, blockedID uuid.UUID) error {
	_, err := tx.Exec(ctx, unblockUserSQL, pgconv.ToUUID(blockerID), pgconv.ToUUID(blockedID))
	if err != nil {
		return infra.WrapRepoErr("failed to unblock user", err)
	}
	return nil
}

const deleteConversationSQL = `
DELETE FROM messages
WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
`

func (r *MessageRepository) DeleteConversation(ctx context.Context, tx db.DBTX, a, b uuid.UUID) error {
	_, err := tx.Exec(ctx, deleteConversationSQL, pgconv.ToUUID(a), pgconv.ToUUID(b))
	if err != nil {
		return infra.WrapRepoErr("failed to delete conversation", err)
	}
	return nil
}
