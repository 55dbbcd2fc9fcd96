package readstore

import (
	"context"

	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"
	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

const findContactsSQL = `
SELECT u.id, u.username,
       EXISTS (
           SELECT 1 FROM blocked_users b
           WHERE b.blocker_id = $1 AND b.blocked_id = u.id
       ) AS blocked
FROM users u
WHERE u.id <> $1
ORDER BY u.username
`

func (r *MessageReadStore) FindContacts(ctx context.Context, userID uuid.UUID) ([]*queries.ContactView, error) {
	rows, err := r.db.Query(ctx, findContactsSQL, pgconv.ToUUID(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contacts", err)
	}
	defer rows.Close()

	var result []*queries.ContactView
	for rows.Next() {
		var (
			id       pgtype.UUID
			username string
			blocked  bool
		)
		if err := rows.Scan(&id, &username, &blocked); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contact row", err)
		}
		result = append(result, &queries.ContactView{
			ID:       pgconv.FromUUID(id),
			Username: username,
			Blocked:  blocked,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate contact rows", err)
	}
	return result, nil
}

const findConversationSQL = `
SELECT id, sender_id, recipient_id, content, created_at
FROM messages
WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
ORDER BY created_at
`

func (r *MessageReadStore) FindConversation(ctx context.Context, a, b uuid.UUID) ([]*queries.MessageView, error) {
	rows, err := r.db.Query(ctx, findConversationSQL, pgconv.ToUUID(a), pgconv.ToUUID(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load conversation", err)
	}
	defer rows.Close()

	var result []*queries.MessageView
	for rows.Next() {
		var (
			id, senderID, recipientID pgtype.UUID
			content                   string
			createdAt                 pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &senderID, &recipientID, &content, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		result = append(result, &queries.MessageView{
			ID:          pgconv.FromUUID(id),
			SenderID:    pgconv.FromUUID(senderID),
			RecipientID: pgconv.FromUUID(recipientID),
			Content:     content,
			CreatedAt:   pgconv.FromTimestamptz(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate message rows", err)
	}
	return result, nil
}

const isBlockedSQL = `
SELECT EXISTS (
    SELECT 1 FROM blocked_users WHERE blocker_id = $1 AND blocked_id = $2
)
`

func (r *MessageReadStore) IsBlocked(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error) {
	var blocked bool
	err := r.db.QueryRow(ctx, isBlockedSQL, pgconv.ToUUID(blockerID), pgconv.ToUUID(blockedID)).Scan(&blocked)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check block state", err)
	}
	return blocked, nil
}
