package response

import (
	"time"

	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ContactResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Blocked  bool      `json:"blocked"`
}

type MessageResponse struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromContactList(items []*queries.ContactView) ([]*ContactResponse, error) {
	res := make([]*ContactResponse, len(items))
	for i, it := range items {
		var resp ContactResponse
		if err := copier.Copy(&resp, it); err != nil {
			return nil, errs.Wrap(err, "failed to map contact view")
		}
		res[i] = &resp
	}
	return res, nil
}

func FromMessageList(items []*queries.MessageView) ([]*MessageResponse, error) {
	res := make([]*MessageResponse, len(items))
	for i, it := range items {
		var resp MessageResponse
		if err := copier.Copy(&resp, it); err != nil {
			return nil, errs.Wrap(err, "failed to map message view")
		}
		res[i] = &resp
	}
	return res, nil
}
