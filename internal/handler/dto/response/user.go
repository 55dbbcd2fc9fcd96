package response

import (
	"time"

	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "failed to map user view")
	}
	return &resp, nil
}

func FromUserList(items []*queries.UserView) ([]*UserResponse, error) {
	res := make([]*UserResponse, len(items))
	for i, it := range items {
		resp, err := FromUserView(it)
		if err != nil {
			return nil, err
		}
		res[i] = resp
	}
	return res, nil
}
