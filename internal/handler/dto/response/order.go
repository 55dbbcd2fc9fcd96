package response

import (
	"time"

	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	UnitPrice   string    `json:"unit_price"`
	Quantity    int32     `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total string             `json:"total"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	lines := make([]CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CartLineResponse{
			ServiceID:   l.ServiceID,
			ServiceName: l.ServiceName,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal.StringFixed(2),
		}
	}
	return &CartResponse{
		Lines: lines,
		Total: v.Total.StringFixed(2),
	}
}

type RequestItemResponse struct {
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Quantity    int32     `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
}

type RequestResponse struct {
	ID          uuid.UUID             `json:"id"`
	UserID      uuid.UUID             `json:"user_id"`
	Username    string                `json:"username"`
	RequestDate time.Time             `json:"request_date"`
	Status      string                `json:"status"`
	TotalPrice  string                `json:"total_price"`
	Items       []RequestItemResponse `json:"items"`
}

type RequestListResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	RequestDate time.Time `json:"request_date"`
	Status      string    `json:"status"`
	TotalPrice  string    `json:"total_price"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	items := make([]RequestItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = RequestItemResponse{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
		}
	}
	return &RequestResponse{
		ID:          v.ID,
		UserID:      v.UserID,
		Username:    v.Username,
		RequestDate: v.RequestDate,
		Status:      v.Status,
		TotalPrice:  v.TotalPrice.StringFixed(2),
		Items:       items,
	}
}

func FromRequestList(items []*queries.RequestListItem) []*RequestListResponse {
	res := make([]*RequestListResponse, len(items))
	for i, it := range items {
		res[i] = &RequestListResponse{
			ID:          it.ID,
			UserID:      it.UserID,
			Username:    it.Username,
			RequestDate: it.RequestDate,
			Status:      it.Status,
			TotalPrice:  it.TotalPrice.StringFixed(2),
		}
	}
	return res
}
