package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OfferingView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	PricingUnit string          `json:"pricing_unit"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CartLineView joins a session cart line with the current catalog price.
// Display only; the authoritative price is re-read at checkout.
type CartLineView struct {
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int32           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Lines []CartLineView  `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type RequestListItem struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Username    string          `json:"username"`
	RequestDate time.Time       `json:"request_date"`
	Status      string          `json:"status"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type RequestItemView struct {
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type RequestView struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Username    string            `json:"username"`
	RequestDate time.Time         `json:"request_date"`
	Status      string            `json:"status"`
	TotalPrice  decimal.Decimal   `json:"total_price"`
	Items       []RequestItemView `json:"items"`
}

type IncidentView struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	ReporterID       uuid.UUID  `json:"reporter_id"`
	ReporterUsername string     `json:"reporter_username"`
	AssigneeID       *uuid.UUID `json:"assignee_id,omitempty"`
	ResolutionTime   *int32     `json:"resolution_time,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type ContactView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Blocked  bool      `json:"blocked"`
}

type MessageView struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
