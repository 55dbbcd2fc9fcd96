package order

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid request status")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Status values are stored verbatim, including the space in "In Progress".
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusServiced   Status = "Serviced"
	StatusRejected   Status = "Rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusServiced, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
