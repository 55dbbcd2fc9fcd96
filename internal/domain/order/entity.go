package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceRequest is an order created atomically with its items at checkout.
// totalPrice is a creation-time snapshot; status updates never touch it.
type ServiceRequest struct {
	id          uuid.UUID
	userID      uuid.UUID
	requestDate time.Time
	status      Status
	totalPrice  decimal.Decimal
}

func NewServiceRequest(userID uuid.UUID, requestDate time.Time) *ServiceRequest {
	return &ServiceRequest{
		id:          uuid.New(),
		userID:      userID,
		requestDate: requestDate,
		status:      StatusPending,
		totalPrice:  decimal.Zero,
	}
}

func ReconstructServiceRequest(
	id, userID uuid.UUID,
	requestDate time.Time,
	status Status,
	totalPrice decimal.Decimal,
) *ServiceRequest {
	return &ServiceRequest{
		id:          id,
		userID:      userID,
		requestDate: requestDate,
		status:      status,
		totalPrice:  totalPrice,
	}
}

// SetTotal fixes the creation-time snapshot once the items are priced.
func (r *ServiceRequest) SetTotal(total decimal.Decimal) {
	r.totalPrice = total
}

func (r *ServiceRequest) ChangeStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	r.status = s
	return nil
}

func (r *ServiceRequest) ID() uuid.UUID               { return r.id }
func (r *ServiceRequest) UserID() uuid.UUID           { return r.userID }
func (r *ServiceRequest) RequestDate() time.Time      { return r.requestDate }
func (r *ServiceRequest) Status() Status              { return r.status }
func (r *ServiceRequest) TotalPrice() decimal.Decimal { return r.totalPrice }

// ServiceCartItem is a persisted order line owned by its parent request.
type ServiceCartItem struct {
	id        uuid.UUID
	requestID uuid.UUID
	serviceID uuid.UUID
	quantity  int32
}

func NewServiceCartItem(requestID, serviceID uuid.UUID, quantity int32) (*ServiceCartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &ServiceCartItem{
		id:        uuid.New(),
		requestID: requestID,
		serviceID: serviceID,
		quantity:  quantity,
	}, nil
}

func ReconstructServiceCartItem(id, requestID, serviceID uuid.UUID, quantity int32) *ServiceCartItem {
	return &ServiceCartItem{
		id:        id,
		requestID: requestID,
		serviceID: serviceID,
		quantity:  quantity,
	}
}

func (i *ServiceCartItem) ID() uuid.UUID        { return i.id }
func (i *ServiceCartItem) RequestID() uuid.UUID { return i.requestID }
func (i *ServiceCartItem) ServiceID() uuid.UUID { return i.serviceID }
func (i *ServiceCartItem) Quantity() int32      { return i.quantity }
