package request

import "github.com/google/uuid"

type AddToCartRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,gt=0"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
