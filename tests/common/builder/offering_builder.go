//go:build unit || e2e

package builder

import (
	"time"

	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferingBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	PricingUnit string
	Category    string
	IsActive    bool
}

func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		ID:          uuid.New(),
		Name:        "Workstation setup",
		Description: "Provision and configure a workstation",
		UnitPrice:   decimal.RequireFromString("150.00"),
		PricingUnit: "unit",
		Category:    "business",
		IsActive:    true,
	}
}

func (o *OfferingBuilder) WithCategory(category string) *OfferingBuilder {
	o.Category = category
	return o
}

func (o *OfferingBuilder) WithPrice(price string) *OfferingBuilder {
	o.UnitPrice = decimal.RequireFromString(price)
	return o
}

func (o *OfferingBuilder) AsInactive() *OfferingBuilder {
	o.IsActive = false
	return o
}

func (o *OfferingBuilder) BuildView() *queries.OfferingView {
	now := time.Now()
	return &queries.OfferingView{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		UnitPrice:   o.UnitPrice,
		PricingUnit: o.PricingUnit,
		Category:    o.Category,
		IsActive:    o.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (o *OfferingBuilder) BuildCreateDTO() reqdto.CreateOfferingRequest {
	return reqdto.CreateOfferingRequest{
		Name:        o.Name,
		Description: o.Description,
		UnitPrice:   o.UnitPrice,
		PricingUnit: o.PricingUnit,
		Category:    o.Category,
	}
}
