package request

import "github.com/shopspring/decimal"

type CreateOfferingRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	PricingUnit string          `json:"pricing_unit" binding:"required,oneof=unit hour day"`
	Category    string          `json:"category" binding:"required,oneof=business technical"`
}

type UpdateOfferingRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	PricingUnit string          `json:"pricing_unit" binding:"required,oneof=unit hour day"`
	Category    string          `json:"category" binding:"required,oneof=business technical"`
	IsActive    *bool           `json:"is_active"`
}
