package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("offering name is required")
	ErrNegativePrice      = errors.New("unit price cannot be negative")
	ErrInvalidPricingUnit = errors.New("invalid pricing unit")
	ErrInvalidCategory    = errors.New("invalid category")
)

type ServiceOffering struct {
	id          uuid.UUID
	name        string
	description string
	unitPrice   decimal.Decimal
	pricingUnit PricingUnit
	category    Category
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewServiceOffering(
	name, description string,
	unitPrice decimal.Decimal,
	pricingUnit PricingUnit,
	category Category,
) (*ServiceOffering, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if !pricingUnit.IsValid() {
		return nil, ErrInvalidPricingUnit
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	return &ServiceOffering{
		id:          uuid.New(),
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		pricingUnit: pricingUnit,
		category:    category,
		isActive:    true,
	}, nil
}

func ReconstructServiceOffering(
	id uuid.UUID,
	name, description string,
	unitPrice decimal.Decimal,
	pricingUnit PricingUnit,
	category Category,
	isActive bool,
	createdAt, updatedAt time.Time,
) *ServiceOffering {
	return &ServiceOffering{
		id:          id,
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		pricingUnit: pricingUnit,
		category:    category,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *ServiceOffering) Update(
	name, description string,
	unitPrice decimal.Decimal,
	pricingUnit PricingUnit,
	category Category,
) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if unitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if !pricingUnit.IsValid() {
		return ErrInvalidPricingUnit
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}

	s.name = name
	s.description = description
	s.unitPrice = unitPrice
	s.pricingUnit = pricingUnit
	s.category = category
	return nil
}

func (s *ServiceOffering) Deactivate() {
	s.isActive = false
}

func (s *ServiceOffering) ID() uuid.UUID              { return s.id }
func (s *ServiceOffering) Name() string               { return s.name }
func (s *ServiceOffering) Description() string        { return s.description }
func (s *ServiceOffering) UnitPrice() decimal.Decimal { return s.unitPrice }
func (s *ServiceOffering) PricingUnit() PricingUnit   { return s.pricingUnit }
func (s *ServiceOffering) Category() Category         { return s.category }
func (s *ServiceOffering) IsActive() bool             { return s.isActive }
func (s *ServiceOffering) CreatedAt() time.Time       { return s.createdAt }
func (s *ServiceOffering) UpdatedAt() time.Time       { return s.updatedAt }
