package catalog

type PricingUnit string

const (
	PricingUnitUnit PricingUnit = "unit"
	PricingUnitHour PricingUnit = "hour"
	PricingUnitDay  PricingUnit = "day"
)

func (p PricingUnit) String() string {
	return string(p)
}

func (p PricingUnit) IsValid() bool {
	switch p {
	case PricingUnitUnit, PricingUnitHour, PricingUnitDay:
		return true
	default:
		return false
	}
}

func NewPricingUnit(s string) (PricingUnit, error) {
	unit := PricingUnit(s)
	if !unit.IsValid() {
		return "", ErrInvalidPricingUnit
	}
	return unit, nil
}

type Category string

const (
	CategoryBusiness  Category = "business"
	CategoryTechnical Category = "technical"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBusiness, CategoryTechnical:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", ErrInvalidCategory
	}
	return category, nil
}
