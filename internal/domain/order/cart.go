package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is a transient, session-scoped pair. It is never persisted;
// adding the same offering twice appends a second line.
type CartLine struct {
	ServiceID uuid.UUID
	Quantity  int32
}

func NewCartLine(serviceID uuid.UUID, quantity int32) (CartLine, error) {
	if quantity <= 0 {
		return CartLine{}, ErrInvalidQuantity
	}
	return CartLine{ServiceID: serviceID, Quantity: quantity}, nil
}

// PricedLine is a cart line joined with the unit price read inside the
// checkout transaction.
type PricedLine struct {
	ServiceID uuid.UUID
	Quantity  int32
	UnitPrice decimal.Decimal
}

func (l PricedLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity))
}

// Total sums unit_price x quantity over all lines with exact decimal
// arithmetic.
func Total(lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
