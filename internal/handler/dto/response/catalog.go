package response

import (
	"time"

	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferingResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnitPrice   string    `json:"unit_price"`
	PricingUnit string    `json:"pricing_unit"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromOfferingView(v *queries.OfferingView) (*OfferingResponse, error) {
	var resp OfferingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "failed to map offering view")
	}
	resp.UnitPrice = v.UnitPrice.StringFixed(2)
	return &resp, nil
}

func FromOfferingList(items []*queries.OfferingView) ([]*OfferingResponse, error) {
	res := make([]*OfferingResponse, len(items))
	for i, it := range items {
		resp, err := FromOfferingView(it)
		if err != nil {
			return nil, err
		}
		res[i] = resp
	}
	return res, nil
}
