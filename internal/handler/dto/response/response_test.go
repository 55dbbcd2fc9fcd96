//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "servicedesk/internal/handler/dto/response"
	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFromOfferingView_FormatsPrice(t *testing.T) {
	now := time.Now()
	view := &queries.OfferingView{
		ID:          uuid.New(),
		Name:        "Workstation setup",
		Description: "Desk, monitor, peripherals",
		UnitPrice:   decimal.RequireFromString("150.5"),
		PricingUnit: "unit",
		Category:    "business",
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp, err := resdto.FromOfferingView(view)
	require.NoError(t, err)
	require.Equal(t, "150.50", resp.UnitPrice)
	require.Equal(t, view.Name, resp.Name)
	require.Equal(t, view.ID, resp.ID)
}

// A nil source must surface as an error instead of a silently zeroed body.
func TestMappers_RejectNilSource(t *testing.T) {
	_, err := resdto.FromUserView(nil)
	require.Error(t, err)

	_, err = resdto.FromIncidentView(nil)
	require.Error(t, err)

	_, err = resdto.FromIncidentSnapshot(nil)
	require.Error(t, err)

	_, err = resdto.FromOfferingView(nil)
	require.Error(t, err)
}
