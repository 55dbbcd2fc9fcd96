//go:build e2e

package order_test

import (
	"fmt"
	"net/http"
	"testing"

	"servicedesk/internal/domain/user"
	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/handler/dto/response"
	"servicedesk/tests/common/authtest"
	"servicedesk/tests/common/dbtest"
	"servicedesk/tests/common/httptest"
	"servicedesk/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL          = "/api/cart"
	cartItemsURL     = "/api/cart/items"
	checkoutURL      = "/api/cart/checkout"
	requestsURL      = "/api/service-requests"
	allRequestsURL   = "/api/service-requests/all"
	requestURL       = "/api/service-requests/%s"
	requestStatusURL = "/api/service-requests/%s/status"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func (s *OrderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

// =============================================================================
// TestCheckoutFlow - cart to service request lifecycle
// =============================================================================

func (s *OrderSuite) TestCheckoutFlow() {
	s.Run("Normal case: customer fills the cart and checks out", func() {
		t := s.T()

		setupID := dbtest.CreateTestOffering(t, s.DB, "Printer repair", "80.00", "unit", "technical")
		tuningID := dbtest.CreateTestOffering(t, s.DB, "Network audit", "120.00", "hour", "technical")

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			reqdto.AddToCartRequest{ServiceID: setupID, Quantity: 2}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			reqdto.AddToCartRequest{ServiceID: tuningID, Quantity: 1}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var cart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		expectedCart := &response.CartResponse{
			Lines: []response.CartLineResponse{
				{ServiceID: setupID, ServiceName: "Printer repair", UnitPrice: "80.00", Quantity: 2, Subtotal: "160.00"},
				{ServiceID: tuningID, ServiceName: "Network audit", UnitPrice: "120.00", Quantity: 1, Subtotal: "120.00"},
			},
			Total: "280.00",
		}
		opts := []cmp.Option{
			cmpopts.SortSlices(func(a, b response.CartLineResponse) bool { return a.ServiceName < b.ServiceName }),
		}
		if diff := cmp.Diff(expectedCart, &cart, opts...); diff != "" {
			t.Errorf("cart mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "Pending", created.Status)
		require.Equal(t, "280.00", created.TotalPrice)
		require.Len(t, created.Items, 2)
		require.NotEmpty(t, created.ID)

		// The cart is consumed by a successful checkout.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var emptied response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &emptied))
		require.Empty(t, emptied.Lines)
		require.Equal(t, "0.00", emptied.Total)

		// The request is visible in the customer's own listing.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var listed []*response.RequestListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 1)
		require.Equal(t, created.ID, listed[0].ID)

		// And retrievable in full.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(requestURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		detailOpts := []cmp.Option{
			cmpopts.IgnoreFields(response.RequestResponse{}, "RequestDate"),
			cmpopts.SortSlices(func(a, b response.RequestItemResponse) bool { return a.ServiceName < b.ServiceName }),
		}
		if diff := cmp.Diff(&created, &fetched, detailOpts...); diff != "" {
			t.Errorf("request mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: checkout with an empty cart is rejected", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "empty@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: staff accounts cannot order services", func() {
		t := s.T()

		offeringID := dbtest.CreateTestOffering(t, s.DB, "Backup restore", "45.00", "unit", "technical")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleEmployee))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			reqdto.AddToCartRequest{ServiceID: offeringID, Quantity: 1}, token)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: inactive offerings cannot be added", func() {
		t := s.T()

		offeringID := dbtest.CreateTestOffering(t, s.DB, "Legacy migration", "200.00", "day", "technical")
		_, err := s.DB.Exec(t.Context(), "UPDATE service_offerings SET is_active = FALSE WHERE id = $1", offeringID)
		require.NoError(t, err)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer2@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			reqdto.AddToCartRequest{ServiceID: offeringID, Quantity: 1}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: checkout rolls back when an offering goes inactive after it was added", func() {
		t := s.T()

		offeringID := dbtest.CreateTestOffering(t, s.DB, "Server decommission", "300.00", "day", "business")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "stale@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			reqdto.AddToCartRequest{ServiceID: offeringID, Quantity: 1}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Retire the offering between add-to-cart and checkout.
		_, err := s.DB.Exec(t.Context(), "UPDATE service_offerings SET is_active = FALSE WHERE id = $1", offeringID)
		require.NoError(t, err)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		// The failed checkout must not leave partial rows behind.
		var requestCount int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM service_requests").Scan(&requestCount))
		require.Zero(t, requestCount)

		var itemCount int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM service_cart_items").Scan(&itemCount))
		require.Zero(t, itemCount)

		// The cart keeps its line so the customer can drop it and retry.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var cart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Len(t, cart.Lines, 1)
		require.Equal(t, offeringID, cart.Lines[0].ServiceID)
	})
}

// =============================================================================
// TestRequestStatus - staff-side request processing
// =============================================================================

func (s *OrderSuite) TestRequestStatus() {
	checkout := func(t *testing.T, email string) (string, response.RequestResponse) {
		offeringID := dbtest.CreateTestOffering(t, s.DB, "Monitor swap", "60.00", "unit", "business")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, email, string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			reqdto.AddToCartRequest{ServiceID: offeringID, Quantity: 1}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		return token, created
	}

	s.Run("Normal case: an employee moves a request through its lifecycle", func() {
		t := s.T()

		customerToken, created := checkout(t, "lifecycle@example.com")
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleEmployee))

		for _, status := range []string{"In Progress", "Serviced"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(requestStatusURL, created.ID),
				reqdto.UpdateRequestStatusRequest{Status: status}, staffToken)
			require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(requestURL, created.ID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, "Serviced", fetched.Status)
	})

	s.Run("Error case: customers cannot change request status", func() {
		t := s.T()

		customerToken, created := checkout(t, "tamper@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(requestStatusURL, created.ID),
			reqdto.UpdateRequestStatusRequest{Status: "Serviced"}, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: unknown status values are rejected", func() {
		t := s.T()

		_, created := checkout(t, "badstatus@example.com")
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator2@example.com", string(user.RoleEmployee))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(requestStatusURL, created.ID),
			reqdto.UpdateRequestStatusRequest{Status: "Done"}, staffToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Normal case: staff can list every request, customers cannot", func() {
		t := s.T()

		_, _ = checkout(t, "lister@example.com")
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleUser))
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator3@example.com", string(user.RoleEmployee))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, allRequestsURL, nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code)
		var all []*response.RequestListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &all))
		require.Len(t, all, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, allRequestsURL, nil, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
