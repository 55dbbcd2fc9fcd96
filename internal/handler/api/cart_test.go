//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"servicedesk/internal/domain/order"
	"servicedesk/internal/handler/api"
	reqdto "servicedesk/internal/handler/dto/request"
	resdto "servicedesk/internal/handler/dto/response"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/commands"
	"servicedesk/internal/usecase/queries"
	"servicedesk/tests/common/builder"
	"servicedesk/tests/common/httptest"
	"servicedesk/tests/common/testutil"
	commandsmock "servicedesk/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	handler      *api.CartHandler
	actor        *builder.UserBuilder
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands)
	s.actor = builder.NewUserBuilder()

	// Mock middleware behavior: the auth layer has already resolved the actor
	withActor := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("actor", s.actor.BuildActor())
			h(c)
		}
	}
	s.router.GET("/cart", withActor(s.handler.ViewCart))
	s.router.POST("/cart/items", withActor(s.handler.AddToCart))
	s.router.POST("/cart/checkout", withActor(s.handler.Checkout))
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestAddToCart() {
	url := "/cart/items"

	reqBody := reqdto.AddToCartRequest{
		ServiceID: uuid.New(),
		Quantity:  2,
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().AddToCart(gomock.Any(), gomock.Any(), reqBody).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for unknown or inactive service", func() {
		s.mockCommands.EXPECT().AddToCart(gomock.Any(), gomock.Any(), reqBody).
			Return(commands.ErrInvalidService).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown or inactive")
	})

	s.Run("error: 400 Bad Request for non-positive quantity", func() {
		s.mockCommands.EXPECT().AddToCart(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(order.ErrInvalidQuantity).Times(1)
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", 1))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Quantity must be positive")
	})

	s.Run("error: 403 Forbidden for staff accounts", func() {
		s.actor = builder.NewUserBuilder().WithRole("employee")
		defer func() { s.actor = builder.NewUserBuilder() }()

		s.mockCommands.EXPECT().AddToCart(gomock.Any(), gomock.Any(), reqBody).
			Return(errs.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only customers can order services")
	})
}

func (s *CartHandlerTestSuite) TestViewCart() {
	url := "/cart"

	s.Run("success: returns the priced cart", func() {
		offering := builder.NewOfferingBuilder().WithPrice("150.00")
		view := &queries.CartView{
			Lines: []queries.CartLineView{
				{
					ServiceID:   offering.ID,
					ServiceName: offering.Name,
					UnitPrice:   offering.UnitPrice,
					Quantity:    2,
					Subtotal:    decimal.RequireFromString("300.00"),
				},
			},
			Total: decimal.RequireFromString("300.00"),
		}
		s.mockCommands.EXPECT().ViewCart(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Lines, 1)
		s.Equal("150.00", response.Lines[0].UnitPrice)
		s.Equal("300.00", response.Total)
	})

	s.Run("success: empty cart has a zero total", func() {
		view := &queries.CartView{Lines: nil, Total: decimal.Zero}
		s.mockCommands.EXPECT().ViewCart(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Lines)
		s.Equal("0.00", response.Total)
	})
}

func (s *CartHandlerTestSuite) TestCheckout() {
	url := "/cart/checkout"

	s.Run("success: returns 201 Created with the new request", func() {
		serviceID := uuid.New()
		view := &queries.RequestView{
			ID:          uuid.New(),
			UserID:      s.actor.ID,
			Username:    s.actor.Username,
			RequestDate: time.Now(),
			Status:      "Pending",
			TotalPrice:  decimal.RequireFromString("23.50"),
			Items: []queries.RequestItemView{
				{
					ServiceID:   serviceID,
					ServiceName: "Password reset",
					Quantity:    1,
					UnitPrice:   decimal.RequireFromString("23.50"),
				},
			},
		}
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Pending", response.Status)
		s.Equal("23.50", response.TotalPrice)
		s.Require().Len(response.Items, 1)
		s.Equal("Password reset", response.Items[0].ServiceName)
	})

	s.Run("error: 400 Bad Request for an empty cart", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmptyCart).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Cart is empty")
	})

	s.Run("error: 400 Bad Request when a cart line went stale", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidService).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown or inactive")
	})

	s.Run("error: 403 Forbidden for staff accounts", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only customers")
	})
}
