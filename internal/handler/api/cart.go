package api

import (
	"errors"
	"net/http"

	"servicedesk/internal/domain/order"
	reqdto "servicedesk/internal/handler/dto/request"
	resdto "servicedesk/internal/handler/dto/response"
	"servicedesk/internal/handler/middleware"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	orderCommands commands.OrderCommands
}

func NewCartHandler(orderCommands commands.OrderCommands) *CartHandler {
	return &CartHandler{orderCommands: orderCommands}
}

// @Summary Add to cart
// @Description Append an active offering to the session cart
// @Tags cart
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.AddToCartRequest true "Cart line"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.orderCommands.AddToCart(c.Request.Context(), actor, req); err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only customers can order services",
			})
		case errors.Is(err, commands.ErrInvalidService):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Service offering is unknown or inactive",
			})
		case errors.Is(err, order.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary View cart
// @Description Show the session cart priced against the current catalog
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) ViewCart(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.orderCommands.ViewCart(c.Request.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only customers can order services",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Checkout
// @Description Turn the session cart into a service request atomically
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.orderCommands.Checkout(c.Request.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only customers can order services",
			})
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrInvalidService):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart references an unknown or inactive service",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}
