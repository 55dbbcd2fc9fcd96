package api

import (
	"errors"
	"net/http"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/user"

	"github.com/gin-gonic/gin"
)

// isDomainValidationErr reports whether err is an entity or value-object
// validation failure, mapped to 422 rather than 400 or 500.
func isDomainValidationErr(err error) bool {
	return errors.Is(err, user.ErrInvalidEmail) ||
		errors.Is(err, user.ErrInvalidUsername) ||
		errors.Is(err, user.ErrInvalidRole) ||
		errors.Is(err, user.ErrPasswordTooWeak) ||
		errors.Is(err, catalog.ErrEmptyName) ||
		errors.Is(err, catalog.ErrNegativePrice) ||
		errors.Is(err, catalog.ErrInvalidPricingUnit) ||
		errors.Is(err, catalog.ErrInvalidCategory)
}

// writeMapped renders a response body produced by a dto mapper, turning a
// mapping failure into a 500.
func writeMapped(c *gin.Context, status int, body any, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(status, body)
}
