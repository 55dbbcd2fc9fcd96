package api

import (
	"errors"
	"net/http"

	reqdto "servicedesk/internal/handler/dto/request"
	resdto "servicedesk/internal/handler/dto/response"
	"servicedesk/internal/handler/middleware"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/commands"
	"servicedesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List services
// @Description List active offerings in a category. The technical catalog is staff-only.
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param category query string false "Catalog category" Enums(business, technical) default(business)
// @Success 200 {array} resdto.OfferingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	category := c.DefaultQuery("category", "business")

	views, err := h.catalogQueries.ListByCategory(c.Request.Context(), actor, category)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Technical catalog is restricted to staff",
			})
		case isDomainValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid category",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, mapErr := resdto.FromOfferingList(views)
	writeMapped(c, http.StatusOK, resp, mapErr)
}

// @Summary List all services
// @Description List every offering including inactive ones. Staff only.
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OfferingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /services/all [get]
func (h *CatalogHandler) ListAllServices(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.catalogQueries.ListAll(c.Request.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Staff privileges required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, mapErr := resdto.FromOfferingList(views)
	writeMapped(c, http.StatusOK, resp, mapErr)
}

// @Summary Get service
// @Description Get an offering by ID
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} resdto.OfferingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offering ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Technical catalog is restricted to staff",
			})
		case errors.Is(err, errs.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service offering not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, mapErr := resdto.FromOfferingView(view)
	writeMapped(c, http.StatusOK, resp, mapErr)
}

// @Summary Create service
// @Description Create an offering. Staff only; employees are confined to the business catalog.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferingRequest true "Offering request"
// @Success 201 {object} resdto.OfferingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateOffering(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Staff privileges required",
			})
		case isDomainValidationErr(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.catalogQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	resp, mapErr := resdto.FromOfferingView(view)
	writeMapped(c, http.StatusCreated, resp, mapErr)
}

// @Summary Update service
// @Description Update an offering. Employees may only touch the business catalog.
// @Tags services
// @Accept json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body reqdto.UpdateOfferingRequest true "Offering request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offering ID format",
		})
		return
	}

	var req reqdto.UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateOffering(c.Request.Context(), actor, id, req); err != nil {
		h.writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate service
// @Description Retire an offering from the catalog without deleting it
// @Tags services
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/deactivate [post]
func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offering ID format",
		})
		return
	}

	if err := h.catalogCommands.DeactivateOffering(c.Request.Context(), actor, id); err != nil {
		h.writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete service
// @Description Delete an offering. Refused while existing orders reference it.
// @Tags services
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offering ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteOffering(c.Request.Context(), actor, id); err != nil {
		h.writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Staff privileges required",
		})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service offering not found",
		})
	case errors.Is(err, commands.ErrOfferingInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Service offering is referenced by existing orders",
		})
	case isDomainValidationErr(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
