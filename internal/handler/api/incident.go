package api

import (
	"errors"
	"net/http"

	"servicedesk/internal/domain/incident"
	reqdto "servicedesk/internal/handler/dto/request"
	resdto "servicedesk/internal/handler/dto/response"
	"servicedesk/internal/handler/middleware"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/commands"
	"servicedesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IncidentHandler struct {
	incidentCommands commands.IncidentCommands
	incidentQueries  queries.IncidentQueries
}

func NewIncidentHandler(incidentCommands commands.IncidentCommands, incidentQueries queries.IncidentQueries) *IncidentHandler {
	return &IncidentHandler{
		incidentCommands: incidentCommands,
		incidentQueries:  incidentQueries,
	}
}

// @Summary Report incident
// @Description Open an incident ticket
// @Tags incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIncidentRequest true "Incident report"
// @Success 201 {object} resdto.IncidentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /incidents [post]
func (h *IncidentHandler) CreateIncident(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.incidentCommands.Create(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, incident.ErrEmptyTitle):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Incident title is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.incidentQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	resp, mapErr := resdto.FromIncidentView(view)
	writeMapped(c, http.StatusCreated, resp, mapErr)
}

// @Summary List my incidents
// @Description List incidents reported by the current user
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.IncidentResponse
// @Failure 401 {object} map[string]string
// @Router /incidents [get]
func (h *IncidentHandler) ListMyIncidents(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.incidentQueries.ListMine(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, mapErr := resdto.FromIncidentList(views)
	writeMapped(c, http.StatusOK, resp, mapErr)
}

// @Summary List all incidents
// @Description List every incident. Staff only.
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.IncidentResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /incidents/all [get]
func (h *IncidentHandler) ListAllIncidents(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.incidentQueries.ListAll(c.Request.Context(), actor)
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

	resp, mapErr := resdto.FromIncidentList(views)
	writeMapped(c, http.StatusOK, resp, mapErr)
}

// @Summary Get incident
// @Description Get an incident. Reporters see their own; staff see everything.
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} resdto.IncidentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /incidents/{id} [get]
func (h *IncidentHandler) GetIncident(c *gin.Context) {
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
			"error": "Invalid incident ID format",
		})
		return
	}

	view, err := h.incidentQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You may only view incidents you reported",
			})
		case errors.Is(err, errs.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Incident not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, mapErr := resdto.FromIncidentView(view)
	writeMapped(c, http.StatusOK, resp, mapErr)
}

// @Summary Update incident status
// @Description Move an incident through its workflow; the actor becomes the assignee. Staff only.
// @Tags incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body reqdto.UpdateIncidentStatusRequest true "Status update"
// @Success 200 {object} resdto.IncidentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /incidents/{id}/status [put]
func (h *IncidentHandler) UpdateStatus(c *gin.Context) {
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
			"error": "Invalid incident ID format",
		})
		return
	}

	var req reqdto.UpdateIncidentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.incidentCommands.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Staff privileges required",
			})
		case errors.Is(err, errs.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Incident not found",
			})
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid incident status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, mapErr := resdto.FromIncidentSnapshot(snap)
	writeMapped(c, http.StatusOK, resp, mapErr)
}
