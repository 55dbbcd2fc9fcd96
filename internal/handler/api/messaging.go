package api

import (
	"context"
	"errors"
	"net/http"

	"servicedesk/internal/domain/messaging"
	reqdto "servicedesk/internal/handler/dto/request"
	resdto "servicedesk/internal/handler/dto/response"
	"servicedesk/internal/handler/middleware"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/commands"
	"servicedesk/internal/usecase/queries"
	"servicedesk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessagingHandler struct {
	messagingCommands commands.MessagingCommands
	messagingQueries  queries.MessagingQueries
}

func NewMessagingHandler(messagingCommands commands.MessagingCommands, messagingQueries queries.MessagingQueries) *MessagingHandler {
	return &MessagingHandler{
		messagingCommands: messagingCommands,
		messagingQueries:  messagingQueries,
	}
}

// @Summary List contacts
// @Description List other users, flagging the ones the current user blocked
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ContactResponse
// @Failure 401 {object} map[string]string
// @Router /messages/contacts [get]
func (h *MessagingHandler) ListContacts(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.messagingQueries.Contacts(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, mapErr := resdto.FromContactList(views)
	writeMapped(c, http.StatusOK, resp, mapErr)
}

// @Summary Get conversation
// @Description Get the message history with another user in chronological order
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Other user ID"
// @Success 200 {array} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /messages/{id} [get]
func (h *MessagingHandler) GetConversation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	otherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	views, err := h.messagingQueries.Conversation(c.Request.Context(), actor, otherID)
	if err != nil {
		h.writeMessagingError(c, err)
		return
	}

	resp, mapErr := resdto.FromMessageList(views)
	writeMapped(c, http.StatusOK, resp, mapErr)
}

// @Summary Send message
// @Description Send a direct message to another user
// @Tags messages
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages [post]
func (h *MessagingHandler) SendMessage(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.messagingCommands.Send(c.Request.Context(), actor, req)
	if err != nil {
		h.writeMessagingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Block user
// @Description Block another user; blocking is idempotent
// @Tags messages
// @Security BearerAuth
// @Param id path string true "User ID to block"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id}/block [post]
func (h *MessagingHandler) BlockUser(c *gin.Context) {
	h.userAction(c, h.messagingCommands.Block)
}

// @Summary Unblock user
// @Description Remove a block the current user placed
// @Tags messages
// @Security BearerAuth
// @Param id path string true "User ID to unblock"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id}/block [delete]
func (h *MessagingHandler) UnblockUser(c *gin.Context) {
	h.userAction(c, h.messagingCommands.Unblock)
}

// @Summary Delete conversation
// @Description Delete the message history with another user in both directions
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Other user ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id} [delete]
func (h *MessagingHandler) DeleteConversation(c *gin.Context) {
	h.userAction(c, h.messagingCommands.DeleteConversation)
}

func (h *MessagingHandler) userAction(c *gin.Context, action func(ctx context.Context, actor shared.Actor, otherID uuid.UUID) error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	otherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	if err := action(c.Request.Context(), actor, otherID); err != nil {
		h.writeMessagingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MessagingHandler) writeMessagingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, messaging.ErrSelfMessage):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot target yourself",
		})
	case errors.Is(err, messaging.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Message content is required",
		})
	case errors.Is(err, messaging.ErrBlocked):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Messaging between these users is blocked",
		})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
