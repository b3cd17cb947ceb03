package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"msgboard/internal/message"
	"msgboard/internal/store"
)

// MessageHandlers provides HTTP handlers for message CRUD endpoints.
type MessageHandlers struct {
	service *message.Service
	log     *zerolog.Logger
}

// NewMessageHandlers creates a new message handlers instance.
func NewMessageHandlers(svc *message.Service, logger *zerolog.Logger) *MessageHandlers {
	return &MessageHandlers{
		service: svc,
		log:     logger,
	}
}

// MessageRequest represents a create or update request body.
// Text is a pointer so a missing field can be told apart from an empty one.
type MessageRequest struct {
	Text *string `json:"text"`
}

// MessageResponse represents a message in API responses.
type MessageResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// CreateMessageResponse represents the create response body.
type CreateMessageResponse struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Success bool   `json:"success"`
}

// DeleteMessageResponse represents the delete response body.
type DeleteMessageResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func messageToResponse(msg *store.Message) MessageResponse {
	return MessageResponse{
		ID:        msg.ID,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
}

// validationError maps a validator failure to a client error body.
func validationError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, message.ErrEmptyText):
		return http.StatusBadRequest, ErrorResponse{Error: "Text is required"}
	case errors.Is(err, message.ErrTextTooLong):
		return http.StatusBadRequest, ErrorResponse{Error: "Text must be at most 500 characters"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid message id"})
		return 0, false
	}
	return id, true
}

// ListMessages handles listing all messages, newest first.
// GET /api/messages
func (h *MessageHandlers) ListMessages(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list messages")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, messageToResponse(msg))
	}

	c.JSON(http.StatusOK, response)
}

// CreateMessage handles message creation.
// POST /api/messages
func (h *MessageHandlers) CreateMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
		h.log.Debug().Msg("create request missing text field")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text is required"})
		return
	}

	msg, err := h.service.Create(c.Request.Context(), *req.Text)
	if err != nil {
		if errors.Is(err, message.ErrEmptyText) || errors.Is(err, message.ErrTextTooLong) {
			c.JSON(validationError(err))
			return
		}
		h.log.Error().Err(err).Msg("failed to create message")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	h.log.Info().Int64("message_id", msg.ID).Msg("message created")
	c.JSON(http.StatusOK, CreateMessageResponse{
		ID:      msg.ID,
		Text:    msg.Text,
		Success: true,
	})
}

// GetMessage handles retrieving a single message.
// GET /api/messages/:id
func (h *MessageHandlers) GetMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	msg, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("message_id", id).Msg("failed to get message")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if msg == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Message not found"})
		return
	}

	c.JSON(http.StatusOK, messageToResponse(msg))
}

// UpdateMessage handles replacing a message's text.
// PUT /api/messages/:id
func (h *MessageHandlers) UpdateMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
		h.log.Debug().Int64("message_id", id).Msg("update request missing text field")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text is required"})
		return
	}

	msg, err := h.service.Update(c.Request.Context(), id, *req.Text)
	if err != nil {
		if errors.Is(err, message.ErrEmptyText) || errors.Is(err, message.ErrTextTooLong) {
			c.JSON(validationError(err))
			return
		}
		h.log.Error().Err(err).Int64("message_id", id).Msg("failed to update message")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if msg == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Message not found"})
		return
	}

	h.log.Info().Int64("message_id", id).Msg("message updated")
	c.JSON(http.StatusOK, messageToResponse(msg))
}

// DeleteMessage handles removing a message.
// DELETE /api/messages/:id
func (h *MessageHandlers) DeleteMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("message_id", id).Msg("failed to delete message")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Message not found"})
		return
	}

	h.log.Info().Int64("message_id", id).Msg("message deleted")
	c.JSON(http.StatusOK, DeleteMessageResponse{Success: true})
}
