package http

import (
	"errors"
	"net/http"

	"github.com/enaszrekat/reuse-market-app/internal/usecase"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"
	"github.com/enaszrekat/reuse-market-app/pkg/response"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase usecase.MessageUseCase
	logger         *logger.Logger
}

func NewMessageHandler(messageUseCase usecase.MessageUseCase, logger *logger.Logger) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
		logger:         logger,
	}
}

type SendMessageRequest struct {
	ConversationID int64  `form:"conversation_id" json:"conversation_id"`
	SenderID       int64  `form:"sender_id" json:"sender_id"`
	ReceiverID     int64  `form:"receiver_id" json:"receiver_id"`
	Message        string `form:"message" json:"message"`
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Persists a message in an existing conversation and returns the stored record
// @Tags         messages
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        conversation_id formData int true "Conversation ID"
// @Param        sender_id formData int true "Sender user ID"
// @Param        receiver_id formData int true "Receiver user ID"
// @Param        message formData string true "Message body"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.messageUseCase.SendMessage(req.ConversationID, req.SenderID, req.ReceiverID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidConversation):
			response.Error(c, http.StatusBadRequest, "Invalid conversation_id")
		case errors.Is(err, usecase.ErrInvalidSender):
			response.Error(c, http.StatusBadRequest, "Invalid sender_id")
		case errors.Is(err, usecase.ErrInvalidReceiver):
			response.Error(c, http.StatusBadRequest, "Invalid receiver_id")
		case errors.Is(err, usecase.ErrEmptyMessage):
			response.Error(c, http.StatusBadRequest, "Message cannot be empty")
		case errors.Is(err, usecase.ErrConversationNotFound):
			response.Error(c, http.StatusNotFound, "Conversation not found")
		default:
			// Raw detail stays in the server log only
			h.logger.Error("Failed to send message in conversation %d: %v", req.ConversationID, err)
			response.Error(c, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	response.Success(c, gin.H{
		"message_id":      message.ID,
		"conversation_id": message.ConversationID,
		"message":         "Message sent successfully",
		"data":            message,
	})
}
