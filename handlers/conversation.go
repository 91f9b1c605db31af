package handlers

import (
	"io"
	"net/http"

	"tutorlink/middleware"
	conversationSvc "tutorlink/services/conversation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConversationHandler serves the messaging endpoints, including the live
// server-sent-events stream.
type ConversationHandler struct {
	Service conversationSvc.ConversationService
}

func NewConversationHandler(svc conversationSvc.ConversationService) *ConversationHandler {
	return &ConversationHandler{Service: svc}
}

// ListConversationsHandler returns the caller's conversations, most recently
// active first.
func (h *ConversationHandler) ListConversationsHandler(c *gin.Context) {
	logger := getLogger(c)

	conversations, err := h.Service.ListConversations(middleware.ProfileID(c))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// GetThreadHandler returns a booking's full ordered message history.
func (h *ConversationHandler) GetThreadHandler(c *gin.Context) {
	logger := getLogger(c)

	messages, err := h.Service.GetThread(middleware.ProfileID(c), c.Param("bookingID"))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessageHandler appends a message to a booking's thread.
func (h *ConversationHandler) SendMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	m, err := h.Service.SendMessage(middleware.ProfileID(c), c.Param("bookingID"), req.Content)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// StreamMessagesHandler pushes new messages of a booking to the client as
// server-sent events until the client disconnects.
func (h *ConversationHandler) StreamMessagesHandler(c *gin.Context) {
	logger := getLogger(c)

	feed, err := h.Service.Subscribe(c.Request.Context(), middleware.ProfileID(c), c.Param("bookingID"))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case m, ok := <-feed:
			if !ok {
				return false
			}
			c.SSEvent("message", m)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
