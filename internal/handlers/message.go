package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/internal/handlers/dto"
	"github.com/averyld/teamtalk/internal/middleware"
	"github.com/averyld/teamtalk/internal/services"
)

type MessageHandler struct {
	messaging *services.MessagingService
}

func NewMessageHandler(messaging *services.MessagingService) *MessageHandler {
	return &MessageHandler{messaging: messaging}
}

// Send posts a message to a channel.
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messageID, err := h.messaging.Send(middleware.Token(c), req.ChannelID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message_id": messageID})
}

// SendDM posts a message to a DM.
func (h *MessageHandler) SendDM(c *gin.Context) {
	var req dto.SendDMMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messageID, err := h.messaging.Send(middleware.Token(c), req.DMID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message_id": messageID})
}

// Edit replaces a message's text; an empty replacement deletes the message.
func (h *MessageHandler) Edit(c *gin.Context) {
	var req dto.EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.messaging.Edit(middleware.Token(c), req.MessageID, req.Message); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Remove deletes a message.
func (h *MessageHandler) Remove(c *gin.Context) {
	var req dto.RemoveMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.messaging.Remove(middleware.Token(c), req.MessageID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Share resends an existing message to another channel or DM.
func (h *MessageHandler) Share(c *gin.Context) {
	var req dto.ShareMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messageID, err := h.messaging.Share(middleware.Token(c), req.OgMessageID, req.Message, req.ChannelID, req.DMID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shared_message_id": messageID})
}

// Search returns every message visible to the caller that contains the query.
func (h *MessageHandler) Search(c *gin.Context) {
	messages, err := h.messaging.Search(middleware.Token(c), c.Query("query_str"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
