package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/internal/handlers/dto"
	"github.com/averyld/teamtalk/internal/middleware"
	"github.com/averyld/teamtalk/internal/services"
	"github.com/averyld/teamtalk/pkg/apperrors"
)

type ChannelHandler struct {
	membership *services.MembershipService
	messaging  *services.MessagingService
}

func NewChannelHandler(membership *services.MembershipService, messaging *services.MessagingService) *ChannelHandler {
	return &ChannelHandler{membership: membership, messaging: messaging}
}

// Create makes a new channel with the caller as its only member and owner.
func (h *ChannelHandler) Create(c *gin.Context) {
	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	channelID, err := h.membership.Create(middleware.Token(c), req.Name, req.IsPublic, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"channel_id": channelID})
}

// List returns the channels the caller belongs to.
func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.membership.List(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": channels})
}

// ListAll returns every channel in the workspace.
func (h *ChannelHandler) ListAll(c *gin.Context) {
	channels, err := h.membership.ListAll(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": channels})
}

// Invite adds a user to a channel the caller belongs to.
func (h *ChannelHandler) Invite(c *gin.Context) {
	var req dto.ChannelMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.membership.Invite(middleware.Token(c), req.ChannelID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Details returns a channel's name, visibility and members.
func (h *ChannelHandler) Details(c *gin.Context) {
	channelID, err := queryInt(c, "channel_id")
	if err != nil {
		respondError(c, err)
		return
	}

	details, err := h.membership.Details(middleware.Token(c), channelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Messages returns one page of a channel's history.
func (h *ChannelHandler) Messages(c *gin.Context) {
	channelID, err := queryInt(c, "channel_id")
	if err != nil {
		respondError(c, err)
		return
	}
	start, err := queryInt(c, "start")
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.messaging.Messages(middleware.Token(c), channelID, start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Join adds the caller to a channel.
func (h *ChannelHandler) Join(c *gin.Context) {
	var req dto.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.membership.Join(middleware.Token(c), req.ChannelID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Leave removes the caller from a channel.
func (h *ChannelHandler) Leave(c *gin.Context) {
	var req dto.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.membership.Leave(middleware.Token(c), req.ChannelID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// AddOwner promotes a user to channel owner.
func (h *ChannelHandler) AddOwner(c *gin.Context) {
	var req dto.ChannelMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.membership.AddOwner(middleware.Token(c), req.ChannelID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// RemoveOwner demotes a channel owner back to plain member.
func (h *ChannelHandler) RemoveOwner(c *gin.Context) {
	var req dto.ChannelMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.membership.RemoveOwner(middleware.Token(c), req.ChannelID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func queryInt(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0, apperrors.InvalidInput(name + " must be an integer")
	}
	return value, nil
}
