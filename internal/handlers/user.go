package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/internal/handlers/dto"
	"github.com/averyld/teamtalk/internal/middleware"
	"github.com/averyld/teamtalk/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Profile returns any user's profile, removed users included.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, err := queryInt(c, "u_id")
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.users.Profile(middleware.Token(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// All returns every user's profile.
func (h *UserHandler) All(c *gin.Context) {
	users, err := h.users.All(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// SetName updates the caller's first and last name.
func (h *UserHandler) SetName(c *gin.Context) {
	var req dto.SetNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.SetName(middleware.Token(c), req.NameFirst, req.NameLast); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// SetEmail updates the caller's email address.
func (h *UserHandler) SetEmail(c *gin.Context) {
	var req dto.SetEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.SetEmail(middleware.Token(c), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// SetHandle updates the caller's handle.
func (h *UserHandler) SetHandle(c *gin.Context) {
	var req dto.SetHandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.SetHandle(middleware.Token(c), req.Handle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
