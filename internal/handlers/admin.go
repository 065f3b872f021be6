package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/internal/handlers/dto"
	"github.com/averyld/teamtalk/internal/middleware"
	"github.com/averyld/teamtalk/internal/services"
	"github.com/averyld/teamtalk/internal/store"
)

type AdminHandler struct {
	admin *services.AdminService
	store *store.Store
}

func NewAdminHandler(admin *services.AdminService, st *store.Store) *AdminHandler {
	return &AdminHandler{admin: admin, store: st}
}

// RemoveUser soft-deletes an account and redacts its message history.
func (h *AdminHandler) RemoveUser(c *gin.Context) {
	var req dto.RemoveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.admin.RemoveUser(middleware.Token(c), req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// ChangePermission switches a user between global owner and member.
func (h *AdminHandler) ChangePermission(c *gin.Context) {
	var req dto.ChangePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.admin.ChangePermission(middleware.Token(c), req.UserID, req.Permission); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Reset wipes the whole store back to empty.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.store.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset store"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
