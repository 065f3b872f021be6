package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/internal/handlers/dto"
	"github.com/averyld/teamtalk/internal/middleware"
	"github.com/averyld/teamtalk/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new account and returns its first session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, userID, err := h.auth.Register(req.Email, req.Password, req.NameFirst, req.NameLast)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, AuthUserID: userID})
}

// Login opens a new session alongside any existing ones.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, userID, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, AuthUserID: userID})
}

// Logout invalidates the session named by the token. An already-invalid token
// is not an error, the response just reports is_success false.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"is_success": h.auth.Logout(middleware.Token(c))})
}
