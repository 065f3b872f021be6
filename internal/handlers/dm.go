package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/internal/handlers/dto"
	"github.com/averyld/teamtalk/internal/middleware"
	"github.com/averyld/teamtalk/internal/services"
)

type DMHandler struct {
	membership *services.MembershipService
	messaging  *services.MessagingService
}

func NewDMHandler(membership *services.MembershipService, messaging *services.MessagingService) *DMHandler {
	return &DMHandler{membership: membership, messaging: messaging}
}

// Create makes a DM between the caller and the listed users. Its name is the
// comma-joined sorted handles of everyone involved.
func (h *DMHandler) Create(c *gin.Context) {
	var req dto.CreateDMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dmID, name, err := h.membership.CreateDM(middleware.Token(c), req.UserIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dm_id": dmID, "dm_name": name})
}

// List returns the DMs the caller belongs to.
func (h *DMHandler) List(c *gin.Context) {
	dms, err := h.membership.ListDMs(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dms": dms})
}

// Invite adds a user to an existing DM.
func (h *DMHandler) Invite(c *gin.Context) {
	var req dto.DMMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.membership.Invite(middleware.Token(c), req.DMID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Details returns a DM's name and members.
func (h *DMHandler) Details(c *gin.Context) {
	dmID, err := queryInt(c, "dm_id")
	if err != nil {
		respondError(c, err)
		return
	}

	details, err := h.membership.Details(middleware.Token(c), dmID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": details.Name, "members": details.AllMembers})
}

// Messages returns one page of a DM's history.
func (h *DMHandler) Messages(c *gin.Context) {
	dmID, err := queryInt(c, "dm_id")
	if err != nil {
		respondError(c, err)
		return
	}
	start, err := queryInt(c, "start")
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.messaging.Messages(middleware.Token(c), dmID, start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Leave removes the caller from a DM.
func (h *DMHandler) Leave(c *gin.Context) {
	var req dto.DMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.membership.Leave(middleware.Token(c), req.DMID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Remove hard-deletes a DM. Only its creator may do this.
func (h *DMHandler) Remove(c *gin.Context) {
	var req dto.DMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.membership.RemoveDM(middleware.Token(c), req.DMID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
