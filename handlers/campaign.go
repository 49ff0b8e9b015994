package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowdesk/middleware"
	"glowdesk/services/campaign"
	"glowdesk/utils"
)

// CampaignHandler exposes marketing campaign endpoints.
type CampaignHandler struct {
	Service campaign.CampaignService
}

// NewCampaignHandler creates a CampaignHandler.
func NewCampaignHandler(svc campaign.CampaignService) *CampaignHandler {
	return &CampaignHandler{Service: svc}
}

// SaveBoostHandler creates or updates a boost campaign. A conflicting
// active boost rejects with 409 and writes nothing.
func (h *CampaignHandler) SaveBoostHandler(c *gin.Context) {
	var input campaign.SaveBoostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Service.SaveBoost(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrBoostConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "another boost campaign is already active"})
		case errors.Is(err, campaign.ErrNoEnabledDays):
			c.JSON(http.StatusBadRequest, gin.H{"error": "schedule must enable at least one day"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetHandler retrieves one campaign with derived activity and metrics.
func (h *CampaignHandler) GetHandler(c *gin.Context) {
	view, err := h.Service.Get(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListHandler lists non-archived campaigns, optionally filtered by the
// subtype query param.
func (h *CampaignHandler) ListHandler(c *gin.Context) {
	views, err := h.Service.List(c.Request.Context(), middleware.BusinessID(c), c.Query("subtype"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list campaigns"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// DeactivateHandler clears a campaign's active flag.
func (h *CampaignHandler) DeactivateHandler(c *gin.Context) {
	if err := h.Service.Deactivate(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "campaign deactivated"})
}

// ArchiveHandler soft-deletes a campaign.
func (h *CampaignHandler) ArchiveHandler(c *gin.Context) {
	if err := h.Service.Archive(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "campaign archived"})
}

// TestEmailHandler queues a test email for a campaign.
func (h *CampaignHandler) TestEmailHandler(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SendTestEmail(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), input.Email); err != nil {
		utils.GetLogger().Error("test email enqueue failed", zap.String("campaignID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue test email"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "test email queued"})
}
