package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glowdesk/middleware"
	"glowdesk/services/onboarding"
)

// OnboardingHandler exposes the signup wizard endpoints.
type OnboardingHandler struct {
	Service onboarding.OnboardingService
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(svc onboarding.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{Service: svc}
}

// StatusHandler returns the current flow state and resume step.
func (h *OnboardingHandler) StatusHandler(c *gin.Context) {
	state, err := h.Service.Status(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load onboarding status"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// EmailHandler records the email address (step 1).
func (h *OnboardingHandler) EmailHandler(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.Service.SubmitEmail(c.Request.Context(), middleware.ProfileID(c), input.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// ConfirmEmailHandler marks the email address confirmed.
func (h *OnboardingHandler) ConfirmEmailHandler(c *gin.Context) {
	state, err := h.Service.ConfirmEmail(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// PhoneHandler validates and records the phone number (step 2).
func (h *OnboardingHandler) PhoneHandler(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.Service.SubmitPhone(c.Request.Context(), middleware.ProfileID(c), input.Phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// VerifyPhoneHandler marks the phone number verified.
func (h *OnboardingHandler) VerifyPhoneHandler(c *gin.Context) {
	state, err := h.Service.VerifyPhone(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// PersonalDetailsHandler records first and last name (step 3).
func (h *OnboardingHandler) PersonalDetailsHandler(c *gin.Context) {
	var input struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.Service.SubmitPersonalDetails(c.Request.Context(), middleware.ProfileID(c), input.FirstName, input.LastName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// BusinessHandler creates the business (step 4). A skipped step still
// persists an empty business record so the flow resumes past it.
func (h *OnboardingHandler) BusinessHandler(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Skip    bool   `json:"skip"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.Service.SubmitBusiness(c.Request.Context(), middleware.ProfileID(c), input.Name, input.Phone, input.Address, input.Skip)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}
