package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glowdesk/middleware"
	"glowdesk/models"
	"glowdesk/services/business"
)

// BusinessHandler exposes the settings surface: the business profile,
// staff, service catalogue, opening hours, bank accounts and booking
// links.
type BusinessHandler struct {
	Service business.BusinessService
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// GetHandler returns the business profile.
func (h *BusinessHandler) GetHandler(c *gin.Context) {
	biz, err := h.Service.Get(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// UpdateHandler updates the business profile.
func (h *BusinessHandler) UpdateHandler(c *gin.Context) {
	var input models.Business
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = middleware.BusinessID(c)

	updated, err := h.Service.Update(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CreateStaffHandler adds a staff member.
func (h *BusinessHandler) CreateStaffHandler(c *gin.Context) {
	var input models.StaffMember
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateStaff(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListStaffHandler lists staff members. active=true limits to active
// members.
func (h *BusinessHandler) ListStaffHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	staff, err := h.Service.ListStaff(c.Request.Context(), middleware.BusinessID(c), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// UpdateStaffHandler updates a staff member.
func (h *BusinessHandler) UpdateStaffHandler(c *gin.Context) {
	var input models.StaffMember
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Service.UpdateStaff(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStaffHandler removes a staff member.
func (h *BusinessHandler) DeleteStaffHandler(c *gin.Context) {
	if err := h.Service.DeleteStaff(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deleted"})
}

// CreateServiceHandler adds a service to the catalogue.
func (h *BusinessHandler) CreateServiceHandler(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateService(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListServicesHandler lists the service catalogue.
func (h *BusinessHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateServiceHandler updates a catalogue service.
func (h *BusinessHandler) UpdateServiceHandler(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Service.UpdateService(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler removes a catalogue service.
func (h *BusinessHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Service.DeleteService(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// SetHoursHandler sets opening hours for one weekday.
func (h *BusinessHandler) SetHoursHandler(c *gin.Context) {
	var input models.BusinessHours
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SetHours(c.Request.Context(), middleware.BusinessID(c), input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hours saved"})
}

// ListHoursHandler lists the weekly opening hours.
func (h *BusinessHandler) ListHoursHandler(c *gin.Context) {
	hours, err := h.Service.ListHours(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list hours"})
		return
	}
	c.JSON(http.StatusOK, hours)
}

// AddBankAccountHandler adds a payout bank account after validating the
// account and routing numbers.
func (h *BusinessHandler) AddBankAccountHandler(c *gin.Context) {
	var input models.BankAccount
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.AddBankAccount(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBankAccountsHandler lists payout bank accounts.
func (h *BusinessHandler) ListBankAccountsHandler(c *gin.Context) {
	accounts, err := h.Service.ListBankAccounts(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bank accounts"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// DeleteBankAccountHandler removes a payout bank account.
func (h *BusinessHandler) DeleteBankAccountHandler(c *gin.Context) {
	if err := h.Service.DeleteBankAccount(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bank account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bank account deleted"})
}

// CreateBookingLinkHandler creates a public booking link.
func (h *BusinessHandler) CreateBookingLinkHandler(c *gin.Context) {
	var input struct {
		Slug string `json:"slug" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	link, err := h.Service.CreateBookingLink(c.Request.Context(), middleware.BusinessID(c), input.Slug)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, link)
}

// ListBookingLinksHandler lists the business's booking links.
func (h *BusinessHandler) ListBookingLinksHandler(c *gin.Context) {
	links, err := h.Service.ListBookingLinks(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list booking links"})
		return
	}
	c.JSON(http.StatusOK, links)
}

// SetBookingLinkActiveHandler toggles a booking link on or off.
func (h *BusinessHandler) SetBookingLinkActiveHandler(c *gin.Context) {
	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SetBookingLinkActive(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), *input.Active); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": *input.Active})
}
