package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"glowdesk/middleware"
	"glowdesk/services/appointment"
)

// AppointmentHandler exposes appointment CRUD endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateHandler books an appointment. staff_id may be omitted to leave
// the appointment unassigned.
func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	var input appointment.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.Create(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListHandler lists appointments overlapping [from, to). Query params
// from and to are RFC3339 timestamps.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC3339"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC3339"})
		return
	}

	appts, err := h.Service.ListByRange(c.Request.Context(), middleware.BusinessID(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// StatusHandler transitions an appointment's status.
func (h *AppointmentHandler) StatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// DeleteHandler removes an appointment.
func (h *AppointmentHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}
