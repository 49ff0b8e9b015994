package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"glowdesk/middleware"
	"glowdesk/services/calendar"
)

// CalendarHandler exposes the day and week view projections.
type CalendarHandler struct {
	Service calendar.CalendarService
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc calendar.CalendarService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

// parseDate parses a YYYY-MM-DD query value in the server's local zone.
func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// DayViewHandler lays out one day. Query params: date (YYYY-MM-DD,
// required) and staff_ids (comma separated, optional; empty selects all
// active staff).
func (h *CalendarHandler) DayViewHandler(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var staffIDs []string
	if raw := c.Query("staff_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				staffIDs = append(staffIDs, id)
			}
		}
	}

	view, err := h.Service.DayView(c.Request.Context(), middleware.BusinessID(c), date, staffIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build day view"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// WeekViewHandler buckets one staff member's week. Query params:
// week_start (YYYY-MM-DD, required) and staff_id (required).
func (h *CalendarHandler) WeekViewHandler(c *gin.Context) {
	weekStart, err := parseDate(c.Query("week_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}
	staffID := c.Query("staff_id")
	if staffID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staff_id is required"})
		return
	}

	view, err := h.Service.WeekView(c.Request.Context(), middleware.BusinessID(c), weekStart, staffID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build week view"})
		return
	}
	c.JSON(http.StatusOK, view)
}
