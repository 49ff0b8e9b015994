package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowdesk/middleware"
	"glowdesk/models"
	"glowdesk/services/client"
	"glowdesk/utils"
)

// ClientHandler exposes client record endpoints.
type ClientHandler struct {
	Service client.ClientService
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(svc client.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

// CreateHandler adds a client record.
func (h *ClientHandler) CreateHandler(c *gin.Context) {
	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListHandler lists the business's clients.
func (h *ClientHandler) ListHandler(c *gin.Context) {
	clients, err := h.Service.List(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// UpdateHandler updates a client record.
func (h *ClientHandler) UpdateHandler(c *gin.Context) {
	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), middleware.BusinessID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler removes a client record.
func (h *ClientHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}

// ImportHandler bulk-imports clients from an uploaded CSV file. The
// multipart field name is "file". Bad rows are reported, not fatal.
func (h *ClientHandler) ImportHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "csv file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	report, err := h.Service.ImportCSV(c.Request.Context(), middleware.BusinessID(c), data)
	if err != nil {
		utils.GetLogger().Warn("client import rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
