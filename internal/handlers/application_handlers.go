package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gigpay/gigpay-api/internal/models"
)

// ApplicationHandler exposes application tracking.
type ApplicationHandler struct {
	common *CommonServices
}

func NewApplicationHandler(common *CommonServices) *ApplicationHandler {
	return &ApplicationHandler{common: common}
}

// CreateApplicationRequest represents the request body for tracking a new
// application
type CreateApplicationRequest struct {
	UserID       string     `json:"user_id" binding:"required"`
	GigID        string     `json:"gig_id" binding:"required"`
	Notes        string     `json:"notes,omitempty"`
	URL          string     `json:"url,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
}

// UpdateApplicationStatusRequest represents the request body for a status
// transition
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes,omitempty"`
}

// CreateApplication handles POST /applications.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	gigID, err := uuid.Parse(req.GigID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid gig ID"})
		return
	}

	app := &models.Application{
		UserID:       req.UserID,
		GigID:        gigID,
		Notes:        req.Notes,
		URL:          req.URL,
		FollowUpDate: req.FollowUpDate,
	}

	if err := h.common.Applications.CreateApplication(c.Request.Context(), app); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListApplications handles GET /users/:farcaster_id/applications.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.common.Applications.ListApplications(c.Request.Context(), c.Param("farcaster_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": apps})
}

// GetApplication handles GET /applications/:id.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid application ID"})
		return
	}

	app, err := h.common.Applications.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve application"})
		return
	}
	if app == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Application not found"})
		return
	}

	c.JSON(http.StatusOK, app)
}

// UpdateStatus handles PATCH /applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid application ID"})
		return
	}

	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.common.Applications.UpdateStatus(c.Request.Context(), id, models.ApplicationStatus(req.Status), req.Notes); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
