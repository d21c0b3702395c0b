package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigpay/gigpay-api/internal/models"
)

// UserHandler exposes user profile operations.
type UserHandler struct {
	common *CommonServices
}

func NewUserHandler(common *CommonServices) *UserHandler {
	return &UserHandler{common: common}
}

// SaveProfileRequest represents the request body for creating or updating a
// profile
type SaveProfileRequest struct {
	FarcasterID   string   `json:"farcaster_id" binding:"required"`
	WalletAddress string   `json:"wallet_address,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Location      string   `json:"location,omitempty"`
	MinRate       float64  `json:"min_rate,omitempty"`
	MaxRate       float64  `json:"max_rate,omitempty"`
	WorkType      string   `json:"work_type,omitempty" binding:"omitempty,oneof=remote onsite hybrid any"`
	Availability  string   `json:"availability,omitempty" binding:"omitempty,oneof=full-time part-time contract any"`

	EmailAlerts            bool   `json:"email_alerts,omitempty"`
	PushNotifications      bool   `json:"push_notifications,omitempty"`
	FarcasterNotifications bool   `json:"farcaster_notifications,omitempty"`
	AlertFrequency         string `json:"alert_frequency,omitempty" binding:"omitempty,oneof=immediate daily weekly"`
}

// SaveProfile handles PUT /users/:farcaster_id.
func (h *UserHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.FarcasterID != c.Param("farcaster_id") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "farcaster_id mismatch"})
		return
	}

	user := &models.User{
		FarcasterID:            req.FarcasterID,
		WalletAddress:          req.WalletAddress,
		Skills:                 req.Skills,
		Location:               req.Location,
		MinRate:                req.MinRate,
		MaxRate:                req.MaxRate,
		WorkType:               req.WorkType,
		Availability:           req.Availability,
		EmailAlerts:            req.EmailAlerts,
		PushNotifications:      req.PushNotifications,
		FarcasterNotifications: req.FarcasterNotifications,
		AlertFrequency:         req.AlertFrequency,
	}

	if err := h.common.Users.SaveProfile(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetProfile handles GET /users/:farcaster_id.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.common.Users.GetProfile(c.Request.Context(), c.Param("farcaster_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
