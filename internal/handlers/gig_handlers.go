package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gigpay/gigpay-api/internal/database"
	"github.com/gigpay/gigpay-api/internal/models"
)

// GigHandler exposes gig listings and skill matching.
type GigHandler struct {
	common *CommonServices
}

func NewGigHandler(common *CommonServices) *GigHandler {
	return &GigHandler{common: common}
}

// CreateGigRequest represents the request body for creating a gig
type CreateGigRequest struct {
	ExternalID     string   `json:"external_id,omitempty"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description,omitempty"`
	Platform       string   `json:"platform,omitempty"`
	SkillsRequired []string `json:"skills_required,omitempty"`
	URL            string   `json:"url,omitempty"`
	Location       string   `json:"location,omitempty"`
	RateMin        float64  `json:"rate_min,omitempty"`
	RateMax        float64  `json:"rate_max,omitempty"`
	RateType       string   `json:"rate_type,omitempty"`
}

// ListGigs handles GET /gigs with optional platform, skill, search and limit
// query parameters.
func (h *GigHandler) ListGigs(c *gin.Context) {
	filter := gigFilterFromQuery(c)

	gigs, err := h.common.Gigs.ListGigs(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve gigs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gigs})
}

// GetGig handles GET /gigs/:id.
func (h *GigHandler) GetGig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid gig ID"})
		return
	}

	gig, err := h.common.Gigs.GetGig(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve gig"})
		return
	}
	if gig == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Gig not found"})
		return
	}

	c.JSON(http.StatusOK, gig)
}

// CreateGig handles POST /gigs.
func (h *GigHandler) CreateGig(c *gin.Context) {
	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	gig := &models.Gig{
		ExternalID:     req.ExternalID,
		Title:          req.Title,
		Description:    req.Description,
		Platform:       models.Platform(req.Platform),
		SkillsRequired: req.SkillsRequired,
		URL:            req.URL,
		Location:       req.Location,
		RateMin:        req.RateMin,
		RateMax:        req.RateMax,
		RateType:       models.RateType(req.RateType),
	}

	if err := h.common.Gigs.CreateGig(c.Request.Context(), gig); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gig)
}

// MatchGigs handles GET /users/:farcaster_id/matches, returning gigs ranked
// by skill-match score.
func (h *GigHandler) MatchGigs(c *gin.Context) {
	matches, err := h.common.Gigs.MatchGigsForUser(c.Request.Context(), c.Param("farcaster_id"), gigFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": matches})
}

func gigFilterFromQuery(c *gin.Context) database.GigFilter {
	filter := database.GigFilter{
		Platform: c.Query("platform"),
		Skill:    c.Query("skill"),
		Search:   c.Query("search"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}
