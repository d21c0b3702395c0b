package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gigpay/gigpay-api/internal/database"
	"github.com/gigpay/gigpay-api/internal/logger"
	"github.com/gigpay/gigpay-api/internal/models"
)

// GigService handles gig listings and skill matching.
type GigService struct {
	store  database.Store
	logger *zap.Logger
}

// NewGigService creates a new gig service
func NewGigService(store database.Store) *GigService {
	return &GigService{
		store:  store,
		logger: logger.Log,
	}
}

// CreateGig validates and stores a new gig listing.
func (s *GigService) CreateGig(ctx context.Context, gig *models.Gig) error {
	if gig.Title == "" {
		return fmt.Errorf("gig title is required")
	}
	if gig.Platform == "" {
		gig.Platform = models.PlatformOther
	}
	if gig.PostedDate.IsZero() {
		gig.PostedDate = time.Now()
	}

	if err := s.store.CreateGig(ctx, gig); err != nil {
		return fmt.Errorf("failed to create gig: %w", err)
	}

	s.logger.Info("Gig created",
		zap.String("gig_id", gig.ID.String()),
		zap.String("title", gig.Title),
		zap.String("platform", string(gig.Platform)))
	return nil
}

// GetGig retrieves a gig by id.
func (s *GigService) GetGig(ctx context.Context, id uuid.UUID) (*models.Gig, error) {
	return s.store.GetGig(ctx, id)
}

// ListGigs retrieves gigs matching the filter.
func (s *GigService) ListGigs(ctx context.Context, filter database.GigFilter) ([]models.Gig, error) {
	return s.store.ListGigs(ctx, filter)
}

// MatchGigsForUser scores all gigs matching the filter against the user's
// declared skills and returns them best match first.
func (s *GigService) MatchGigsForUser(ctx context.Context, farcasterID string, filter database.GigFilter) ([]models.GigMatch, error) {
	user, err := s.store.GetUser(ctx, farcasterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", farcasterID)
	}

	gigs, err := s.store.ListGigs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list gigs: %w", err)
	}

	matches := make([]models.GigMatch, 0, len(gigs))
	for _, gig := range gigs {
		matching := MatchingSkills(user.Skills, gig.SkillsRequired)
		matches = append(matches, models.GigMatch{
			Gig:            gig,
			MatchScore:     CalculateMatchScore(user.Skills, gig.SkillsRequired),
			MatchingSkills: matching,
			MissingSkills:  MissingSkills(user.Skills, gig.SkillsRequired),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return matches, nil
}

// CalculateMatchScore returns the percentage of required skills the user
// covers, 0-100. A skill counts as covered when either string contains the
// other, case-insensitively.
func CalculateMatchScore(userSkills, gigSkills []string) int {
	if len(gigSkills) == 0 {
		return 0
	}

	matched := 0
	for _, gigSkill := range gigSkills {
		if skillCovered(userSkills, gigSkill) {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(gigSkills)) * 100))
}

// MatchingSkills returns the required skills the user covers, preserving the
// gig's original casing.
func MatchingSkills(userSkills, gigSkills []string) []string {
	matching := []string{}
	for _, gigSkill := range gigSkills {
		if skillCovered(userSkills, gigSkill) {
			matching = append(matching, gigSkill)
		}
	}
	return matching
}

// MissingSkills returns the required skills the user does not cover.
func MissingSkills(userSkills, gigSkills []string) []string {
	missing := []string{}
	for _, gigSkill := range gigSkills {
		if !skillCovered(userSkills, gigSkill) {
			missing = append(missing, gigSkill)
		}
	}
	return missing
}

func skillCovered(userSkills []string, gigSkill string) bool {
	gig := strings.ToLower(strings.TrimSpace(gigSkill))
	for _, userSkill := range userSkills {
		user := strings.ToLower(strings.TrimSpace(userSkill))
		if user == "" || gig == "" {
			continue
		}
		if strings.Contains(user, gig) || strings.Contains(gig, user) {
			return true
		}
	}
	return false
}
