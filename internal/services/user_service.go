package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gigpay/gigpay-api/internal/database"
	"github.com/gigpay/gigpay-api/internal/logger"
	"github.com/gigpay/gigpay-api/internal/models"
)

// UserService handles user profile operations.
type UserService struct {
	store  database.Store
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(store database.Store) *UserService {
	return &UserService{
		store:  store,
		logger: logger.Log,
	}
}

// SaveProfile creates or updates a user profile. Unset preference fields get
// the miniapp defaults.
func (s *UserService) SaveProfile(ctx context.Context, user *models.User) error {
	if user.FarcasterID == "" {
		return fmt.Errorf("farcaster_id is required")
	}

	if user.WorkType == "" {
		user.WorkType = "any"
	}
	if user.Availability == "" {
		user.Availability = "any"
	}
	if user.AlertFrequency == "" {
		user.AlertFrequency = "daily"
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}

	if err := s.store.UpsertUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user profile: %w", err)
	}

	s.logger.Info("User profile saved",
		zap.String("farcaster_id", user.FarcasterID),
		zap.Int("skill_count", len(user.Skills)))
	return nil
}

// GetProfile retrieves a user profile by Farcaster id. Returns (nil, nil)
// when the user does not exist.
func (s *UserService) GetProfile(ctx context.Context, farcasterID string) (*models.User, error) {
	return s.store.GetUser(ctx, farcasterID)
}
