package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gigpay/gigpay-api/internal/database"
	"github.com/gigpay/gigpay-api/internal/logger"
	"github.com/gigpay/gigpay-api/internal/models"
)

// ApplicationService tracks a user's gig applications.
type ApplicationService struct {
	store  database.Store
	logger *zap.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(store database.Store) *ApplicationService {
	return &ApplicationService{
		store:  store,
		logger: logger.Log,
	}
}

// CreateApplication records a new application for an existing user and gig.
func (s *ApplicationService) CreateApplication(ctx context.Context, app *models.Application) error {
	user, err := s.store.GetUser(ctx, app.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s not found", app.UserID)
	}

	gig, err := s.store.GetGig(ctx, app.GigID)
	if err != nil {
		return fmt.Errorf("failed to load gig: %w", err)
	}
	if gig == nil {
		return fmt.Errorf("gig %s not found", app.GigID)
	}

	if app.Status == "" {
		app.Status = models.ApplicationStatusApplied
	}
	if !isValidStatus(app.Status) {
		return fmt.Errorf("invalid application status: %s", app.Status)
	}
	if app.ApplicationDate.IsZero() {
		app.ApplicationDate = time.Now()
	}

	if err := s.store.CreateApplication(ctx, app); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	s.logger.Info("Application created",
		zap.String("application_id", app.ID.String()),
		zap.String("user_id", app.UserID),
		zap.String("gig_id", app.GigID.String()))
	return nil
}

// GetApplication retrieves an application by id.
func (s *ApplicationService) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return s.store.GetApplication(ctx, id)
}

// ListApplications retrieves a user's applications, newest first.
func (s *ApplicationService) ListApplications(ctx context.Context, userID string) ([]models.Application, error) {
	return s.store.ListApplicationsByUser(ctx, userID)
}

// UpdateStatus transitions an application to a new status.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, notes string) error {
	if !isValidStatus(status) {
		return fmt.Errorf("invalid application status: %s", status)
	}
	return s.store.UpdateApplicationStatus(ctx, id, status, notes)
}

func isValidStatus(status models.ApplicationStatus) bool {
	for _, valid := range models.ValidApplicationStatuses {
		if status == valid {
			return true
		}
	}
	return false
}
