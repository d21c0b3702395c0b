package database

import (
	"context"

	"github.com/google/uuid"

	"github.com/gigpay/gigpay-api/internal/models"
)

//go:generate mockgen -source=store.go -destination=../mocks/store_mocks.go -package=mocks

// GigFilter narrows a gig listing query. Zero values match everything.
type GigFilter struct {
	Platform string
	Skill    string
	Search   string
	Limit    int
}

// Store is the persistence interface consumed by the service layer.
type Store interface {
	// Users
	UpsertUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, farcasterID string) (*models.User, error)

	// Gigs
	CreateGig(ctx context.Context, gig *models.Gig) error
	GetGig(ctx context.Context, id uuid.UUID) (*models.Gig, error)
	ListGigs(ctx context.Context, filter GigFilter) ([]models.Gig, error)

	// Applications
	CreateApplication(ctx context.Context, app *models.Application) error
	GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListApplicationsByUser(ctx context.Context, userID string) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, notes string) error
}

// Ensure DB implements the interface
var _ Store = (*DB)(nil)
