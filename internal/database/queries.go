package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gigpay/gigpay-api/internal/models"
)

// ==================== User Queries ====================

// UpsertUser creates or updates a user profile keyed by Farcaster id.
func (db *DB) UpsertUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			farcaster_id, wallet_address, skills, location, min_rate, max_rate,
			work_type, availability, email_alerts, push_notifications,
			farcaster_notifications, alert_frequency, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (farcaster_id) DO UPDATE SET
			wallet_address = EXCLUDED.wallet_address,
			skills = EXCLUDED.skills,
			location = EXCLUDED.location,
			min_rate = EXCLUDED.min_rate,
			max_rate = EXCLUDED.max_rate,
			work_type = EXCLUDED.work_type,
			availability = EXCLUDED.availability,
			email_alerts = EXCLUDED.email_alerts,
			push_notifications = EXCLUDED.push_notifications,
			farcaster_notifications = EXCLUDED.farcaster_notifications,
			alert_frequency = EXCLUDED.alert_frequency,
			updated_at = NOW()
	`
	_, err := db.ExecContext(ctx, query,
		user.FarcasterID, user.WalletAddress, user.Skills, user.Location,
		user.MinRate, user.MaxRate, user.WorkType, user.Availability,
		user.EmailAlerts, user.PushNotifications, user.FarcasterNotifications,
		user.AlertFrequency,
	)
	return err
}

// GetUser retrieves a user by Farcaster id. Returns (nil, nil) when absent.
func (db *DB) GetUser(ctx context.Context, farcasterID string) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE farcaster_id = $1`
	err := db.GetContext(ctx, &user, query, farcasterID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &user, err
}

// ==================== Gig Queries ====================

// CreateGig inserts a new gig listing.
func (db *DB) CreateGig(ctx context.Context, gig *models.Gig) error {
	if gig.ID == uuid.Nil {
		gig.ID = uuid.New()
	}
	query := `
		INSERT INTO gigs (
			id, external_id, title, description, platform, skills_required,
			url, posted_date, location, rate_min, rate_max, rate_type, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
	`
	_, err := db.ExecContext(ctx, query,
		gig.ID, gig.ExternalID, gig.Title, gig.Description, gig.Platform,
		gig.SkillsRequired, gig.URL, gig.PostedDate, gig.Location,
		gig.RateMin, gig.RateMax, gig.RateType,
	)
	return err
}

// GetGig retrieves a gig by id. Returns (nil, nil) when absent.
func (db *DB) GetGig(ctx context.Context, id uuid.UUID) (*models.Gig, error) {
	var gig models.Gig
	query := `SELECT * FROM gigs WHERE id = $1`
	err := db.GetContext(ctx, &gig, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &gig, err
}

// ListGigs retrieves gigs matching the filter, newest first.
func (db *DB) ListGigs(ctx context.Context, filter GigFilter) ([]models.Gig, error) {
	query := `SELECT * FROM gigs WHERE 1=1`
	args := []interface{}{}

	if filter.Platform != "" {
		args = append(args, filter.Platform)
		query += fmt.Sprintf(" AND platform = $%d", len(args))
	}
	if filter.Skill != "" {
		args = append(args, filter.Skill)
		query += fmt.Sprintf(" AND $%d ILIKE ANY(skills_required)", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	query += " ORDER BY posted_date DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	gigs := []models.Gig{}
	err := db.SelectContext(ctx, &gigs, query, args...)
	return gigs, err
}

// ==================== Application Queries ====================

// CreateApplication inserts a new application record.
func (db *DB) CreateApplication(ctx context.Context, app *models.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	query := `
		INSERT INTO applications (
			id, user_id, gig_id, application_date, status, notes, url, follow_up_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := db.ExecContext(ctx, query,
		app.ID, app.UserID, app.GigID, app.ApplicationDate, app.Status,
		app.Notes, app.URL, app.FollowUpDate,
	)
	return err
}

// GetApplication retrieves an application by id. Returns (nil, nil) when
// absent.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	query := `SELECT * FROM applications WHERE id = $1`
	err := db.GetContext(ctx, &app, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &app, err
}

// ListApplicationsByUser retrieves all of a user's applications, newest first.
func (db *DB) ListApplicationsByUser(ctx context.Context, userID string) ([]models.Application, error) {
	apps := []models.Application{}
	query := `
		SELECT * FROM applications
		WHERE user_id = $1
		ORDER BY application_date DESC
	`
	err := db.SelectContext(ctx, &apps, query, userID)
	return apps, err
}

// UpdateApplicationStatus transitions an application to a new status,
// optionally replacing the notes.
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, notes string) error {
	query := `
		UPDATE applications
		SET status = $2, notes = COALESCE(NULLIF($3, ''), notes)
		WHERE id = $1
	`
	result, err := db.ExecContext(ctx, query, id, status, notes)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("application %s not found", id)
	}
	return nil
}
