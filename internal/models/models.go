package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Platform identifies the freelance marketplace a gig was sourced from.
type Platform string

const (
	PlatformUpwork     Platform = "upwork"
	PlatformFiverr     Platform = "fiverr"
	PlatformFreelancer Platform = "freelancer"
	PlatformToptal     Platform = "toptal"
	PlatformOther      Platform = "other"
)

// ApplicationStatus tracks the lifecycle of a gig application.
type ApplicationStatus string

const (
	ApplicationStatusApplied      ApplicationStatus = "applied"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusHired        ApplicationStatus = "hired"
	ApplicationStatusWithdrawn    ApplicationStatus = "withdrawn"
)

// ValidApplicationStatuses lists the accepted application status values.
var ValidApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusInterviewing,
	ApplicationStatusRejected,
	ApplicationStatusHired,
	ApplicationStatusWithdrawn,
}

// RateType describes how a gig's rate is quoted.
type RateType string

const (
	RateTypeHourly  RateType = "hourly"
	RateTypeFixed   RateType = "fixed"
	RateTypeMonthly RateType = "monthly"
)

// User is a miniapp user profile keyed by Farcaster id.
type User struct {
	FarcasterID   string         `db:"farcaster_id" json:"farcaster_id"`
	WalletAddress string         `db:"wallet_address" json:"wallet_address,omitempty"`
	Skills        pq.StringArray `db:"skills" json:"skills"`

	// Preferences
	Location     string  `db:"location" json:"location,omitempty"`
	MinRate      float64 `db:"min_rate" json:"min_rate,omitempty"`
	MaxRate      float64 `db:"max_rate" json:"max_rate,omitempty"`
	WorkType     string  `db:"work_type" json:"work_type"`
	Availability string  `db:"availability" json:"availability"`

	// Notification settings
	EmailAlerts            bool   `db:"email_alerts" json:"email_alerts"`
	PushNotifications      bool   `db:"push_notifications" json:"push_notifications"`
	FarcasterNotifications bool   `db:"farcaster_notifications" json:"farcaster_notifications"`
	AlertFrequency         string `db:"alert_frequency" json:"alert_frequency"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Gig is a freelance gig listing.
type Gig struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	ExternalID     string         `db:"external_id" json:"external_id"`
	Title          string         `db:"title" json:"title"`
	Description    string         `db:"description" json:"description"`
	Platform       Platform       `db:"platform" json:"platform"`
	SkillsRequired pq.StringArray `db:"skills_required" json:"skills_required"`
	URL            string         `db:"url" json:"url"`
	PostedDate     time.Time      `db:"posted_date" json:"posted_date"`
	Location       string         `db:"location" json:"location,omitempty"`
	RateMin        float64        `db:"rate_min" json:"rate_min,omitempty"`
	RateMax        float64        `db:"rate_max" json:"rate_max,omitempty"`
	RateType       RateType       `db:"rate_type" json:"rate_type,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// GigMatch pairs a gig with its score against a user's declared skills.
type GigMatch struct {
	Gig            Gig      `json:"gig"`
	MatchScore     int      `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

// Application records a user's application to a gig.
type Application struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	UserID          string            `db:"user_id" json:"user_id"`
	GigID           uuid.UUID         `db:"gig_id" json:"gig_id"`
	ApplicationDate time.Time         `db:"application_date" json:"application_date"`
	Status          ApplicationStatus `db:"status" json:"status"`
	Notes           string            `db:"notes" json:"notes,omitempty"`
	URL             string            `db:"url" json:"url,omitempty"`
	FollowUpDate    *time.Time        `db:"follow_up_date" json:"follow_up_date,omitempty"`
}
