package dto

import (
	"time"

	"tunzacare_backend/internal/models"
)

type CreateCaregiverProfileRequest struct {
	Bio             string   `json:"bio" validate:"omitempty,max=2000"`
	ExperienceYears int      `json:"experience_years" validate:"min=0,max=50"`
	Specialization  string   `json:"specialization" validate:"omitempty,is-specialization"`
	Certifications  []string `json:"certifications" validate:"omitempty,dive,max=100"`
	Languages       []string `json:"languages" validate:"omitempty,dive,max=50"`
	HourlyRate      float64  `json:"hourly_rate" validate:"min=0"`
	Availability    string   `json:"availability" validate:"omitempty,is-availability"`
	Location        string   `json:"location" validate:"required,max=100"`
	County          string   `json:"county" validate:"required,max=50"`
}

// UpdateCaregiverProfileRequest covers only self-editable fields.
// Verification, subscription and rating state have their own write paths.
type UpdateCaregiverProfileRequest struct {
	Bio             *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,min=0,max=50"`
	Specialization  *string  `json:"specialization,omitempty" validate:"omitempty,is-specialization"`
	Certifications  []string `json:"certifications,omitempty" validate:"omitempty,dive,max=100"`
	Languages       []string `json:"languages,omitempty" validate:"omitempty,dive,max=50"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty" validate:"omitempty,min=0"`
	Availability    *string  `json:"availability,omitempty" validate:"omitempty,is-availability"`
	Location        *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	County          *string  `json:"county,omitempty" validate:"omitempty,max=50"`
}

type CaregiverProfileResponse struct {
	ID                 string                    `json:"id"`
	UserID             string                    `json:"user_id"`
	FirstName          string                    `json:"first_name,omitempty"`
	LastName           string                    `json:"last_name,omitempty"`
	Bio                string                    `json:"bio"`
	ExperienceYears    int                       `json:"experience_years"`
	Specialization     models.Specialization     `json:"specialization"`
	Certifications     []string                  `json:"certifications"`
	Languages          []string                  `json:"languages"`
	HourlyRate         float64                   `json:"hourly_rate"`
	Availability       models.Availability       `json:"availability"`
	Location           string                    `json:"location"`
	County             string                    `json:"county"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	SubscriptionStatus models.SubscriptionStatus `json:"subscription_status"`
	SubscriptionExpiry *time.Time                `json:"subscription_expiry,omitempty"`
	Rating             float64                   `json:"rating"`
	TotalReviews       int                       `json:"total_reviews"`
	CreatedAt          time.Time                 `json:"created_at"`
}
