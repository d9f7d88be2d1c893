package services

import (
	"context"
	"time"

	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DiscoveryService interface {
	// FindCaregivers returns discoverable caregivers matching the optional
	// filters, best rated first. Unverified, unsubscribed or deactivated
	// profiles never appear, whatever the filters say.
	FindCaregivers(ctx context.Context, db *gorm.DB, req dto.DiscoverCaregiversRequest) (*dto.DiscoverCaregiversResponse, error)
	GetCaregiver(ctx context.Context, db *gorm.DB, caregiverID string) (*dto.CaregiverProfileResponse, error)
}

type discoveryService struct {
	caregiverRepo repositories.CaregiverRepository
	now           func() time.Time
}

func NewDiscoveryService(caregiverRepo repositories.CaregiverRepository) DiscoveryService {
	return &discoveryService{
		caregiverRepo: caregiverRepo,
		now:           time.Now,
	}
}

func (s *discoveryService) FindCaregivers(ctx context.Context, db *gorm.DB, req dto.DiscoverCaregiversRequest) (*dto.DiscoverCaregiversResponse, error) {
	criteria := repositories.CaregiverSearchCriteria{
		Specialization: req.Specialization,
		County:         req.County,
		Availability:   req.Availability,
		MinRating:      req.MinRating,
		Now:            s.now(),
	}

	profiles, err := s.caregiverRepo.SearchCaregivers(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.CaregiverProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, NewCaregiverProfileResponse(&profiles[i]))
	}
	return &dto.DiscoverCaregiversResponse{
		Caregivers: out,
		Total:      len(out),
	}, nil
}

func (s *discoveryService) GetCaregiver(ctx context.Context, db *gorm.DB, caregiverID string) (*dto.CaregiverProfileResponse, error) {
	profile, err := s.caregiverRepo.FindProfileByID(db, caregiverID)
	if err != nil {
		if err == repositories.ErrCaregiverNotFound {
			return nil, apperrors.ErrCaregiverNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := NewCaregiverProfileResponse(profile)
	return &resp, nil
}

// NewCaregiverProfileResponse maps a profile to its public representation.
func NewCaregiverProfileResponse(p *models.CaregiverProfile) dto.CaregiverProfileResponse {
	resp := dto.CaregiverProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		Bio:                p.Bio,
		ExperienceYears:    p.ExperienceYears,
		Specialization:     p.Specialization,
		Certifications:     decodeCertifications(p.Certifications),
		Languages:          []string(p.Languages),
		HourlyRate:         p.HourlyRate,
		Availability:       p.Availability,
		Location:           p.Location,
		County:             p.County,
		VerificationStatus: p.VerificationStatus,
		SubscriptionStatus: p.SubscriptionStatus,
		SubscriptionExpiry: p.SubscriptionExpiry,
		Rating:             p.Rating,
		TotalReviews:       p.TotalReviews,
		CreatedAt:          p.CreatedAt,
	}
	if p.User.ID != "" {
		resp.FirstName = p.User.FirstName
		resp.LastName = p.User.LastName
	}
	if resp.Languages == nil {
		resp.Languages = []string{}
	}
	return resp
}
