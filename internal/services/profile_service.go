package services

import (
	"context"
	"encoding/json"

	"tunzacare_backend/internal/logger"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService interface {
	CreateCaregiverProfile(ctx context.Context, db *gorm.DB, userID string, req dto.CreateCaregiverProfileRequest) (*dto.CaregiverProfileResponse, error)

	// UpdateCaregiverProfile writes only the self-editable fields. The
	// verification, subscription and rating columns are owned by other
	// operations and are never included in the update set.
	UpdateCaregiverProfile(ctx context.Context, db *gorm.DB, userID string, req dto.UpdateCaregiverProfileRequest) (*dto.CaregiverProfileResponse, error)
	GetOwnCaregiverProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.CaregiverProfileResponse, error)
}

type profileService struct {
	caregiverRepo repositories.CaregiverRepository
	userRepo      repositories.UserRepository
}

func NewProfileService(
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &profileService{caregiverRepo: caregiverRepo, userRepo: userRepo}
}

func encodeCertifications(certs []string) datatypes.JSON {
	if certs == nil {
		certs = []string{}
	}
	raw, _ := json.Marshal(certs)
	return datatypes.JSON(raw)
}

func decodeCertifications(raw datatypes.JSON) []string {
	var certs []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &certs)
	}
	if certs == nil {
		certs = []string{}
	}
	return certs
}

func (s *profileService) CreateCaregiverProfile(ctx context.Context, db *gorm.DB, userID string, req dto.CreateCaregiverProfileRequest) (*dto.CaregiverProfileResponse, error) {
	user, err := s.userRepo.FindUserByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleCaregiver {
		return nil, apperrors.ErrInvalidOperation("profile", "Only caregiver accounts can create a caregiver profile")
	}

	if _, err := s.caregiverRepo.FindProfileByUserID(db, userID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil)
	} else if err != repositories.ErrCaregiverNotFound {
		return nil, apperrors.InternalError(err)
	}

	specialization := models.Specialization(req.Specialization)
	if specialization == "" {
		specialization = models.SpecializationGeneral
	}
	availability := models.Availability(req.Availability)
	if availability == "" {
		availability = models.AvailabilityFullTime
	}

	profile := &models.CaregiverProfile{
		UserID:             userID,
		Bio:                req.Bio,
		ExperienceYears:    req.ExperienceYears,
		Specialization:     specialization,
		Certifications:     encodeCertifications(req.Certifications),
		Languages:          pq.StringArray(req.Languages),
		HourlyRate:         req.HourlyRate,
		Availability:       availability,
		Location:           req.Location,
		County:             req.County,
		VerificationStatus: models.VerificationStatusPending,
		SubscriptionStatus: models.SubscriptionStatusNone,
		IsActive:           true,
	}
	if err := s.caregiverRepo.CreateProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "caregiver profile created", "user_id", userID, "profile_id", profile.ID)
	resp := NewCaregiverProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateCaregiverProfile(ctx context.Context, db *gorm.DB, userID string, req dto.UpdateCaregiverProfileRequest) (*dto.CaregiverProfileResponse, error) {
	profile, err := s.caregiverRepo.FindProfileByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrCaregiverNotFound {
			return nil, apperrors.ErrCaregiverNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	fields := map[string]interface{}{}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.ExperienceYears != nil {
		fields["experience_years"] = *req.ExperienceYears
	}
	if req.Specialization != nil {
		fields["specialization"] = models.Specialization(*req.Specialization)
	}
	if req.Certifications != nil {
		fields["certifications"] = encodeCertifications(req.Certifications)
	}
	if req.Languages != nil {
		fields["languages"] = pq.StringArray(req.Languages)
	}
	if req.HourlyRate != nil {
		fields["hourly_rate"] = *req.HourlyRate
	}
	if req.Availability != nil {
		fields["availability"] = models.Availability(*req.Availability)
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.County != nil {
		fields["county"] = *req.County
	}

	if len(fields) > 0 {
		if err := s.caregiverRepo.UpdateProfileFields(db, profile.ID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	updated, err := s.caregiverRepo.FindProfileByID(db, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "caregiver profile updated", "user_id", userID, "profile_id", profile.ID)
	resp := NewCaregiverProfileResponse(updated)
	return &resp, nil
}

func (s *profileService) GetOwnCaregiverProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.CaregiverProfileResponse, error) {
	profile, err := s.caregiverRepo.FindProfileByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrCaregiverNotFound {
			return nil, apperrors.ErrCaregiverNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := NewCaregiverProfileResponse(profile)
	return &resp, nil
}
