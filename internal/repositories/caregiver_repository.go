package repositories

import (
	"errors"
	"time"

	"tunzacare_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCaregiverNotFound = errors.New("caregiver profile not found")

// CaregiverSearchCriteria holds the optional discovery filters. Zero values
// mean "not set". The eligibility gate (verified, subscribed, active) is not
// part of the criteria: SearchCaregivers always applies it.
type CaregiverSearchCriteria struct {
	Specialization string
	County         string
	Availability   string
	MinRating      float64
	Now            time.Time
}

type CaregiverRepository interface {
	CreateProfile(db *gorm.DB, profile *models.CaregiverProfile) error
	FindProfileByID(db *gorm.DB, id string) (*models.CaregiverProfile, error)
	FindProfileByUserID(db *gorm.DB, userID string) (*models.CaregiverProfile, error)

	// FindProfileByIDForUpdate locks the profile row for the duration of
	// the surrounding transaction. All rating/subscription mirror writes
	// go through this lock.
	FindProfileByIDForUpdate(db *gorm.DB, id string) (*models.CaregiverProfile, error)
	FindProfileByUserIDForUpdate(db *gorm.DB, userID string) (*models.CaregiverProfile, error)

	UpdateProfileFields(db *gorm.DB, id string, fields map[string]interface{}) error
	SearchCaregivers(db *gorm.DB, criteria CaregiverSearchCriteria) ([]models.CaregiverProfile, error)

	FindPendingVerification(db *gorm.DB) ([]models.CaregiverProfile, error)
	SetVerificationStatus(db *gorm.DB, id string, status models.VerificationStatus) error
	CountPendingVerification(db *gorm.DB) (int64, error)
}

type CaregiverRepositoryImpl struct{}

func NewCaregiverRepository() CaregiverRepository {
	return &CaregiverRepositoryImpl{}
}

func (r *CaregiverRepositoryImpl) CreateProfile(db *gorm.DB, profile *models.CaregiverProfile) error {
	return db.Create(profile).Error
}

func (r *CaregiverRepositoryImpl) FindProfileByID(db *gorm.DB, id string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	err := db.Preload("User").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CaregiverRepositoryImpl) FindProfileByUserID(db *gorm.DB, userID string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CaregiverRepositoryImpl) FindProfileByIDForUpdate(db *gorm.DB, id string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CaregiverRepositoryImpl) FindProfileByUserIDForUpdate(db *gorm.DB, userID string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CaregiverRepositoryImpl) UpdateProfileFields(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.CaregiverProfile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaregiverNotFound
	}
	return nil
}

// SearchCaregivers filters the caregiver pool. The eligibility gate is
// unconditional: only verified, actively subscribed, active profiles are
// discoverable. A stored expiry in the past disqualifies the profile even
// when the status flag still says active.
func (r *CaregiverRepositoryImpl) SearchCaregivers(db *gorm.DB, criteria CaregiverSearchCriteria) ([]models.CaregiverProfile, error) {
	now := criteria.Now
	if now.IsZero() {
		now = time.Now()
	}

	query := db.Model(&models.CaregiverProfile{}).
		Preload("User").
		Where("verification_status = ?", models.VerificationStatusVerified).
		Where("subscription_status = ?", models.SubscriptionStatusActive).
		Where("is_active = ?", true).
		Where("subscription_expiry IS NULL OR subscription_expiry >= ?", now)

	if criteria.Specialization != "" {
		query = query.Where("specialization = ?", criteria.Specialization)
	}
	if criteria.County != "" {
		query = query.Where("county = ?", criteria.County)
	}
	if criteria.Availability != "" {
		query = query.Where("availability = ?", criteria.Availability)
	}
	if criteria.MinRating > 0 {
		query = query.Where("rating >= ?", criteria.MinRating)
	}

	var profiles []models.CaregiverProfile
	err := query.Order("rating DESC, created_at ASC").Find(&profiles).Error
	return profiles, err
}

func (r *CaregiverRepositoryImpl) FindPendingVerification(db *gorm.DB) ([]models.CaregiverProfile, error) {
	var profiles []models.CaregiverProfile
	err := db.Preload("User").
		Where("verification_status = ?", models.VerificationStatusPending).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *CaregiverRepositoryImpl) SetVerificationStatus(db *gorm.DB, id string, status models.VerificationStatus) error {
	result := db.Model(&models.CaregiverProfile{}).Where("id = ?", id).
		Update("verification_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaregiverNotFound
	}
	return nil
}

func (r *CaregiverRepositoryImpl) CountPendingVerification(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.CaregiverProfile{}).
		Where("verification_status = ?", models.VerificationStatusPending).
		Count(&count).Error
	return count, err
}
