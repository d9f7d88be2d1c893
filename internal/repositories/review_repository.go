package repositories

import (
	"tunzacare_backend/internal/models"

	"gorm.io/gorm"
)

// RatingAggregate is the result of a full rescan of a caregiver's verified
// reviews. Average is raw (unrounded); rounding happens at the service layer
// just before the mirror write.
type RatingAggregate struct {
	Average float64
	Count   int64
}

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error

	// AggregateVerified rescans every verified review for the caregiver.
	// Callers that feed the result into the profile mirror must hold the
	// caregiver row lock in the same transaction.
	AggregateVerified(db *gorm.DB, caregiverID string) (RatingAggregate, error)

	FindVerifiedByCaregiver(db *gorm.DB, caregiverID string, limit, offset int) ([]models.Review, error)
	CountVerifiedByCaregiver(db *gorm.DB, caregiverID string) (int64, error)
	FindRecentReviews(db *gorm.DB, limit int) ([]models.Review, error)
	CountAllReviews(db *gorm.DB) (int64, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) AggregateVerified(db *gorm.DB, caregiverID string) (RatingAggregate, error) {
	var agg RatingAggregate
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("caregiver_id = ? AND is_verified = ?", caregiverID, true).
		Scan(&agg).Error
	return agg, err
}

func (r *ReviewRepositoryImpl) FindVerifiedByCaregiver(db *gorm.DB, caregiverID string, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Client").
		Where("caregiver_id = ? AND is_verified = ?", caregiverID, true).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) CountVerifiedByCaregiver(db *gorm.DB, caregiverID string) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).
		Where("caregiver_id = ? AND is_verified = ?", caregiverID, true).
		Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) FindRecentReviews(db *gorm.DB, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Client").Preload("Caregiver").
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) CountAllReviews(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Count(&count).Error
	return count, err
}
