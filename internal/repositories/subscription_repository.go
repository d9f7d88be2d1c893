package repositories

import (
	"errors"
	"time"

	"tunzacare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	CreateSubscription(db *gorm.DB, sub *models.Subscription) error
	FindCurrentActiveByUser(db *gorm.DB, userID string, now time.Time) (*models.Subscription, error)
	FindSubscriptionsByUser(db *gorm.DB, userID string) ([]models.Subscription, error)
	FindRecentSubscriptions(db *gorm.DB, limit int) ([]models.Subscription, error)

	// ExpireDue flips every active subscription whose end date has passed
	// to expired. Returns the affected user IDs so the caller can update
	// the caregiver profile mirrors.
	ExpireDue(db *gorm.DB, now time.Time) ([]string, error)

	CountActiveSubscriptions(db *gorm.DB, now time.Time) (int64, error)

	CreatePayment(db *gorm.DB, payment *models.Payment) error
	SumCompletedPayments(db *gorm.DB) (float64, error)
	FindPaymentsByUser(db *gorm.DB, userID string) ([]models.Payment, error)
}

type SubscriptionRepositoryImpl struct{}

func NewSubscriptionRepository() SubscriptionRepository {
	return &SubscriptionRepositoryImpl{}
}

func (r *SubscriptionRepositoryImpl) CreateSubscription(db *gorm.DB, sub *models.Subscription) error {
	return db.Create(sub).Error
}

func (r *SubscriptionRepositoryImpl) FindCurrentActiveByUser(db *gorm.DB, userID string, now time.Time) (*models.Subscription, error) {
	var sub models.Subscription
	err := db.Where("user_id = ? AND status = ? AND end_date >= ?",
		userID, models.SubscriptionStatusActive, now).
		Order("end_date DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindSubscriptionsByUser(db *gorm.DB, userID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) FindRecentSubscriptions(db *gorm.DB, limit int) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) ExpireDue(db *gorm.DB, now time.Time) ([]string, error) {
	var userIDs []string
	err := db.Model(&models.Subscription{}).
		Where("status = ? AND end_date < ?", models.SubscriptionStatusActive, now).
		Distinct().
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, nil
	}
	err = db.Model(&models.Subscription{}).
		Where("status = ? AND end_date < ?", models.SubscriptionStatusActive, now).
		Update("status", models.SubscriptionStatusExpired).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}

func (r *SubscriptionRepositoryImpl) CountActiveSubscriptions(db *gorm.DB, now time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Subscription{}).
		Where("status = ? AND end_date >= ?", models.SubscriptionStatusActive, now).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CreatePayment(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *SubscriptionRepositoryImpl) SumCompletedPayments(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", models.PaymentStatusCompleted).
		Scan(&total).Error
	return total, err
}

func (r *SubscriptionRepositoryImpl) FindPaymentsByUser(db *gorm.DB, userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
