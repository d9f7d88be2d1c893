package repositories

import (
	"errors"
	"time"

	"tunzacare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	CreateUser(db *gorm.DB, user *models.User) error
	FindUserByID(db *gorm.DB, id string) (*models.User, error)
	FindUserByEmail(db *gorm.DB, email string) (*models.User, error)
	UpdateLastLogin(db *gorm.DB, id string) error
	SetUserActive(db *gorm.DB, id string, active bool) error

	CountUsers(db *gorm.DB) (int64, error)
	CountUsersByRole(db *gorm.DB, role models.UserRole) (int64, error)
	FindRecentUsers(db *gorm.DB, limit int) ([]models.User, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) FindUserByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("CaregiverProfile").Preload("ClientProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdateLastLogin(db *gorm.DB, id string) error {
	return db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

func (r *UserRepositoryImpl) SetUserActive(db *gorm.DB, id string, active bool) error {
	result := db.Model(&models.User{}).Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CountUsers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountUsersByRole(db *gorm.DB, role models.UserRole) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) FindRecentUsers(db *gorm.DB, limit int) ([]models.User, error) {
	var users []models.User
	err := db.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}
