package repositories

import (
	"errors"

	"tunzacare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	CreateBooking(db *gorm.DB, booking *models.Booking) error
	FindBookingByID(db *gorm.DB, id string) (*models.Booking, error)
	FindBookingsByClient(db *gorm.DB, clientID string) ([]models.Booking, error)
	FindBookingsByCaregiver(db *gorm.DB, caregiverID string) ([]models.Booking, error)
	CountBookings(db *gorm.DB) (int64, error)
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func (r *BookingRepositoryImpl) CreateBooking(db *gorm.DB, booking *models.Booking) error {
	return db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindBookingByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	err := db.Preload("Client").Preload("Caregiver").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindBookingsByClient(db *gorm.DB, clientID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Preload("Caregiver").
		Where("client_id = ?", clientID).
		Order("start_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindBookingsByCaregiver(db *gorm.DB, caregiverID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Preload("Client").
		Where("caregiver_id = ?", caregiverID).
		Order("start_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) CountBookings(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).Count(&count).Error
	return count, err
}
