package services

import (
	"context"
	"time"

	"tunzacare_backend/internal/logger"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BookingService interface {
	CreateBooking(ctx context.Context, db *gorm.DB, clientID string, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListClientBookings(ctx context.Context, db *gorm.DB, clientID string) (*dto.BookingListResponse, error)
	ListCaregiverBookings(ctx context.Context, db *gorm.DB, caregiverID string) (*dto.BookingListResponse, error)
}

type bookingService struct {
	bookingRepo   repositories.BookingRepository
	caregiverRepo repositories.CaregiverRepository
	now           func() time.Time
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	caregiverRepo repositories.CaregiverRepository,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		caregiverRepo: caregiverRepo,
		now:           time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, db *gorm.DB, clientID string, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if req.DurationHours < 1 || req.DurationHours > 24 {
		return nil, apperrors.ErrInvalidBookingDuration
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.ErrInvalidBookingDate
	}
	today := s.now().Truncate(24 * time.Hour)
	if startDate.Before(today) {
		return nil, apperrors.ErrInvalidBookingDate
	}

	if _, err := s.caregiverRepo.FindProfileByID(db, req.CaregiverID); err != nil {
		if err == repositories.ErrCaregiverNotFound {
			return nil, apperrors.ErrCaregiverNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	booking := &models.Booking{
		ClientID:      clientID,
		CaregiverID:   req.CaregiverID,
		ServiceType:   req.ServiceType,
		StartDate:     startDate,
		DurationHours: req.DurationHours,
		Notes:         req.Notes,
	}
	if err := s.bookingRepo.CreateBooking(db, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "booking created",
		"caregiver_id", req.CaregiverID,
		"service_type", req.ServiceType,
		"start_date", req.StartDate,
	)
	resp := newBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListClientBookings(ctx context.Context, db *gorm.DB, clientID string) (*dto.BookingListResponse, error) {
	bookings, err := s.bookingRepo.FindBookingsByClient(db, clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return newBookingListResponse(bookings), nil
}

func (s *bookingService) ListCaregiverBookings(ctx context.Context, db *gorm.DB, caregiverID string) (*dto.BookingListResponse, error) {
	bookings, err := s.bookingRepo.FindBookingsByCaregiver(db, caregiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return newBookingListResponse(bookings), nil
}

func newBookingResponse(b *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:            b.ID,
		ClientID:      b.ClientID,
		CaregiverID:   b.CaregiverID,
		ServiceType:   b.ServiceType,
		StartDate:     b.StartDate,
		DurationHours: b.DurationHours,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}

func newBookingListResponse(bookings []models.Booking) *dto.BookingListResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, newBookingResponse(&bookings[i]))
	}
	return &dto.BookingListResponse{Bookings: out, Total: len(out)}
}
