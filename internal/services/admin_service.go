package services

import (
	"context"
	"time"

	"tunzacare_backend/internal/email"
	"tunzacare_backend/internal/logger"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AdminService interface {
	ListPendingVerifications(ctx context.Context, db *gorm.DB) (*dto.PendingVerificationsResponse, error)

	// DecideVerification sets the profile's verification status and
	// notifies the caregiver by email. Rejection does not deactivate the
	// account; the caregiver may fix their profile and wait for a new
	// decision.
	DecideVerification(ctx context.Context, db *gorm.DB, profileID string, req dto.VerificationDecisionRequest) (*dto.CaregiverProfileResponse, error)
	SetUserActive(ctx context.Context, db *gorm.DB, userID string, active bool) error
	PlatformStats(ctx context.Context, db *gorm.DB) (*dto.PlatformStatsResponse, error)
	RecentActivity(ctx context.Context, db *gorm.DB, limit int) (*dto.RecentActivityResponse, error)
	ListSubscriptions(ctx context.Context, db *gorm.DB, limit int) (*dto.AdminSubscriptionsResponse, error)
}

type adminService struct {
	userRepo         repositories.UserRepository
	caregiverRepo    repositories.CaregiverRepository
	reviewRepo       repositories.ReviewRepository
	subscriptionRepo repositories.SubscriptionRepository
	bookingRepo      repositories.BookingRepository
	mailer           email.Provider
	now              func() time.Time
}

func NewAdminService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	reviewRepo repositories.ReviewRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	bookingRepo repositories.BookingRepository,
	mailer email.Provider,
) AdminService {
	return &adminService{
		userRepo:         userRepo,
		caregiverRepo:    caregiverRepo,
		reviewRepo:       reviewRepo,
		subscriptionRepo: subscriptionRepo,
		bookingRepo:      bookingRepo,
		mailer:           mailer,
		now:              time.Now,
	}
}

func (s *adminService) ListPendingVerifications(ctx context.Context, db *gorm.DB) (*dto.PendingVerificationsResponse, error) {
	profiles, err := s.caregiverRepo.FindPendingVerification(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.CaregiverProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, NewCaregiverProfileResponse(&profiles[i]))
	}
	return &dto.PendingVerificationsResponse{Profiles: out, Total: len(out)}, nil
}

func (s *adminService) DecideVerification(ctx context.Context, db *gorm.DB, profileID string, req dto.VerificationDecisionRequest) (*dto.CaregiverProfileResponse, error) {
	status := models.VerificationStatus(req.Decision)
	if status != models.VerificationStatusVerified && status != models.VerificationStatusRejected {
		return nil, apperrors.NewBadRequestError("Decision must be verified or rejected")
	}

	profile, err := s.caregiverRepo.FindProfileByID(db, profileID)
	if err != nil {
		if err == repositories.ErrCaregiverNotFound {
			return nil, apperrors.ErrCaregiverNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.caregiverRepo.SetVerificationStatus(db, profile.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	profile.VerificationStatus = status

	if profile.User.ID != "" {
		err := s.mailer.SendVerificationDecision(
			profile.User.Email, profile.User.FirstName, string(status), req.Reason)
		if err != nil {
			logger.CtxWarn(ctx, "verification email failed",
				"profile_id", profile.ID, "error", err)
		}
	}

	logger.CtxInfo(ctx, "verification decided",
		"profile_id", profile.ID, "decision", status)
	resp := NewCaregiverProfileResponse(profile)
	return &resp, nil
}

func (s *adminService) SetUserActive(ctx context.Context, db *gorm.DB, userID string, active bool) error {
	if err := s.userRepo.SetUserActive(db, userID, active); err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "user active flag changed", "user_id", userID, "is_active", active)
	return nil
}

func (s *adminService) PlatformStats(ctx context.Context, db *gorm.DB) (*dto.PlatformStatsResponse, error) {
	stats := &dto.PlatformStatsResponse{}
	var err error

	if stats.TotalUsers, err = s.userRepo.CountUsers(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalClients, err = s.userRepo.CountUsersByRole(db, models.UserRoleClient); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalCaregivers, err = s.userRepo.CountUsersByRole(db, models.UserRoleCaregiver); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingVerifications, err = s.caregiverRepo.CountPendingVerification(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveSubscriptions, err = s.subscriptionRepo.CountActiveSubscriptions(db, s.now()); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalReviews, err = s.reviewRepo.CountAllReviews(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalBookings, err = s.bookingRepo.CountBookings(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalRevenue, err = s.subscriptionRepo.SumCompletedPayments(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *adminService) RecentActivity(ctx context.Context, db *gorm.DB, limit int) (*dto.RecentActivityResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	users, err := s.userRepo.FindRecentUsers(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	reviews, err := s.reviewRepo.FindRecentReviews(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.RecentActivityResponse{
		Users:   make([]dto.UserDTO, 0, len(users)),
		Reviews: make([]dto.ReviewResponse, 0, len(reviews)),
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserDTO(&users[i]))
	}
	for i := range reviews {
		resp.Reviews = append(resp.Reviews, newReviewResponse(&reviews[i]))
	}
	return resp, nil
}

func (s *adminService) ListSubscriptions(ctx context.Context, db *gorm.DB, limit int) (*dto.AdminSubscriptionsResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	subs, err := s.subscriptionRepo.FindRecentSubscriptions(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.AdminSubscriptionEntry, 0, len(subs))
	for i := range subs {
		out = append(out, dto.AdminSubscriptionEntry{
			SubscriptionResponse: dto.NewSubscriptionResponse(&subs[i]),
			UserID:               subs[i].UserID,
			UserEmail:            subs[i].User.Email,
		})
	}
	return &dto.AdminSubscriptionsResponse{Subscriptions: out, Total: len(out)}, nil
}
