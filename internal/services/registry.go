package services

import (
	"tunzacare_backend/internal/email"
	"tunzacare_backend/internal/repositories"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	DiscoveryService    DiscoveryService
	ReviewService       ReviewService
	SubscriptionService SubscriptionService
	BookingService      BookingService
	AdminService        AdminService
	EmailService        email.Provider
}

func NewServiceContainer(mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	caregiverRepo := repositories.NewCaregiverRepository()
	reviewRepo := repositories.NewReviewRepository()
	subscriptionRepo := repositories.NewSubscriptionRepository()
	bookingRepo := repositories.NewBookingRepository()
	tx := repositories.NewTxRunner()

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, caregiverRepo, tx),
		ProfileService:      NewProfileService(caregiverRepo, userRepo),
		DiscoveryService:    NewDiscoveryService(caregiverRepo),
		ReviewService:       NewReviewService(reviewRepo, caregiverRepo, tx),
		SubscriptionService: NewSubscriptionService(subscriptionRepo, caregiverRepo, tx),
		BookingService:      NewBookingService(bookingRepo, caregiverRepo),
		AdminService: NewAdminService(
			userRepo, caregiverRepo, reviewRepo, subscriptionRepo, bookingRepo, mailer),
		EmailService: mailer,
	}
}
