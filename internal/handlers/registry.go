package handlers

import (
	"tunzacare_backend/internal/services"
	"tunzacare_backend/internal/validator"
)

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	DiscoveryHandler    *DiscoveryHandler
	ReviewHandler       *ReviewHandler
	SubscriptionHandler *SubscriptionHandler
	BookingHandler      *BookingHandler
	AdminHandler        *AdminHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.AuthService),
		ProfileHandler:      NewProfileHandler(base, svc.ProfileService),
		DiscoveryHandler:    NewDiscoveryHandler(base, svc.DiscoveryService, svc.ReviewService),
		ReviewHandler:       NewReviewHandler(base, svc.ReviewService),
		SubscriptionHandler: NewSubscriptionHandler(base, svc.SubscriptionService),
		BookingHandler:      NewBookingHandler(base, svc.BookingService, svc.ProfileService),
		AdminHandler:        NewAdminHandler(base, svc.AdminService),
	}
}
