package handlers

import (
	"net/http"

	"tunzacare_backend/internal/middleware"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/services"
	"tunzacare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
	profileService services.ProfileService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService, profileService services.ProfileService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
		profileService: profileService,
	}
}

func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	client := r.Group("/bookings")
	client.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleClient))
	{
		client.POST("", h.CreateBooking)
		client.GET("", h.ListMyBookings)
	}

	caregiver := r.Group("/caregiver/bookings")
	caregiver.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCaregiver))
	{
		caregiver.GET("", h.ListCaregiverBookings)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.bookingService.CreateBooking(c.Request.Context(), h.GetDB(c), clientID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.bookingService.ListClientBookings(c.Request.Context(), h.GetDB(c), clientID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListCaregiverBookings(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// Bookings reference the caregiver profile, not the account.
	profile, err := h.profileService.GetOwnCaregiverProfile(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.bookingService.ListCaregiverBookings(c.Request.Context(), h.GetDB(c), profile.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
