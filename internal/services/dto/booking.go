package dto

import "time"

type CreateBookingRequest struct {
	CaregiverID   string `json:"caregiver_id" validate:"required,uuid4"`
	ServiceType   string `json:"service_type" validate:"required,max=50"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	DurationHours int    `json:"duration_hours" validate:"required,min=1,max=24"`
	Notes         string `json:"notes" validate:"omitempty,max=2000"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	CaregiverID   string    `json:"caregiver_id"`
	ServiceType   string    `json:"service_type"`
	StartDate     time.Time `json:"start_date"`
	DurationHours int       `json:"duration_hours"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
