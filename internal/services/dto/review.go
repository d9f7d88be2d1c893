package dto

import "time"

type SubmitReviewRequest struct {
	CaregiverID string `json:"caregiver_id" validate:"required,uuid4"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name,omitempty"`
	CaregiverID string    `json:"caregiver_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews  []ReviewResponse `json:"reviews"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// SubmitReviewResponse echoes the review plus the caregiver aggregates the
// same transaction produced.
type SubmitReviewResponse struct {
	Review          ReviewResponse `json:"review"`
	CaregiverRating float64        `json:"caregiver_rating"`
	TotalReviews    int            `json:"total_reviews"`
}
