package dto

type VerificationDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=verified rejected"`
	Reason   string `json:"reason" validate:"omitempty,max=1000"`
}

type PendingVerificationsResponse struct {
	Profiles []CaregiverProfileResponse `json:"profiles"`
	Total    int                        `json:"total"`
}

type PlatformStatsResponse struct {
	TotalUsers           int64   `json:"total_users"`
	TotalClients         int64   `json:"total_clients"`
	TotalCaregivers      int64   `json:"total_caregivers"`
	PendingVerifications int64   `json:"pending_verifications"`
	ActiveSubscriptions  int64   `json:"active_subscriptions"`
	TotalReviews         int64   `json:"total_reviews"`
	TotalBookings        int64   `json:"total_bookings"`
	TotalRevenue         float64 `json:"total_revenue"`
}

type SetUserActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type RecentActivityResponse struct {
	Users   []UserDTO        `json:"users"`
	Reviews []ReviewResponse `json:"reviews"`
}

type AdminSubscriptionEntry struct {
	SubscriptionResponse
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
}

type AdminSubscriptionsResponse struct {
	Subscriptions []AdminSubscriptionEntry `json:"subscriptions"`
	Total         int                      `json:"total"`
}
