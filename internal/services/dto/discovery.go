package dto

type DiscoverCaregiversRequest struct {
	Specialization string  `form:"specialization" validate:"omitempty,is-specialization"`
	County         string  `form:"county" validate:"omitempty,max=50"`
	Availability   string  `form:"availability" validate:"omitempty,is-availability"`
	MinRating      float64 `form:"min_rating" validate:"omitempty,min=0,max=5"`
}

type DiscoverCaregiversResponse struct {
	Caregivers []CaregiverProfileResponse `json:"caregivers"`
	Total      int                        `json:"total"`
}
