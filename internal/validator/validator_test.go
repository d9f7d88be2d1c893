package validator

import (
	"testing"

	"tunzacare_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidation(t *testing.T) {
	v := New()

	valid := dto.RegisterRequest{
		FirstName: "Amina",
		LastName:  "Otieno",
		Email:     "amina@example.com",
		Phone:     "0712345678",
		IDNumber:  "12345678",
		Password:  "longenough",
		Role:      "caregiver",
		Location:  "Westlands",
		County:    "Nairobi",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := valid
	invalid.Email = "not-an-email"
	invalid.Role = "superuser"
	err := v.Validate(invalid)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "role")

	// Location and county are caregiver-only signup fields.
	noLocation := valid
	noLocation.Location = ""
	noLocation.County = ""
	err = v.Validate(noLocation)
	require.Error(t, err)
	vErr, ok = err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "location")
	assert.Contains(t, vErr.Errors, "county")

	client := noLocation
	client.Role = "client"
	assert.NoError(t, v.Validate(client))
}

func TestSubmitReviewRequestValidation(t *testing.T) {
	v := New()

	valid := dto.SubmitReviewRequest{
		CaregiverID: "0c3f4e18-3c86-4b5e-9f2a-7d1b2c3d4e5f",
		Rating:      4,
	}
	assert.NoError(t, v.Validate(valid))

	for _, rating := range []int{0, 6} {
		bad := valid
		bad.Rating = rating
		err := v.Validate(bad)
		require.Error(t, err, "rating %d should fail", rating)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "rating")
	}

	bad := valid
	bad.CaregiverID = "not-a-uuid"
	assert.Error(t, v.Validate(bad))
}

func TestActivateSubscriptionRequestValidation(t *testing.T) {
	v := New()

	for _, plan := range []string{"monthly", "quarterly", "yearly"} {
		assert.NoError(t, v.Validate(dto.ActivateSubscriptionRequest{PlanType: plan}))
	}

	err := v.Validate(dto.ActivateSubscriptionRequest{PlanType: "weekly"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be one of: monthly, quarterly, yearly", vErr.Errors["plan_type"])

	assert.Error(t, v.Validate(dto.ActivateSubscriptionRequest{
		PlanType: "monthly", PaymentMethod: "cash",
	}))
}

func TestCreateBookingRequestValidation(t *testing.T) {
	v := New()

	valid := dto.CreateBookingRequest{
		CaregiverID:   "0c3f4e18-3c86-4b5e-9f2a-7d1b2c3d4e5f",
		ServiceType:   "childcare",
		StartDate:     "2026-09-15",
		DurationHours: 8,
	}
	assert.NoError(t, v.Validate(valid))

	bad := valid
	bad.DurationHours = 25
	assert.Error(t, v.Validate(bad))

	bad = valid
	bad.StartDate = "15/09/2026"
	assert.Error(t, v.Validate(bad))
}

func TestDiscoverCaregiversRequestValidation(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(dto.DiscoverCaregiversRequest{}))
	assert.NoError(t, v.Validate(dto.DiscoverCaregiversRequest{
		Specialization: "elderly",
		Availability:   "on_call",
		MinRating:      4.5,
	}))

	assert.Error(t, v.Validate(dto.DiscoverCaregiversRequest{Specialization: "plumbing"}))
	assert.Error(t, v.Validate(dto.DiscoverCaregiversRequest{MinRating: 5.5}))
	assert.Error(t, v.Validate(dto.DiscoverCaregiversRequest{Availability: "weekends"}))
}
