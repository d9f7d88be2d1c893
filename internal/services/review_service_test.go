package services

import (
	"context"
	"sync"
	"testing"

	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture() (*fakeReviewRepo, *fakeCaregiverRepo, ReviewService) {
	reviewRepo := &fakeReviewRepo{}
	caregiverRepo := newFakeCaregiverRepo()
	svc := NewReviewService(reviewRepo, caregiverRepo, &fakeTxRunner{})
	return reviewRepo, caregiverRepo, svc
}

func seedCaregiver(repo *fakeCaregiverRepo, id string) {
	repo.put(&models.CaregiverProfile{
		BaseModel:          models.BaseModel{ID: id},
		UserID:             "user-" + id,
		VerificationStatus: models.VerificationStatusVerified,
		SubscriptionStatus: models.SubscriptionStatusActive,
		IsActive:           true,
	})
}

func TestSubmitReviewUpdatesAggregates(t *testing.T) {
	_, caregiverRepo, svc := newReviewFixture()
	seedCaregiver(caregiverRepo, "cg-1")
	ctx := context.Background()

	resp, err := svc.SubmitReview(ctx, nil, "client-1", dto.SubmitReviewRequest{
		CaregiverID: "cg-1", Rating: 5, Comment: "excellent",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, resp.CaregiverRating)
	assert.Equal(t, 1, resp.TotalReviews)

	resp, err = svc.SubmitReview(ctx, nil, "client-2", dto.SubmitReviewRequest{
		CaregiverID: "cg-1", Rating: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, resp.CaregiverRating)
	assert.Equal(t, 2, resp.TotalReviews)

	profile := caregiverRepo.get("cg-1")
	assert.Equal(t, 4.5, profile.Rating)
	assert.Equal(t, 2, profile.TotalReviews)
}

func TestSubmitReviewRoundsToTwoDecimals(t *testing.T) {
	_, caregiverRepo, svc := newReviewFixture()
	seedCaregiver(caregiverRepo, "cg-1")
	ctx := context.Background()

	// 4, 4, 5 -> mean 4.333... -> 4.33
	for _, rating := range []int{4, 4, 5} {
		_, err := svc.SubmitReview(ctx, nil, "client-1", dto.SubmitReviewRequest{
			CaregiverID: "cg-1", Rating: rating,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 4.33, caregiverRepo.get("cg-1").Rating)

	// add 5, 5 -> mean 4.6 -> 4.6
	for _, rating := range []int{5, 5} {
		_, err := svc.SubmitReview(ctx, nil, "client-1", dto.SubmitReviewRequest{
			CaregiverID: "cg-1", Rating: rating,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 4.6, caregiverRepo.get("cg-1").Rating)
	assert.Equal(t, 5, caregiverRepo.get("cg-1").TotalReviews)
}

func TestRoundRatingHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, roundRating(3.0))
	assert.Equal(t, 4.67, roundRating(14.0/3.0))
	assert.Equal(t, 4.33, roundRating(13.0/3.0))
	assert.Equal(t, 4.5, roundRating(4.5))
	assert.Equal(t, 0.0, roundRating(0))
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	reviewRepo, caregiverRepo, svc := newReviewFixture()
	seedCaregiver(caregiverRepo, "cg-1")
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.SubmitReview(ctx, nil, "client-1", dto.SubmitReviewRequest{
			CaregiverID: "cg-1", Rating: rating,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidReviewRating)
	}

	// Nothing was written and the aggregates are untouched.
	count, _ := reviewRepo.CountAllReviews(nil)
	assert.Zero(t, count)
	profile := caregiverRepo.get("cg-1")
	assert.Equal(t, 0.0, profile.Rating)
	assert.Equal(t, 0, profile.TotalReviews)
}

func TestSubmitReviewUnknownCaregiver(t *testing.T) {
	_, _, svc := newReviewFixture()

	_, err := svc.SubmitReview(context.Background(), nil, "client-1", dto.SubmitReviewRequest{
		CaregiverID: "missing", Rating: 4,
	})
	assert.ErrorIs(t, err, apperrors.ErrCaregiverNotFound)
}

func TestSubmitReviewDeactivatedCaregiver(t *testing.T) {
	reviewRepo, caregiverRepo, svc := newReviewFixture()
	caregiverRepo.put(&models.CaregiverProfile{
		BaseModel:          models.BaseModel{ID: "cg-1"},
		UserID:             "user-cg-1",
		VerificationStatus: models.VerificationStatusVerified,
		SubscriptionStatus: models.SubscriptionStatusActive,
		IsActive:           false,
		Rating:             4.5,
		TotalReviews:       2,
	})

	_, err := svc.SubmitReview(context.Background(), nil, "client-1", dto.SubmitReviewRequest{
		CaregiverID: "cg-1", Rating: 5,
	})
	assert.ErrorIs(t, err, apperrors.ErrCaregiverNotFound)

	// Nothing written, aggregates untouched.
	assert.Empty(t, reviewRepo.reviews)
	profile := caregiverRepo.get("cg-1")
	assert.Equal(t, 4.5, profile.Rating)
	assert.Equal(t, 2, profile.TotalReviews)
}

func TestSubmitReviewRepeatReviewsFromSameClient(t *testing.T) {
	_, caregiverRepo, svc := newReviewFixture()
	seedCaregiver(caregiverRepo, "cg-1")
	ctx := context.Background()

	// The same client may review the same caregiver more than once; every
	// submission counts toward the aggregate.
	for _, rating := range []int{2, 4} {
		_, err := svc.SubmitReview(ctx, nil, "client-1", dto.SubmitReviewRequest{
			CaregiverID: "cg-1", Rating: rating,
		})
		require.NoError(t, err)
	}
	profile := caregiverRepo.get("cg-1")
	assert.Equal(t, 3.0, profile.Rating)
	assert.Equal(t, 2, profile.TotalReviews)
}

func TestSubmitReviewConcurrent(t *testing.T) {
	_, caregiverRepo, svc := newReviewFixture()
	seedCaregiver(caregiverRepo, "cg-1")
	ctx := context.Background()

	ratings := []int{5, 1}
	var wg sync.WaitGroup
	for _, rating := range ratings {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			_, err := svc.SubmitReview(ctx, nil, "client-x", dto.SubmitReviewRequest{
				CaregiverID: "cg-1", Rating: r,
			})
			assert.NoError(t, err)
		}(rating)
	}
	wg.Wait()

	// Whatever the interleaving, the final aggregate reflects both reviews.
	profile := caregiverRepo.get("cg-1")
	assert.Equal(t, 3.0, profile.Rating)
	assert.Equal(t, 2, profile.TotalReviews)
}

func TestListCaregiverReviews(t *testing.T) {
	_, caregiverRepo, svc := newReviewFixture()
	seedCaregiver(caregiverRepo, "cg-1")
	ctx := context.Background()

	for _, rating := range []int{5, 4, 3} {
		_, err := svc.SubmitReview(ctx, nil, "client-1", dto.SubmitReviewRequest{
			CaregiverID: "cg-1", Rating: rating,
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListCaregiverReviews(ctx, nil, "cg-1", 1, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 2)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, 1, resp.Page)

	_, err = svc.ListCaregiverReviews(ctx, nil, "missing", 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrCaregiverNotFound)
}
