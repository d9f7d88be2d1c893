package services

import (
	"context"
	"math"

	"tunzacare_backend/internal/logger"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	// SubmitReview appends a verified review and recomputes the caregiver's
	// rating and review count in the same transaction, under the caregiver
	// profile row lock.
	SubmitReview(ctx context.Context, db *gorm.DB, clientID string, req dto.SubmitReviewRequest) (*dto.SubmitReviewResponse, error)
	ListCaregiverReviews(ctx context.Context, db *gorm.DB, caregiverID string, page, pageSize int) (*dto.ReviewListResponse, error)
}

type reviewService struct {
	reviewRepo    repositories.ReviewRepository
	caregiverRepo repositories.CaregiverRepository
	tx            repositories.TxRunner
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	caregiverRepo repositories.CaregiverRepository,
	tx repositories.TxRunner,
) ReviewService {
	return &reviewService{
		reviewRepo:    reviewRepo,
		caregiverRepo: caregiverRepo,
		tx:            tx,
	}
}

// roundRating rounds half-up to two decimals. math.Round is half-away-from-
// zero, which differs for negative input; ratings are never negative but the
// explicit form keeps the rule obvious.
func roundRating(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func (s *reviewService) SubmitReview(ctx context.Context, db *gorm.DB, clientID string, req dto.SubmitReviewRequest) (*dto.SubmitReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidReviewRating
	}

	var resp dto.SubmitReviewResponse

	err := s.tx.WithinTx(db, func(tx *gorm.DB) error {
		// The row lock serializes concurrent submissions per caregiver, so
		// the rescan below always sees every committed review.
		profile, err := s.caregiverRepo.FindProfileByIDForUpdate(tx, req.CaregiverID)
		if err != nil {
			if err == repositories.ErrCaregiverNotFound {
				return apperrors.ErrCaregiverNotFound
			}
			return apperrors.InternalError(err)
		}
		// A deactivated caregiver is indistinguishable from a missing one
		// to clients; their aggregates must not move.
		if !profile.IsActive {
			return apperrors.ErrCaregiverNotFound
		}

		review := &models.Review{
			ClientID:    clientID,
			CaregiverID: profile.ID,
			Rating:      req.Rating,
			Comment:     req.Comment,
			IsVerified:  true,
		}
		if err := s.reviewRepo.CreateReview(tx, review); err != nil {
			return apperrors.InternalError(err)
		}

		agg, err := s.reviewRepo.AggregateVerified(tx, profile.ID)
		if err != nil {
			return apperrors.InternalError(err)
		}

		rating := roundRating(agg.Average)
		err = s.caregiverRepo.UpdateProfileFields(tx, profile.ID, map[string]interface{}{
			"rating":        rating,
			"total_reviews": agg.Count,
		})
		if err != nil {
			return apperrors.InternalError(err)
		}

		resp = dto.SubmitReviewResponse{
			Review:          newReviewResponse(review),
			CaregiverRating: rating,
			TotalReviews:    int(agg.Count),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "review submitted",
		"caregiver_id", req.CaregiverID,
		"rating", req.Rating,
		"new_rating", resp.CaregiverRating,
		"total_reviews", resp.TotalReviews,
	)
	return &resp, nil
}

func (s *reviewService) ListCaregiverReviews(ctx context.Context, db *gorm.DB, caregiverID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	if _, err := s.caregiverRepo.FindProfileByID(db, caregiverID); err != nil {
		if err == repositories.ErrCaregiverNotFound {
			return nil, apperrors.ErrCaregiverNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	offset := (page - 1) * pageSize
	reviews, err := s.reviewRepo.FindVerifiedByCaregiver(db, caregiverID, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.reviewRepo.CountVerifiedByCaregiver(db, caregiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, newReviewResponse(&reviews[i]))
	}
	return &dto.ReviewListResponse{
		Reviews:  out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func newReviewResponse(r *models.Review) dto.ReviewResponse {
	resp := dto.ReviewResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		CaregiverID: r.CaregiverID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
	if r.Client.ID != "" {
		resp.ClientName = r.Client.FirstName + " " + r.Client.LastName
	}
	return resp
}
