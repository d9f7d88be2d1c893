package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"tunzacare_backend/internal/logger"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/services/dto"
	"tunzacare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SubscriptionService interface {
	// ActivateSubscription records a paid subscription, mirrors its state
	// onto the caregiver profile and writes the matching payment record,
	// all in one transaction.
	ActivateSubscription(ctx context.Context, db *gorm.DB, userID string, req dto.ActivateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	CurrentSubscription(ctx context.Context, db *gorm.DB, userID string) (*dto.SubscriptionResponse, error)
	SubscriptionHistory(ctx context.Context, db *gorm.DB, userID string) (*dto.SubscriptionHistoryResponse, error)
	PaymentHistory(ctx context.Context, db *gorm.DB, userID string) (*dto.PaymentHistoryResponse, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	caregiverRepo    repositories.CaregiverRepository
	tx               repositories.TxRunner
	now              func() time.Time
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	caregiverRepo repositories.CaregiverRepository,
	tx repositories.TxRunner,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		caregiverRepo:    caregiverRepo,
		tx:               tx,
		now:              time.Now,
	}
}

const txnSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newTransactionID mimics the payment gateway reference format:
// TXN-<unix millis>-<9 base36 chars>.
func newTransactionID(now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = txnSuffixAlphabet[rand.Intn(len(txnSuffixAlphabet))]
	}
	return fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), suffix)
}

func (s *subscriptionService) ActivateSubscription(ctx context.Context, db *gorm.DB, userID string, req dto.ActivateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	plan, ok := models.PlanByType(models.PlanType(req.PlanType))
	if !ok {
		return nil, apperrors.ErrUnknownPlanType
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = models.PaymentMethodMpesa
	}

	now := s.now()
	endDate := now.AddDate(0, 0, plan.Days)
	txnID := newTransactionID(now)

	var resp dto.SubscriptionResponse

	err := s.tx.WithinTx(db, func(tx *gorm.DB) error {
		// The profile row lock keeps the mirror write from racing a
		// concurrent activation or an expiry sweep for the same caregiver.
		profile, err := s.caregiverRepo.FindProfileByUserIDForUpdate(tx, userID)
		if err != nil {
			if err == repositories.ErrCaregiverNotFound {
				return apperrors.ErrCaregiverNotFound
			}
			return apperrors.InternalError(err)
		}

		sub := &models.Subscription{
			UserID:        userID,
			PlanType:      plan.Type,
			Amount:        plan.Amount,
			StartDate:     now,
			EndDate:       endDate,
			Status:        models.SubscriptionStatusActive,
			TransactionID: txnID,
		}
		if err := s.subscriptionRepo.CreateSubscription(tx, sub); err != nil {
			if apperrors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateTransaction
			}
			return apperrors.InternalError(err)
		}

		err = s.caregiverRepo.UpdateProfileFields(tx, profile.ID, map[string]interface{}{
			"subscription_status": models.SubscriptionStatusActive,
			"subscription_expiry": endDate,
		})
		if err != nil {
			return apperrors.InternalError(err)
		}

		payment := &models.Payment{
			UserID:        userID,
			Amount:        plan.Amount,
			Currency:      "KES",
			PaymentMethod: method,
			Status:        models.PaymentStatusCompleted,
			TransactionID: txnID,
			Description:   fmt.Sprintf("%s subscription", plan.Type),
		}
		if err := s.subscriptionRepo.CreatePayment(tx, payment); err != nil {
			if apperrors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateTransaction
			}
			return apperrors.InternalError(err)
		}

		resp = dto.NewSubscriptionResponse(sub)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "subscription activated",
		"user_id", userID,
		"plan", plan.Type,
		"transaction_id", txnID,
		"expires", endDate,
	)
	return &resp, nil
}

func (s *subscriptionService) CurrentSubscription(ctx context.Context, db *gorm.DB, userID string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.FindCurrentActiveByUser(db, userID, s.now())
	if err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewSubscriptionResponse(sub)
	return &resp, nil
}

func (s *subscriptionService) SubscriptionHistory(ctx context.Context, db *gorm.DB, userID string) (*dto.SubscriptionHistoryResponse, error) {
	subs, err := s.subscriptionRepo.FindSubscriptionsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, dto.NewSubscriptionResponse(&subs[i]))
	}
	return &dto.SubscriptionHistoryResponse{Subscriptions: out}, nil
}

func (s *subscriptionService) PaymentHistory(ctx context.Context, db *gorm.DB, userID string) (*dto.PaymentHistoryResponse, error) {
	payments, err := s.subscriptionRepo.FindPaymentsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, dto.NewPaymentResponse(&payments[i]))
	}
	return &dto.PaymentHistoryResponse{Payments: out}, nil
}
