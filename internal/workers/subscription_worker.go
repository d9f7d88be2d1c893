package workers

import (
	"context"
	"time"

	"tunzacare_backend/internal/logger"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"

	"gorm.io/gorm"
)

// SubscriptionWorker periodically flips overdue subscriptions to expired and
// downgrades the caregiver profile mirrors. Discovery already checks expiry
// at read time, so the sweep only keeps the stored status columns honest.
type SubscriptionWorker struct {
	db               *gorm.DB
	subscriptionRepo repositories.SubscriptionRepository
	caregiverRepo    repositories.CaregiverRepository
	tx               repositories.TxRunner
	interval         time.Duration
}

func NewSubscriptionWorker(
	db *gorm.DB,
	subscriptionRepo repositories.SubscriptionRepository,
	caregiverRepo repositories.CaregiverRepository,
	tx repositories.TxRunner,
	interval time.Duration,
) *SubscriptionWorker {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &SubscriptionWorker{
		db:               db,
		subscriptionRepo: subscriptionRepo,
		caregiverRepo:    caregiverRepo,
		tx:               tx,
		interval:         interval,
	}
}

func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *SubscriptionWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("subscription worker stopped")
			return
		case <-ticker.C:
			if err := w.Sweep(time.Now()); err != nil {
				logger.Error("subscription sweep failed", "error", err)
			}
		}
	}
}

// Sweep runs one expiry pass. Exported so tests and admin tooling can
// trigger it without the ticker.
func (w *SubscriptionWorker) Sweep(now time.Time) error {
	return w.tx.WithinTx(w.db, func(tx *gorm.DB) error {
		userIDs, err := w.subscriptionRepo.ExpireDue(tx, now)
		if err != nil {
			return err
		}

		for _, userID := range userIDs {
			// A caregiver may have bought a new subscription since the
			// expired one; only downgrade when nothing active remains.
			_, err := w.subscriptionRepo.FindCurrentActiveByUser(tx, userID, now)
			if err == nil {
				continue
			}
			if err != repositories.ErrSubscriptionNotFound {
				return err
			}

			profile, err := w.caregiverRepo.FindProfileByUserIDForUpdate(tx, userID)
			if err != nil {
				if err == repositories.ErrCaregiverNotFound {
					continue
				}
				return err
			}

			err = w.caregiverRepo.UpdateProfileFields(tx, profile.ID, map[string]interface{}{
				"subscription_status": models.SubscriptionStatusExpired,
			})
			if err != nil {
				return err
			}
		}

		if len(userIDs) > 0 {
			logger.Info("subscriptions expired", "count", len(userIDs))
		}
		return nil
	})
}
