package dto

import (
	"time"

	"tunzacare_backend/internal/models"
)

type ActivateSubscriptionRequest struct {
	PlanType      string `json:"plan_type" validate:"required,is-plan-type"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=mpesa card bank"`
}

type SubscriptionResponse struct {
	ID            string                    `json:"id"`
	PlanType      models.PlanType           `json:"plan_type"`
	Amount        float64                   `json:"amount"`
	StartDate     time.Time                 `json:"start_date"`
	EndDate       time.Time                 `json:"end_date"`
	Status        models.SubscriptionStatus `json:"status"`
	TransactionID string                    `json:"transaction_id"`
}

type SubscriptionHistoryResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Status        models.PaymentStatus `json:"status"`
	TransactionID string               `json:"transaction_id"`
	Description   string               `json:"description"`
	CreatedAt     time.Time            `json:"created_at"`
}

type PaymentHistoryResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

func NewPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
	}
}

func NewSubscriptionResponse(s *models.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:            s.ID,
		PlanType:      s.PlanType,
		Amount:        s.Amount,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		Status:        s.Status,
		TransactionID: s.TransactionID,
	}
}
