package models

type UserRole string
type VerificationStatus string
type SubscriptionStatus string
type PaymentStatus string
type PaymentMethod string
type PlanType string
type Specialization string
type Availability string

const (
	UserRoleClient    UserRole = "client"
	UserRoleCaregiver UserRole = "caregiver"
	UserRoleAdmin     UserRole = "admin"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"

	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	// SubscriptionStatusNone is only ever written to CaregiverProfile,
	// never to a Subscription record.
	SubscriptionStatusNone SubscriptionStatus = "none"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	PaymentMethodMpesa PaymentMethod = "mpesa"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodBank  PaymentMethod = "bank"

	PlanTypeMonthly   PlanType = "monthly"
	PlanTypeQuarterly PlanType = "quarterly"
	PlanTypeYearly    PlanType = "yearly"

	SpecializationChildcare    Specialization = "childcare"
	SpecializationElderly      Specialization = "elderly"
	SpecializationDisability   Specialization = "disability"
	SpecializationSpecialNeeds Specialization = "special_needs"
	SpecializationGeneral      Specialization = "general"

	AvailabilityFullTime Availability = "full_time"
	AvailabilityPartTime Availability = "part_time"
	AvailabilityOnCall   Availability = "on_call"
)
