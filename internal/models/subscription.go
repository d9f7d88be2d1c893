package models

import "time"

type Subscription struct {
	BaseModel
	UserID        string             `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanType      PlanType           `gorm:"type:varchar(20);not null" json:"plan_type"`
	Amount        float64            `gorm:"type:decimal(10,2);not null" json:"amount"`
	StartDate     time.Time          `gorm:"not null" json:"start_date"`
	EndDate       time.Time          `gorm:"not null" json:"end_date"`
	Status        SubscriptionStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
	TransactionID string             `gorm:"size:100;uniqueIndex" json:"transaction_id"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Plan is a fixed pricing entry. Amounts are design constants in KES,
// not user input.
type Plan struct {
	Type   PlanType
	Amount float64
	Days   int
}

var plans = map[PlanType]Plan{
	PlanTypeMonthly:   {Type: PlanTypeMonthly, Amount: 500, Days: 30},
	PlanTypeQuarterly: {Type: PlanTypeQuarterly, Amount: 1400, Days: 90},
	PlanTypeYearly:    {Type: PlanTypeYearly, Amount: 5000, Days: 365},
}

// PlanByType looks up the fixed plan table.
func PlanByType(t PlanType) (Plan, bool) {
	p, ok := plans[t]
	return p, ok
}
