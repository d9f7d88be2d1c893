package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// CaregiverProfile carries the discoverable state of a caregiver.
//
// Rating and TotalReviews are aggregates over the caregiver's verified
// reviews and are only ever rewritten together, inside the same transaction
// that changed the review set. SubscriptionStatus and SubscriptionExpiry
// mirror the current active Subscription and are only ever rewritten by
// subscription operations. Profile edits must not touch any of the four.
type CaregiverProfile struct {
	BaseModel
	UserID             string             `gorm:"type:uuid;not null;index" json:"user_id"`
	Bio                string             `gorm:"type:text" json:"bio"`
	ExperienceYears    int                `gorm:"default:0;check:experience_years >= 0 AND experience_years <= 50" json:"experience_years"`
	Specialization     Specialization     `gorm:"type:varchar(20);default:'general';index" json:"specialization"`
	Certifications     datatypes.JSON     `gorm:"type:jsonb" json:"certifications"`
	Languages          pq.StringArray     `gorm:"type:text[]" json:"languages"`
	HourlyRate         float64            `gorm:"type:decimal(10,2);default:0;check:hourly_rate >= 0" json:"hourly_rate"`
	Availability       Availability       `gorm:"type:varchar(20);default:'full_time'" json:"availability"`
	Location           string             `gorm:"size:100;not null" json:"location"`
	County             string             `gorm:"size:50;not null;index" json:"county"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'pending';index" json:"verification_status"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:varchar(20);default:'none'" json:"subscription_status"`
	SubscriptionExpiry *time.Time         `json:"subscription_expiry,omitempty"`
	Rating             float64            `gorm:"type:decimal(3,2);default:0;check:rating >= 0 AND rating <= 5" json:"rating"`
	TotalReviews       int                `gorm:"default:0;check:total_reviews >= 0" json:"total_reviews"`
	IsActive           bool               `gorm:"default:true" json:"is_active"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

type ClientProfile struct {
	BaseModel
	UserID            string         `gorm:"type:uuid;not null;index" json:"user_id"`
	PreferredLocation string         `gorm:"size:100" json:"preferred_location"`
	CareTypeNeeded    Specialization `gorm:"type:varchar(20)" json:"care_type_needed"`
	BudgetRange       string         `gorm:"size:50" json:"budget_range"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
