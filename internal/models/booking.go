package models

import "time"

// Booking is a care request submitted by a client. It has no state machine
// beyond creation and no linkage to payments or subscriptions.
type Booking struct {
	BaseModel
	ClientID      string    `gorm:"type:uuid;not null;index" json:"client_id"`
	CaregiverID   string    `gorm:"type:uuid;not null;index" json:"caregiver_id"`
	ServiceType   string    `gorm:"size:50;not null" json:"service_type"`
	StartDate     time.Time `gorm:"not null" json:"start_date"`
	DurationHours int       `gorm:"not null;check:duration_hours >= 1 AND duration_hours <= 24" json:"duration_hours"`
	Notes         string    `gorm:"type:text" json:"notes"`

	// Relations
	Client    User             `gorm:"foreignKey:ClientID" json:"-"`
	Caregiver CaregiverProfile `gorm:"foreignKey:CaregiverID" json:"-"`
}
