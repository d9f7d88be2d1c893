package models

// Review is append-only: it is never edited or deleted, which keeps the
// aggregate recompute on CaregiverProfile a pure function of the table.
type Review struct {
	BaseModel
	ClientID    string `gorm:"type:uuid;not null;index" json:"client_id"`
	CaregiverID string `gorm:"type:uuid;not null;index" json:"caregiver_id"`
	Rating      int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     string `gorm:"type:text" json:"comment"`
	IsVerified  bool   `gorm:"default:false" json:"is_verified"`

	// Relations
	Client    User             `gorm:"foreignKey:ClientID" json:"-"`
	Caregiver CaregiverProfile `gorm:"foreignKey:CaregiverID" json:"-"`
}
