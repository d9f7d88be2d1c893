package models

import "time"

type User struct {
	BaseModel
	FirstName      string   `gorm:"size:50;not null" json:"first_name"`
	LastName       string   `gorm:"size:50;not null" json:"last_name"`
	Email          string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone          string   `gorm:"size:20;not null" json:"phone"`
	IDNumber       string   `gorm:"size:20;uniqueIndex;not null" json:"id_number"`
	PasswordHash   string   `gorm:"not null" json:"-"`
	Role           UserRole `gorm:"type:varchar(20);not null;index" json:"role"`
	ProfilePicture string   `gorm:"size:255;default:'default-avatar.png'" json:"profile_picture"`
	IsActive       bool     `gorm:"default:true" json:"is_active"`
	LastLogin      *time.Time `json:"last_login,omitempty"`

	// Relations
	CaregiverProfile *CaregiverProfile `gorm:"foreignKey:UserID" json:"caregiver_profile,omitempty"`
	ClientProfile    *ClientProfile    `gorm:"foreignKey:UserID" json:"client_profile,omitempty"`
}
