package models

type Payment struct {
	BaseModel
	UserID        string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency      string        `gorm:"size:3;default:'KES'" json:"currency"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	Status        PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	TransactionID string        `gorm:"size:100;uniqueIndex" json:"transaction_id"`
	Description   string        `gorm:"type:text" json:"description"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
