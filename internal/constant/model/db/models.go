package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment represents a payment document in the pagamentos collection
type Payment struct {
	ID        string    `gorm:"type:varchar(36);primary_key" json:"id"`
	OrderID   string    `gorm:"type:varchar(255)" json:"order_id"`
	Status    string    `gorm:"type:varchar(20)" json:"status"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method    string    `gorm:"type:varchar(255)" json:"method"`
	Reference string    `gorm:"type:varchar(255)" json:"reference"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "pagamentos"
}

// BeforeCreate is a GORM hook that runs before creating a record
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
