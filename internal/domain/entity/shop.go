package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop is the single-row restaurant profile printed on receipt headers.
type Shop struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	Phone         string    `gorm:"size:50" json:"phone,omitempty"`
	TaxID         string    `gorm:"size:100" json:"tax_id,omitempty"`
	Currency      string    `gorm:"size:10;default:'$'" json:"currency"`
	ReceiptFooter string    `gorm:"type:text" json:"receipt_footer,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the shop profile
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}
