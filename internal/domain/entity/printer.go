package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

// Printer is a configured thermal printer reachable through the print relay.
// Address is the host:port the relay dials, e.g. "192.168.1.50:9100".
type Printer struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name      string              `gorm:"size:255;not null" json:"name"`
	Address   string              `gorm:"size:255;not null" json:"address"`
	Station   enum.PrinterStation `gorm:"size:20;not null;index" json:"station"`
	Active    bool                `gorm:"default:true" json:"active"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new printer
func (p *Printer) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Printer model
func (Printer) TableName() string {
	return "printers"
}
