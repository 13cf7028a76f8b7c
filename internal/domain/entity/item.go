package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

// Item represents a menu item. Settled bills copy item fields by value, so
// editing an item never alters historical bills.
type Item struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	SubcategoryID *uuid.UUID        `gorm:"type:uuid;index" json:"subcategory_id,omitempty"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	Price         int64             `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Category      enum.ItemCategory `gorm:"size:10;not null;index" json:"category"`
	Active        bool              `gorm:"default:true" json:"active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
}

// MarshalJSON converts the cent price to a decimal for API responses
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// GetPriceDecimal returns the unit price as a decimal
func (i *Item) GetPriceDecimal() float64 {
	return float64(i.Price) / 100
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (i *Item) SetPriceFromDecimal(price float64) {
	i.Price = int64(price*100 + 0.5)
}

// Subcategory groups items under a fixed category for menu display
type Subcategory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null;unique" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []Item `gorm:"foreignKey:SubcategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new subcategory
func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Subcategory model
func (Subcategory) TableName() string {
	return "subcategories"
}
