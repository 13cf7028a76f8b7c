package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

// HistoryBill is the immutable snapshot of one settlement. All money fields
// are cents; final_amount = sub_total + service_charge - discount and is not
// clamped, so a discount larger than the bill produces a negative total.
type HistoryBill struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	TableNo       int                `gorm:"not null;index" json:"table_no"`
	SubTotal      int64              `gorm:"not null" json:"-"`
	Discount      int64              `gorm:"default:0" json:"-"`
	ServiceCharge bool               `gorm:"default:false" json:"service_charge"`
	ServiceAmount int64              `gorm:"default:0" json:"-"`
	FinalAmount   int64              `gorm:"not null" json:"-"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	Note          string             `gorm:"type:text" json:"note,omitempty"`
	SettledByID   *uuid.UUID         `gorm:"type:uuid;index" json:"settled_by_id,omitempty"`
	ClosedAt      time.Time          `gorm:"not null;index" json:"closed_at"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	SettledBy *User         `gorm:"foreignKey:SettledByID" json:"settled_by,omitempty"`
	Lines     []HistoryLine `gorm:"foreignKey:BillID" json:"lines,omitempty"`
}

// MarshalJSON converts cent amounts to decimals for API responses
func (b HistoryBill) MarshalJSON() ([]byte, error) {
	type Alias HistoryBill
	return json.Marshal(&struct {
		Alias
		SubTotal      float64 `json:"sub_total"`
		Discount      float64 `json:"discount"`
		ServiceAmount float64 `json:"service_amount"`
		FinalAmount   float64 `json:"final_amount"`
	}{
		Alias:         Alias(b),
		SubTotal:      float64(b.SubTotal) / 100,
		Discount:      float64(b.Discount) / 100,
		ServiceAmount: float64(b.ServiceAmount) / 100,
		FinalAmount:   float64(b.FinalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new history bill
func (b *HistoryBill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the HistoryBill model
func (HistoryBill) TableName() string {
	return "history_bills"
}

// HistoryLine is a per-item snapshot copied by value from an order line at
// settlement time. It references no live item row, so later menu edits never
// alter historical bills.
type HistoryLine struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"bill_id"`
	ItemName  string            `gorm:"size:255;not null" json:"item_name"`
	UnitPrice int64             `gorm:"not null" json:"-"`
	Category  enum.ItemCategory `gorm:"size:10;not null" json:"category"`
	Quantity  int               `gorm:"not null" json:"quantity"`
	LineTotal int64             `gorm:"not null" json:"-"`
	CreatedAt time.Time         `json:"created_at"`

	// Relationships
	Bill HistoryBill `gorm:"foreignKey:BillID" json:"-"`
}

// MarshalJSON converts cent amounts to decimals for API responses
func (l HistoryLine) MarshalJSON() ([]byte, error) {
	type Alias HistoryLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		LineTotal: float64(l.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new history line
func (l *HistoryLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the HistoryLine model
func (HistoryLine) TableName() string {
	return "history_lines"
}
