package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

// Order is the live, editable tab for a table. At most one open order exists
// per table at a time; the invariant is enforced by lookup, not a constraint.
type Order struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TableNo   int              `gorm:"not null;index" json:"table_no"`
	Status    enum.OrderStatus `gorm:"size:10;not null;default:'open';index" json:"status"`
	ClosedAt  *time.Time       `json:"closed_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Relationships
	Lines []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderLine is one accumulated item on an open order. Repeated adds with the
// same (order, item, batch) merge into one line by incrementing quantity.
type OrderLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	BatchTag  string    `gorm:"size:100;default:''" json:"batch_tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
	Item  Item  `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// MarshalJSON flattens the item snapshot used by order screens
func (l OrderLine) MarshalJSON() ([]byte, error) {
	type Alias OrderLine
	return json.Marshal(&struct {
		Alias
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(l),
		LineTotal: float64(l.Item.Price*int64(l.Quantity)) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order line
func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_lines"
}
