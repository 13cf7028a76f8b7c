package enum

import "database/sql/driver"

// OrderStatus represents the lifecycle state of a table's order
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known values
func (s OrderStatus) Valid() bool {
	return s == OrderStatusOpen || s == OrderStatusClosed
}

func (s OrderStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusOpen
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = OrderStatus(v)
	case []byte:
		*s = OrderStatus(v)
	}
	return nil
}
