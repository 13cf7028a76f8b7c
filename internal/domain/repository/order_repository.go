package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
)

// OrderRepository defines the interface for open order data operations.
// The open-order-per-table invariant lives in GetOpenByTable: callers always
// resolve a table to its current order through it, never by scanning.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetOpenByTable(ctx context.Context, tableNo int) (*entity.Order, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Close(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListOpen(ctx context.Context) ([]entity.Order, error)
}

// OrderLineRepository defines the interface for order line data operations
type OrderLineRepository interface {
	Create(ctx context.Context, line *entity.OrderLine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error)
	// FindMatch returns the line on an order with the same item and batch
	// tag, or nil when no such line exists.
	FindMatch(ctx context.Context, orderID, itemID uuid.UUID, batchTag string) (*entity.OrderLine, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
