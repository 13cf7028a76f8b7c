package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/pkg/pagination"
)

// HistoryRepository defines the interface for settled bill data operations.
// Bills and their lines are append-only; there are no update methods.
type HistoryRepository interface {
	CreateBill(ctx context.Context, bill *entity.HistoryBill) error
	CreateLines(ctx context.Context, lines []entity.HistoryLine) error
	GetBill(ctx context.Context, id uuid.UUID) (*entity.HistoryBill, error)
	GetBillWithLines(ctx context.Context, id uuid.UUID) (*entity.HistoryBill, error)
	ListBills(ctx context.Context, params *HistoryFilterParams) ([]entity.HistoryBill, int64, error)
	// ListBillsInRange returns all bills with lines in [from, to), oldest
	// first, for report export.
	ListBillsInRange(ctx context.Context, from, to time.Time) ([]entity.HistoryBill, error)
}

// HistoryFilterParams contains filtering parameters for bill queries
type HistoryFilterParams struct {
	Pagination *pagination.PaginationParams
	TableNo    *int
	From       *time.Time
	To         *time.Time
}

// ItemSalesRow is one aggregated row of the item-sales report
type ItemSalesRow struct {
	ItemName string
	Category string
	Quantity int
	Revenue  int64
}
