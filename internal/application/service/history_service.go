package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/pkg/apperror"
	"github.com/tavolo/tavolo-api/pkg/pagination"
)

// HistoryService reads settled bills. History is append-only; the only
// writes happen inside the settlement transaction.
type HistoryService struct {
	historyRepo repository.HistoryRepository
	shopRepo    repository.ShopRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(historyRepo repository.HistoryRepository, shopRepo repository.ShopRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo, shopRepo: shopRepo}
}

// GetBill retrieves a settled bill with its line snapshots
func (s *HistoryService) GetBill(ctx context.Context, id uuid.UUID) (*entity.HistoryBill, error) {
	bill, err := s.historyRepo.GetBillWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists settled bills with filtering
func (s *HistoryService) ListBills(ctx context.Context, params *repository.HistoryFilterParams) (*pagination.PaginatedResult[entity.HistoryBill], error) {
	bills, total, err := s.historyRepo.ListBills(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// BillPDF renders a settled bill as a downloadable PDF
func (s *HistoryService) BillPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return RenderReceiptPDF(BuildReceipt(bill, shop))
}
