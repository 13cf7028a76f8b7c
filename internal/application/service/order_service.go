package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/pkg/apperror"
)

// OrderService accumulates line items on per-table open orders
type OrderService struct {
	tx         repository.TxManager
	orderRepo  repository.OrderRepository
	lineRepo   repository.OrderLineRepository
	itemRepo   repository.ItemRepository
	printerSvc *PrinterService
}

// NewOrderService creates a new order service
func NewOrderService(
	tx repository.TxManager,
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	itemRepo repository.ItemRepository,
	printerSvc *PrinterService,
) *OrderService {
	return &OrderService{
		tx:         tx,
		orderRepo:  orderRepo,
		lineRepo:   lineRepo,
		itemRepo:   itemRepo,
		printerSvc: printerSvc,
	}
}

// AddLineInput represents the add line input
type AddLineInput struct {
	TableNo  int
	ItemID   uuid.UUID
	Quantity int
	BatchTag string
}

// AddLine appends an item to the table's open order, creating the order if
// none exists. A line matching (order, item, batch tag) is incremented in
// place; otherwise a new line is inserted. After the add commits, a station
// ticket for the item's preparation station is emitted fire-and-forget.
func (s *OrderService) AddLine(ctx context.Context, input *AddLineInput) (*entity.Order, error) {
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	item, err := s.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	if !item.Active {
		return nil, apperror.NewBadRequestError("Item is not on the active menu")
	}

	var orderID uuid.UUID

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetOpenByTable(ctx, input.TableNo)
		if err != nil {
			return err
		}
		if order == nil {
			order = &entity.Order{
				TableNo: input.TableNo,
				Status:  enum.OrderStatusOpen,
			}
			if err := s.orderRepo.Create(ctx, order); err != nil {
				return err
			}
		}
		orderID = order.ID

		line, err := s.lineRepo.FindMatch(ctx, order.ID, input.ItemID, input.BatchTag)
		if err != nil {
			return err
		}
		if line != nil {
			return s.lineRepo.UpdateQuantity(ctx, line.ID, line.Quantity+input.Quantity)
		}
		return s.lineRepo.Create(ctx, &entity.OrderLine{
			OrderID:  order.ID,
			ItemID:   input.ItemID,
			Quantity: input.Quantity,
			BatchTag: input.BatchTag,
		})
	})
	if err != nil {
		return nil, err
	}

	s.printerSvc.PrintStationTicket(ctx, input.TableNo, item, input.Quantity)

	return s.orderRepo.GetWithLines(ctx, orderID)
}

// GetByTable returns the table's open order with its lines
func (s *OrderService) GetByTable(ctx context.Context, tableNo int) (*entity.Order, error) {
	order, err := s.orderRepo.GetOpenByTable(ctx, tableNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.ErrNoOpenOrder
	}
	return s.orderRepo.GetWithLines(ctx, order.ID)
}

// ListOpen returns all open orders, one per occupied table
func (s *OrderService) ListOpen(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.ListOpen(ctx)
}

// UpdateLineQuantity sets a line's quantity to a new positive value
func (s *OrderService) UpdateLineQuantity(ctx context.Context, lineID uuid.UUID, quantity int) (*entity.Order, error) {
	if quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	line, err := s.lineRepo.GetByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, apperror.NewNotFoundError("Order line")
	}

	if err := s.lineRepo.UpdateQuantity(ctx, lineID, quantity); err != nil {
		return nil, err
	}
	return s.orderRepo.GetWithLines(ctx, line.OrderID)
}

// RemoveLine deletes a line from its open order. Removing the last line
// deletes the now-empty order, freeing the table.
func (s *OrderService) RemoveLine(ctx context.Context, lineID uuid.UUID) error {
	line, err := s.lineRepo.GetByID(ctx, lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return apperror.NewNotFoundError("Order line")
	}

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.lineRepo.Delete(ctx, line.ID); err != nil {
			return err
		}
		remaining, err := s.lineRepo.CountByOrder(ctx, line.OrderID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return s.orderRepo.Delete(ctx, line.OrderID)
		}
		return nil
	})
}
