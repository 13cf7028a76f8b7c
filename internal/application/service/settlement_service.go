package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/pkg/apperror"
)

// serviceChargeRate is applied to the settled subtotal when the flag is set.
// It is never prorated per item: a partial settlement charges 10% of the
// partial subtotal, and the discount is applied once against that subtotal.
const serviceChargeRate = 0.10

// SettlementService converts open order lines into immutable history bills.
// All database steps of a settlement run inside one transaction, so a failed
// settlement leaves the open order untouched.
type SettlementService struct {
	tx          repository.TxManager
	orderRepo   repository.OrderRepository
	lineRepo    repository.OrderLineRepository
	historyRepo repository.HistoryRepository
	printerSvc  *PrinterService
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	tx repository.TxManager,
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	historyRepo repository.HistoryRepository,
	printerSvc *PrinterService,
) *SettlementService {
	return &SettlementService{
		tx:          tx,
		orderRepo:   orderRepo,
		lineRepo:    lineRepo,
		historyRepo: historyRepo,
		printerSvc:  printerSvc,
	}
}

// Selection picks a quantity from one open order line to settle
type Selection struct {
	LineID   uuid.UUID
	Quantity int
}

// SettleInput represents the settle input
type SettleInput struct {
	TableNo       int
	Selections    []Selection
	Discount      float64 // flat currency amount, not a percentage
	ServiceCharge bool
	PaymentMethod enum.PaymentMethod
	Note          string
	SettledByID   *uuid.UUID
}

// Settle converts the selected quantities of a table's open order into a
// history bill. Fully settled lines are deleted, partially settled ones
// decremented; the order closes when its last line is settled. The returned
// bill carries its line snapshots.
func (s *SettlementService) Settle(ctx context.Context, input *SettleInput) (*entity.HistoryBill, error) {
	if len(input.Selections) == 0 {
		return nil, apperror.NewBadRequestError("No order lines selected")
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}
	if input.Discount < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	var bill *entity.HistoryBill

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetOpenByTable(ctx, input.TableNo)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.ErrNoOpenOrder
		}

		lines, err := s.lineRepo.ListByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		lineMap := make(map[uuid.UUID]*entity.OrderLine, len(lines))
		for i := range lines {
			lineMap[lines[i].ID] = &lines[i]
		}

		// Validate every selection before touching anything.
		seen := make(map[uuid.UUID]bool, len(input.Selections))
		var subTotal int64
		histLines := make([]entity.HistoryLine, 0, len(input.Selections))

		for _, sel := range input.Selections {
			line, exists := lineMap[sel.LineID]
			if !exists {
				return apperror.NewNotFoundError("Order line")
			}
			if seen[sel.LineID] {
				return apperror.NewBadRequestError("Order line selected twice")
			}
			seen[sel.LineID] = true

			if sel.Quantity < 1 {
				return apperror.NewBadRequestError("Selected quantity must be at least 1")
			}
			if sel.Quantity > line.Quantity {
				return apperror.NewBadRequestError("Selected quantity exceeds remaining quantity")
			}

			lineTotal := line.Item.Price * int64(sel.Quantity)
			subTotal += lineTotal

			histLines = append(histLines, entity.HistoryLine{
				ItemName:  line.Item.Name,
				UnitPrice: line.Item.Price,
				Category:  line.Item.Category,
				Quantity:  sel.Quantity,
				LineTotal: lineTotal,
			})
		}

		var serviceAmount int64
		if input.ServiceCharge {
			serviceAmount = int64(math.Round(float64(subTotal) * serviceChargeRate))
		}
		discount := int64(math.Round(input.Discount * 100))

		// Not clamped: a discount larger than the bill yields a negative
		// final amount, matching the persisted arithmetic invariant.
		finalAmount := subTotal + serviceAmount - discount

		bill = &entity.HistoryBill{
			OrderID:       order.ID,
			TableNo:       order.TableNo,
			SubTotal:      subTotal,
			Discount:      discount,
			ServiceCharge: input.ServiceCharge,
			ServiceAmount: serviceAmount,
			FinalAmount:   finalAmount,
			PaymentMethod: input.PaymentMethod,
			Note:          input.Note,
			SettledByID:   input.SettledByID,
			ClosedAt:      time.Now(),
		}
		if err := s.historyRepo.CreateBill(ctx, bill); err != nil {
			return err
		}

		for i := range histLines {
			histLines[i].BillID = bill.ID
		}
		if err := s.historyRepo.CreateLines(ctx, histLines); err != nil {
			return err
		}

		for _, sel := range input.Selections {
			line := lineMap[sel.LineID]
			if sel.Quantity == line.Quantity {
				if err := s.lineRepo.Delete(ctx, line.ID); err != nil {
					return err
				}
			} else {
				if err := s.lineRepo.UpdateQuantity(ctx, line.ID, line.Quantity-sel.Quantity); err != nil {
					return err
				}
			}
		}

		remaining, err := s.lineRepo.CountByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			if err := s.orderRepo.Close(ctx, order.ID); err != nil {
				return err
			}
		}

		bill.Lines = histLines
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The bill is committed; receipt delivery is fire-and-forget.
	s.printerSvc.PrintBillReceipt(ctx, bill)

	return bill, nil
}

// SettleAll settles every remaining line of the table's open order. It reads
// the current lines and delegates to Settle, so full settlement behaves
// identically to a partial settlement that happens to select everything.
func (s *SettlementService) SettleAll(ctx context.Context, input *SettleInput) (*entity.HistoryBill, error) {
	order, err := s.orderRepo.GetOpenByTable(ctx, input.TableNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.ErrNoOpenOrder
	}

	lines, err := s.lineRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	selections := make([]Selection, 0, len(lines))
	for _, line := range lines {
		selections = append(selections, Selection{LineID: line.ID, Quantity: line.Quantity})
	}

	full := *input
	full.Selections = selections
	return s.Settle(ctx, &full)
}
