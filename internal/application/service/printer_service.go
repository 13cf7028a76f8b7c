package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/internal/printrelay"
	"github.com/tavolo/tavolo-api/pkg/apperror"
)

// PrinterService manages printer configuration and pushes formatted output
// to the print relay. Every print path is fire-and-forget: failures are
// logged and never surface to the flows that trigger them.
type PrinterService struct {
	printerRepo repository.PrinterRepository
	shopRepo    repository.ShopRepository
	sender      printrelay.Sender
	width       int
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	printerRepo repository.PrinterRepository,
	shopRepo repository.ShopRepository,
	sender printrelay.Sender,
	width int,
) *PrinterService {
	if width <= 0 {
		width = 32
	}
	return &PrinterService{
		printerRepo: printerRepo,
		shopRepo:    shopRepo,
		sender:      sender,
		width:       width,
	}
}

// --- Configuration CRUD ---

// CreatePrinterInput represents the create printer input
type CreatePrinterInput struct {
	Name    string
	Address string
	Station enum.PrinterStation
}

// CreatePrinter registers a printer behind the relay
func (s *PrinterService) CreatePrinter(ctx context.Context, input *CreatePrinterInput) (*entity.Printer, error) {
	if !input.Station.Valid() {
		return nil, apperror.NewBadRequestError("Unknown printer station")
	}
	printer := &entity.Printer{
		Name:    input.Name,
		Address: input.Address,
		Station: input.Station,
		Active:  true,
	}
	if err := s.printerRepo.Create(ctx, printer); err != nil {
		return nil, err
	}
	return printer, nil
}

// UpdatePrinterInput represents the update printer input
type UpdatePrinterInput struct {
	Name    *string
	Address *string
	Station *enum.PrinterStation
	Active  *bool
}

// UpdatePrinter updates a printer's configuration
func (s *PrinterService) UpdatePrinter(ctx context.Context, id uuid.UUID, input *UpdatePrinterInput) (*entity.Printer, error) {
	printer, err := s.printerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if printer == nil {
		return nil, apperror.NewNotFoundError("Printer")
	}

	if input.Name != nil {
		printer.Name = *input.Name
	}
	if input.Address != nil {
		printer.Address = *input.Address
	}
	if input.Station != nil {
		if !input.Station.Valid() {
			return nil, apperror.NewBadRequestError("Unknown printer station")
		}
		printer.Station = *input.Station
	}
	if input.Active != nil {
		printer.Active = *input.Active
	}

	if err := s.printerRepo.Update(ctx, printer); err != nil {
		return nil, err
	}
	return printer, nil
}

// DeletePrinter removes a printer
func (s *PrinterService) DeletePrinter(ctx context.Context, id uuid.UUID) error {
	printer, err := s.printerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if printer == nil {
		return apperror.NewNotFoundError("Printer")
	}
	return s.printerRepo.Delete(ctx, id)
}

// ListPrinters returns all configured printers
func (s *PrinterService) ListPrinters(ctx context.Context) ([]entity.Printer, error) {
	return s.printerRepo.List(ctx)
}

// GetPrinter returns a printer by id
func (s *PrinterService) GetPrinter(ctx context.Context, id uuid.UUID) (*entity.Printer, error) {
	printer, err := s.printerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if printer == nil {
		return nil, apperror.NewNotFoundError("Printer")
	}
	return printer, nil
}

// --- Delivery ---

// PrintBillReceipt formats a settled bill and queues it for the receipt
// printer. Called after the settlement transaction commits; any failure here
// is logged and swallowed.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, bill *entity.HistoryBill) {
	target, err := s.printerRepo.GetByStation(ctx, enum.StationReceipt)
	if err != nil {
		log.Printf("printer: receipt printer lookup failed: %v", err)
		return
	}
	if target == nil {
		return
	}

	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		log.Printf("printer: shop profile lookup failed: %v", err)
	}

	receipt := BuildReceipt(bill, shop)
	s.sender.Enqueue(printrelay.Message{
		PrinterAddr: target.Address,
		Data:        FormatReceipt(receipt, s.width),
	})
}

// PrintStationTicket formats a one-item ticket and queues it for the
// station preparing the item's category.
func (s *PrinterService) PrintStationTicket(ctx context.Context, tableNo int, item *entity.Item, quantity int) {
	station := enum.StationFor(item.Category)
	target, err := s.printerRepo.GetByStation(ctx, station)
	if err != nil {
		log.Printf("printer: %s printer lookup failed: %v", station, err)
		return
	}
	if target == nil {
		return
	}

	ticket := &entity.Ticket{
		Station: string(station),
		TableNo: tableNo,
		Date:    time.Now().Format("15:04"),
		Items: []entity.ReceiptItem{
			{Name: item.Name, Quantity: quantity, UnitPrice: item.GetPriceDecimal()},
		},
	}
	s.sender.Enqueue(printrelay.Message{
		PrinterAddr: target.Address,
		Data:        FormatTicket(ticket, s.width),
	})
}

// TestPrint queues a test page on a specific printer so a newly configured
// address can be verified from the settings screen.
func (s *PrinterService) TestPrint(ctx context.Context, id uuid.UUID) error {
	target, err := s.GetPrinter(ctx, id)
	if err != nil {
		return err
	}

	receipt := &entity.Receipt{
		Header:  entity.ReceiptHeader{ShopName: "PRINTER TEST"},
		BillNo:  "TEST-001",
		TableNo: 0,
		Date:    time.Now().Format("2006-01-02 15:04"),
		Items: []entity.ReceiptItem{
			{Name: "Test Item", Quantity: 1, UnitPrice: 1.00, Total: 1.00},
		},
		SubTotal: 1.00,
		Total:    1.00,
	}
	s.sender.Enqueue(printrelay.Message{
		PrinterAddr: target.Address,
		Data:        FormatReceipt(receipt, s.width),
	})
	return nil
}
