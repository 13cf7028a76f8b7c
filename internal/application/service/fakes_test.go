package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/internal/printrelay"
)

// fakeTxManager runs the function directly; the in-memory fakes below have
// no transactional state to manage.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	lines  *fakeLineRepo
}

func newFakeOrderRepo(lines *fakeLineRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order), lines: lines}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) GetOpenByTable(ctx context.Context, tableNo int) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.TableNo == tableNo && order.Status == enum.OrderStatusOpen {
			cp := *order
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	cp.Lines, _ = r.lines.ListByOrder(ctx, id)
	return &cp, nil
}

func (r *fakeOrderRepo) Close(ctx context.Context, id uuid.UUID) error {
	if order, ok := r.orders[id]; ok {
		now := time.Now()
		order.Status = enum.OrderStatusClosed
		order.ClosedAt = &now
	}
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) ListOpen(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	for _, order := range r.orders {
		if order.Status == enum.OrderStatusOpen {
			out = append(out, *order)
		}
	}
	return out, nil
}

type fakeLineRepo struct {
	lines map[uuid.UUID]*entity.OrderLine
}

func newFakeLineRepo() *fakeLineRepo {
	return &fakeLineRepo{lines: make(map[uuid.UUID]*entity.OrderLine)}
}

func (r *fakeLineRepo) Create(ctx context.Context, line *entity.OrderLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	line.CreatedAt = time.Now()
	cp := *line
	r.lines[line.ID] = &cp
	return nil
}

func (r *fakeLineRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error) {
	line, ok := r.lines[id]
	if !ok {
		return nil, nil
	}
	cp := *line
	return &cp, nil
}

func (r *fakeLineRepo) FindMatch(ctx context.Context, orderID, itemID uuid.UUID, batchTag string) (*entity.OrderLine, error) {
	for _, line := range r.lines {
		if line.OrderID == orderID && line.ItemID == itemID && line.BatchTag == batchTag {
			cp := *line
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLineRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error) {
	var out []entity.OrderLine
	for _, line := range r.lines {
		if line.OrderID == orderID {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (r *fakeLineRepo) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	for _, line := range r.lines {
		if line.OrderID == orderID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLineRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	if line, ok := r.lines[id]; ok {
		line.Quantity = quantity
	}
	return nil
}

func (r *fakeLineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.lines, id)
	return nil
}

type fakeHistoryRepo struct {
	bills map[uuid.UUID]*entity.HistoryBill
	lines []entity.HistoryLine
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{bills: make(map[uuid.UUID]*entity.HistoryBill)}
}

func (r *fakeHistoryRepo) CreateBill(ctx context.Context, bill *entity.HistoryBill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	bill.CreatedAt = time.Now()
	cp := *bill
	cp.Lines = nil
	r.bills[bill.ID] = &cp
	return nil
}

func (r *fakeHistoryRepo) CreateLines(ctx context.Context, lines []entity.HistoryLine) error {
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
	}
	r.lines = append(r.lines, lines...)
	return nil
}

func (r *fakeHistoryRepo) GetBill(ctx context.Context, id uuid.UUID) (*entity.HistoryBill, error) {
	bill, ok := r.bills[id]
	if !ok {
		return nil, nil
	}
	cp := *bill
	return &cp, nil
}

func (r *fakeHistoryRepo) GetBillWithLines(ctx context.Context, id uuid.UUID) (*entity.HistoryBill, error) {
	bill, err := r.GetBill(ctx, id)
	if bill == nil || err != nil {
		return bill, err
	}
	for _, line := range r.lines {
		if line.BillID == id {
			bill.Lines = append(bill.Lines, line)
		}
	}
	return bill, nil
}

func (r *fakeHistoryRepo) ListBills(ctx context.Context, params *repository.HistoryFilterParams) ([]entity.HistoryBill, int64, error) {
	var out []entity.HistoryBill
	for _, bill := range r.bills {
		if params.TableNo != nil && bill.TableNo != *params.TableNo {
			continue
		}
		out = append(out, *bill)
	}
	return out, int64(len(out)), nil
}

func (r *fakeHistoryRepo) ListBillsInRange(ctx context.Context, from, to time.Time) ([]entity.HistoryBill, error) {
	var out []entity.HistoryBill
	for id, bill := range r.bills {
		if bill.ClosedAt.Before(from) || !bill.ClosedAt.Before(to) {
			continue
		}
		cp := *bill
		for _, line := range r.lines {
			if line.BillID == id {
				cp.Lines = append(cp.Lines, line)
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) List(ctx context.Context, params *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	var out []entity.Item
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

type fakePrinterRepo struct {
	printers map[uuid.UUID]*entity.Printer
}

func newFakePrinterRepo() *fakePrinterRepo {
	return &fakePrinterRepo{printers: make(map[uuid.UUID]*entity.Printer)}
}

func (r *fakePrinterRepo) Create(ctx context.Context, printer *entity.Printer) error {
	if printer.ID == uuid.Nil {
		printer.ID = uuid.New()
	}
	cp := *printer
	r.printers[printer.ID] = &cp
	return nil
}

func (r *fakePrinterRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Printer, error) {
	printer, ok := r.printers[id]
	if !ok {
		return nil, nil
	}
	cp := *printer
	return &cp, nil
}

func (r *fakePrinterRepo) GetByStation(ctx context.Context, station enum.PrinterStation) (*entity.Printer, error) {
	for _, printer := range r.printers {
		if printer.Station == station && printer.Active {
			cp := *printer
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePrinterRepo) Update(ctx context.Context, printer *entity.Printer) error {
	cp := *printer
	r.printers[printer.ID] = &cp
	return nil
}

func (r *fakePrinterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.printers, id)
	return nil
}

func (r *fakePrinterRepo) List(ctx context.Context) ([]entity.Printer, error) {
	var out []entity.Printer
	for _, printer := range r.printers {
		out = append(out, *printer)
	}
	return out, nil
}

type fakeShopRepo struct {
	shop *entity.Shop
}

func (r *fakeShopRepo) Get(ctx context.Context) (*entity.Shop, error) {
	if r.shop == nil {
		return nil, nil
	}
	cp := *r.shop
	return &cp, nil
}

func (r *fakeShopRepo) Save(ctx context.Context, shop *entity.Shop) error {
	cp := *shop
	r.shop = &cp
	return nil
}

// captureSender records queued print jobs instead of delivering them
type captureSender struct {
	mu   sync.Mutex
	jobs []printrelay.Message
}

func (s *captureSender) Enqueue(job printrelay.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

func (s *captureSender) sent() []printrelay.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]printrelay.Message(nil), s.jobs...)
}
