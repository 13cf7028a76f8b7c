package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/pkg/apperror"
)

type settlementFixture struct {
	svc       *SettlementService
	orderRepo *fakeOrderRepo
	lineRepo  *fakeLineRepo
	history   *fakeHistoryRepo
	sender    *captureSender
}

func newSettlementFixture(t *testing.T) *settlementFixture {
	t.Helper()

	lineRepo := newFakeLineRepo()
	orderRepo := newFakeOrderRepo(lineRepo)
	history := newFakeHistoryRepo()
	sender := &captureSender{}

	shopRepo := &fakeShopRepo{shop: &entity.Shop{Name: "Trattoria Nonna", Currency: "$"}}
	printerSvc := NewPrinterService(newFakePrinterRepo(), shopRepo, sender, 32)

	return &settlementFixture{
		svc:       NewSettlementService(fakeTxManager{}, orderRepo, lineRepo, history, printerSvc),
		orderRepo: orderRepo,
		lineRepo:  lineRepo,
		history:   history,
		sender:    sender,
	}
}

// seedOrder creates an open order on the table with one line per item
// quantity pair, returning the order and its lines in insertion order.
func (f *settlementFixture) seedOrder(t *testing.T, tableNo int, items []entity.Item, quantities []int) (*entity.Order, []entity.OrderLine) {
	t.Helper()
	require.Equal(t, len(items), len(quantities))

	order := &entity.Order{TableNo: tableNo, Status: enum.OrderStatusOpen}
	require.NoError(t, f.orderRepo.Create(context.Background(), order))

	lines := make([]entity.OrderLine, 0, len(items))
	for i, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		line := &entity.OrderLine{
			OrderID:  order.ID,
			ItemID:   item.ID,
			Quantity: quantities[i],
			Item:     item,
		}
		require.NoError(t, f.lineRepo.Create(context.Background(), line))
		lines = append(lines, *line)
	}
	return order, lines
}

func TestSettlementService_Settle_FullSingleLine(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	order, lines := f.seedOrder(t, 4,
		[]entity.Item{{Name: "Margherita", Price: 1000, Category: enum.ItemCategoryKOT}},
		[]int{3},
	)

	bill, err := f.svc.Settle(ctx, &SettleInput{
		TableNo:       4,
		Selections:    []Selection{{LineID: lines[0].ID, Quantity: 3}},
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3000), bill.SubTotal)
	assert.Equal(t, int64(0), bill.Discount)
	assert.Equal(t, int64(0), bill.ServiceAmount)
	assert.Equal(t, int64(3000), bill.FinalAmount)
	assert.Equal(t, 4, bill.TableNo)
	assert.Equal(t, enum.PaymentMethodCash, bill.PaymentMethod)

	require.Len(t, bill.Lines, 1)
	assert.Equal(t, "Margherita", bill.Lines[0].ItemName)
	assert.Equal(t, int64(1000), bill.Lines[0].UnitPrice)
	assert.Equal(t, 3, bill.Lines[0].Quantity)
	assert.Equal(t, int64(3000), bill.Lines[0].LineTotal)

	// Last line settled: the line is gone and the order is closed.
	remaining, err := f.lineRepo.CountByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	stored, err := f.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusClosed, stored.Status)
	assert.NotNil(t, stored.ClosedAt)
}

func TestSettlementService_Settle_PartialWithServiceCharge(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	order, lines := f.seedOrder(t, 7,
		[]entity.Item{{Name: "Negroni", Price: 1000, Category: enum.ItemCategoryBOT}},
		[]int{3},
	)

	bill, err := f.svc.Settle(ctx, &SettleInput{
		TableNo:       7,
		Selections:    []Selection{{LineID: lines[0].ID, Quantity: 2}},
		ServiceCharge: true,
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), bill.SubTotal)
	assert.Equal(t, int64(200), bill.ServiceAmount)
	assert.Equal(t, int64(2200), bill.FinalAmount)

	// One unit left on the line, order still open.
	line, err := f.lineRepo.GetByID(ctx, lines[0].ID)
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, 1, line.Quantity)

	stored, err := f.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusOpen, stored.Status)
}

func TestSettlementService_Settle_ExcessQuantityRejected(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	order, lines := f.seedOrder(t, 2,
		[]entity.Item{{Name: "Espresso", Price: 300, Category: enum.ItemCategoryBOT}},
		[]int{3},
	)

	_, err := f.svc.Settle(ctx, &SettleInput{
		TableNo:       2,
		Selections:    []Selection{{LineID: lines[0].ID, Quantity: 4}},
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	// Nothing was written or mutated.
	assert.Empty(t, f.history.bills)
	line, err := f.lineRepo.GetByID(ctx, lines[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)

	stored, err := f.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusOpen, stored.Status)
	assert.Empty(t, f.sender.sent())
}

func TestSettlementService_Settle_ValidationFailures(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	_, lines := f.seedOrder(t, 5,
		[]entity.Item{{Name: "Carbonara", Price: 1400, Category: enum.ItemCategoryKOT}},
		[]int{2},
	)

	tests := []struct {
		name     string
		input    *SettleInput
		wantCode int
	}{
		{
			name: "empty_selections",
			input: &SettleInput{
				TableNo:       5,
				PaymentMethod: enum.PaymentMethodCash,
			},
			wantCode: 400,
		},
		{
			name: "unknown_payment_method",
			input: &SettleInput{
				TableNo:       5,
				Selections:    []Selection{{LineID: lines[0].ID, Quantity: 1}},
				PaymentMethod: enum.PaymentMethod("cheque"),
			},
			wantCode: 400,
		},
		{
			name: "negative_discount",
			input: &SettleInput{
				TableNo:       5,
				Selections:    []Selection{{LineID: lines[0].ID, Quantity: 1}},
				Discount:      -1,
				PaymentMethod: enum.PaymentMethodCash,
			},
			wantCode: 400,
		},
		{
			name: "zero_quantity",
			input: &SettleInput{
				TableNo:       5,
				Selections:    []Selection{{LineID: lines[0].ID, Quantity: 0}},
				PaymentMethod: enum.PaymentMethodCash,
			},
			wantCode: 400,
		},
		{
			name: "duplicate_line_selection",
			input: &SettleInput{
				TableNo: 5,
				Selections: []Selection{
					{LineID: lines[0].ID, Quantity: 1},
					{LineID: lines[0].ID, Quantity: 1},
				},
				PaymentMethod: enum.PaymentMethodCash,
			},
			wantCode: 400,
		},
		{
			name: "unknown_line",
			input: &SettleInput{
				TableNo:       5,
				Selections:    []Selection{{LineID: uuid.New(), Quantity: 1}},
				PaymentMethod: enum.PaymentMethodCash,
			},
			wantCode: 404,
		},
		{
			name: "no_open_order",
			input: &SettleInput{
				TableNo:       99,
				Selections:    []Selection{{LineID: lines[0].ID, Quantity: 1}},
				PaymentMethod: enum.PaymentMethodCash,
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Settle(ctx, tt.input)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Empty(t, f.history.bills)
		})
	}

	// The rejected attempts changed nothing.
	line, err := f.lineRepo.GetByID(ctx, lines[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
}

func TestSettlementService_Settle_DiscountNotClamped(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	_, lines := f.seedOrder(t, 3,
		[]entity.Item{{Name: "Limoncello", Price: 500, Category: enum.ItemCategoryBOT}},
		[]int{1},
	)

	bill, err := f.svc.Settle(ctx, &SettleInput{
		TableNo:       3,
		Selections:    []Selection{{LineID: lines[0].ID, Quantity: 1}},
		Discount:      10.00,
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(500), bill.SubTotal)
	assert.Equal(t, int64(1000), bill.Discount)
	assert.Equal(t, int64(-500), bill.FinalAmount)
}

func TestSettlementService_Settle_MixedLines(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	order, lines := f.seedOrder(t, 8,
		[]entity.Item{
			{Name: "Lasagna", Price: 1250, Category: enum.ItemCategoryKOT},
			{Name: "House Red", Price: 600, Category: enum.ItemCategoryBOT},
		},
		[]int{2, 4},
	)

	// Settle all of the lasagna and half of the wine.
	bill, err := f.svc.Settle(ctx, &SettleInput{
		TableNo: 8,
		Selections: []Selection{
			{LineID: lines[0].ID, Quantity: 2},
			{LineID: lines[1].ID, Quantity: 2},
		},
		PaymentMethod: enum.PaymentMethodUPI,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2500+1200), bill.SubTotal)
	require.Len(t, bill.Lines, 2)

	// Lasagna line fully consumed, wine line decremented.
	gone, err := f.lineRepo.GetByID(ctx, lines[0].ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	wine, err := f.lineRepo.GetByID(ctx, lines[1].ID)
	require.NoError(t, err)
	require.NotNil(t, wine)
	assert.Equal(t, 2, wine.Quantity)

	stored, err := f.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusOpen, stored.Status)
}

func TestSettlementService_SettleAll(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	order, _ := f.seedOrder(t, 6,
		[]entity.Item{
			{Name: "Tiramisu", Price: 700, Category: enum.ItemCategoryKOT},
			{Name: "Americano", Price: 350, Category: enum.ItemCategoryBOT},
		},
		[]int{1, 2},
	)

	bill, err := f.svc.SettleAll(ctx, &SettleInput{
		TableNo:       6,
		ServiceCharge: true,
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1400), bill.SubTotal)
	assert.Equal(t, int64(140), bill.ServiceAmount)
	assert.Equal(t, int64(1540), bill.FinalAmount)
	assert.Len(t, bill.Lines, 2)

	remaining, err := f.lineRepo.CountByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	stored, err := f.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusClosed, stored.Status)
}

func TestSettlementService_SettleAll_NoOpenOrder(t *testing.T) {
	f := newSettlementFixture(t)

	_, err := f.svc.SettleAll(context.Background(), &SettleInput{
		TableNo:       12,
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, apperror.ErrNoOpenOrder)
}

func TestSettlementService_Settle_QueuesReceiptPrint(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	_, lines := f.seedOrder(t, 9,
		[]entity.Item{{Name: "Bruschetta", Price: 650, Category: enum.ItemCategoryKOT}},
		[]int{1},
	)

	printerRepo := newFakePrinterRepo()
	require.NoError(t, printerRepo.Create(ctx, &entity.Printer{
		Name:    "Front Desk",
		Address: "192.168.1.50:9100",
		Station: enum.StationReceipt,
		Active:  true,
	}))
	shopRepo := &fakeShopRepo{shop: &entity.Shop{Name: "Trattoria Nonna", Currency: "$"}}
	f.svc.printerSvc = NewPrinterService(printerRepo, shopRepo, f.sender, 32)

	_, err := f.svc.Settle(ctx, &SettleInput{
		TableNo:       9,
		Selections:    []Selection{{LineID: lines[0].ID, Quantity: 1}},
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	jobs := f.sender.sent()
	require.Len(t, jobs, 1)
	assert.Equal(t, "192.168.1.50:9100", jobs[0].PrinterAddr)
	assert.NotEmpty(t, jobs[0].Data)
}
