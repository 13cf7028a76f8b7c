package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

func sampleBill() *entity.HistoryBill {
	billID := uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000001")
	return &entity.HistoryBill{
		ID:            billID,
		OrderID:       uuid.New(),
		TableNo:       4,
		SubTotal:      3000,
		Discount:      500,
		ServiceCharge: true,
		ServiceAmount: 300,
		FinalAmount:   2800,
		PaymentMethod: enum.PaymentMethodCash,
		Note:          "window seat",
		ClosedAt:      time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC),
		Lines: []entity.HistoryLine{
			{ItemName: "Margherita", UnitPrice: 1000, Category: enum.ItemCategoryKOT, Quantity: 2, LineTotal: 2000},
			{ItemName: "Negroni", UnitPrice: 1000, Category: enum.ItemCategoryBOT, Quantity: 1, LineTotal: 1000},
		},
	}
}

func sampleShop() *entity.Shop {
	return &entity.Shop{
		Name:          "Trattoria Nonna",
		Address:       "12 Via Roma",
		Phone:         "555-0101",
		Currency:      "$",
		ReceiptFooter: "Grazie!",
	}
}

func TestBuildReceipt(t *testing.T) {
	bill := sampleBill()
	r := BuildReceipt(bill, sampleShop())

	assert.Equal(t, "A1B2C3D4", r.BillNo)
	assert.Equal(t, 4, r.TableNo)
	assert.Equal(t, "2025-03-14 19:30", r.Date)
	assert.Equal(t, "cash", r.PaymentMethod)
	assert.Equal(t, "Trattoria Nonna", r.Header.ShopName)
	assert.Equal(t, "Grazie!", r.Footer)

	assert.InDelta(t, 30.00, r.SubTotal, 0.001)
	assert.InDelta(t, 5.00, r.Discount, 0.001)
	assert.InDelta(t, 3.00, r.ServiceCharge, 0.001)
	assert.InDelta(t, 28.00, r.Total, 0.001)

	require.Len(t, r.Items, 2)
	assert.Equal(t, "Margherita", r.Items[0].Name)
	assert.Equal(t, 2, r.Items[0].Quantity)
	assert.InDelta(t, 10.00, r.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 20.00, r.Items[0].Total, 0.001)
}

func TestBuildReceipt_NoShopProfile(t *testing.T) {
	r := BuildReceipt(sampleBill(), nil)

	assert.Empty(t, r.Header.ShopName)
	assert.Empty(t, r.Currency)
	assert.Len(t, r.Items, 2)
}

func TestFormatReceipt(t *testing.T) {
	r := BuildReceipt(sampleBill(), sampleShop())
	data := FormatReceipt(r, 32)

	out := string(data)
	assert.Contains(t, out, "Trattoria Nonna")
	assert.Contains(t, out, "Margherita")
	assert.Contains(t, out, "Negroni")
	assert.Contains(t, out, "Service 10%")
	assert.Contains(t, out, "-5.00")
	assert.Contains(t, out, "$28.00")
	assert.Contains(t, out, "Grazie!")
	assert.Contains(t, out, "window seat")
}

func TestFormatReceipt_OmitsZeroAdjustments(t *testing.T) {
	bill := sampleBill()
	bill.Discount = 0
	bill.ServiceCharge = false
	bill.ServiceAmount = 0
	bill.FinalAmount = bill.SubTotal
	bill.Note = ""

	out := string(FormatReceipt(BuildReceipt(bill, sampleShop()), 32))
	assert.NotContains(t, out, "Service 10%")
	assert.NotContains(t, out, "Discount")
	assert.NotContains(t, out, "window seat")
}

func TestFormatTicket(t *testing.T) {
	ticket := &entity.Ticket{
		Station: "kitchen",
		TableNo: 9,
		Date:    "19:42",
		Items: []entity.ReceiptItem{
			{Name: "Lasagna", Quantity: 2, UnitPrice: 12.50},
		},
	}

	out := string(FormatTicket(ticket, 32))
	assert.Contains(t, out, "KITCHEN")
	assert.Contains(t, out, "2x Lasagna")
	assert.Contains(t, out, "19:42")
}

func TestRenderReceiptPDF(t *testing.T) {
	r := BuildReceipt(sampleBill(), sampleShop())

	data, err := RenderReceiptPDF(r)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
