package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationFor(t *testing.T) {
	assert.Equal(t, StationKitchen, StationFor(ItemCategoryKOT))
	assert.Equal(t, StationBar, StationFor(ItemCategoryBOT))
}

func TestValidity(t *testing.T) {
	assert.True(t, ItemCategoryKOT.Valid())
	assert.True(t, ItemCategoryBOT.Valid())
	assert.False(t, ItemCategory("dessert").Valid())

	assert.True(t, OrderStatusOpen.Valid())
	assert.True(t, OrderStatusClosed.Valid())
	assert.False(t, OrderStatus("pending").Valid())

	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentMethodCard.Valid())
	assert.True(t, PaymentMethodUPI.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())

	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.True(t, RoleWaiter.Valid())
	assert.False(t, UserRole("owner").Valid())

	assert.True(t, StationKitchen.Valid())
	assert.True(t, StationBar.Valid())
	assert.True(t, StationReceipt.Valid())
	assert.False(t, PrinterStation("office").Valid())
}

func TestOrderStatusScan(t *testing.T) {
	var s OrderStatus
	assert.NoError(t, s.Scan("closed"))
	assert.Equal(t, OrderStatusClosed, s)

	assert.NoError(t, s.Scan([]byte("open")))
	assert.Equal(t, OrderStatusOpen, s)

	assert.NoError(t, s.Scan(nil))
	assert.Equal(t, OrderStatusOpen, s)
}
