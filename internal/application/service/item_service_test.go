package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

type fakeSubcategoryRepo struct {
	subs map[uuid.UUID]*entity.Subcategory
}

func newFakeSubcategoryRepo() *fakeSubcategoryRepo {
	return &fakeSubcategoryRepo{subs: make(map[uuid.UUID]*entity.Subcategory)}
}

func (r *fakeSubcategoryRepo) Create(ctx context.Context, sub *entity.Subcategory) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	cp := *sub
	r.subs[sub.ID] = &cp
	return nil
}

func (r *fakeSubcategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	sub, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (r *fakeSubcategoryRepo) GetByName(ctx context.Context, name string) (*entity.Subcategory, error) {
	for _, sub := range r.subs {
		if sub.Name == name {
			cp := *sub
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSubcategoryRepo) Update(ctx context.Context, sub *entity.Subcategory) error {
	cp := *sub
	r.subs[sub.ID] = &cp
	return nil
}

func (r *fakeSubcategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.subs, id)
	return nil
}

func (r *fakeSubcategoryRepo) List(ctx context.Context) ([]entity.Subcategory, error) {
	var out []entity.Subcategory
	for _, sub := range r.subs {
		out = append(out, *sub)
	}
	return out, nil
}

func TestItemService_CreateItem(t *testing.T) {
	subRepo := newFakeSubcategoryRepo()
	svc := NewItemService(newFakeItemRepo(), subRepo)
	ctx := context.Background()

	sub := &entity.Subcategory{Name: "Pizza"}
	require.NoError(t, subRepo.Create(ctx, sub))

	item, err := svc.CreateItem(ctx, &CreateItemInput{
		Name:          "Margherita",
		Price:         10.50,
		Category:      enum.ItemCategoryKOT,
		SubcategoryID: &sub.ID,
	})
	require.NoError(t, err)

	// Decimal input stored as cents.
	assert.Equal(t, int64(1050), item.Price)
	assert.True(t, item.Active)
	assert.Equal(t, &sub.ID, item.SubcategoryID)
}

func TestItemService_CreateItem_Rejections(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), newFakeSubcategoryRepo())
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, &CreateItemInput{
		Name:     "Mystery",
		Price:    5,
		Category: enum.ItemCategory("dessert"),
	})
	require.Error(t, err)

	missing := uuid.New()
	_, err = svc.CreateItem(ctx, &CreateItemInput{
		Name:          "Margherita",
		Price:         10,
		Category:      enum.ItemCategoryKOT,
		SubcategoryID: &missing,
	})
	require.Error(t, err)
}

func TestItemService_UpdateItem_PriceAndDeactivation(t *testing.T) {
	itemRepo := newFakeItemRepo()
	svc := NewItemService(itemRepo, newFakeSubcategoryRepo())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, &CreateItemInput{
		Name:     "Espresso",
		Price:    3.00,
		Category: enum.ItemCategoryBOT,
	})
	require.NoError(t, err)

	newPrice := 3.50
	inactive := false
	updated, err := svc.UpdateItem(ctx, item.ID, &UpdateItemInput{
		Price:  &newPrice,
		Active: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(350), updated.Price)
	assert.False(t, updated.Active)

	_, err = svc.UpdateItem(ctx, uuid.New(), &UpdateItemInput{Price: &newPrice})
	require.Error(t, err)
}

func TestHistoryService_GetBillAndPDF(t *testing.T) {
	history := newFakeHistoryRepo()
	shopRepo := &fakeShopRepo{shop: &entity.Shop{Name: "Trattoria Nonna", Currency: "$"}}
	svc := NewHistoryService(history, shopRepo)
	ctx := context.Background()

	bill := sampleBill()
	lines := bill.Lines
	require.NoError(t, history.CreateBill(ctx, bill))
	for i := range lines {
		lines[i].BillID = bill.ID
	}
	require.NoError(t, history.CreateLines(ctx, lines))

	got, err := svc.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, got.ID)
	assert.Len(t, got.Lines, 2)

	pdf, err := svc.BillPDF(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	_, err = svc.GetBill(ctx, uuid.New())
	require.Error(t, err)
}

func TestShopService_UpdateShop(t *testing.T) {
	shopRepo := &fakeShopRepo{shop: &entity.Shop{Name: "Old Name", Currency: "$"}}
	svc := NewShopService(shopRepo)
	ctx := context.Background()

	name := "Trattoria Nonna"
	footer := "Grazie!"
	shop, err := svc.UpdateShop(ctx, &UpdateShopInput{Name: &name, ReceiptFooter: &footer})
	require.NoError(t, err)
	assert.Equal(t, "Trattoria Nonna", shop.Name)
	assert.Equal(t, "Grazie!", shop.ReceiptFooter)
	// Untouched fields survive a partial update.
	assert.Equal(t, "$", shop.Currency)
}

func TestSubcategoryService_DuplicateName(t *testing.T) {
	svc := NewSubcategoryService(newFakeSubcategoryRepo())
	ctx := context.Background()

	_, err := svc.CreateSubcategory(ctx, "Pizza")
	require.NoError(t, err)

	_, err = svc.CreateSubcategory(ctx, "Pizza")
	require.Error(t, err)
}
