// internal/application/usecase/cart_usecase_test.go
package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/apperr"
	cartdom "storefront/internal/domain/cart"
)

func addInput(id, price string) AddItemInput {
	return AddItemInput{ProductID: id, Title: "item " + id, Price: price}
}

func TestCartUsecaseRehydratesFromStore(t *testing.T) {
	store := &fakeStore{loaded: []cartdom.LineItem{
		{ProductID: "p1", Title: "widget", UnitPrice: decimal.RequireFromString("9.99"), Quantity: 2},
	}}

	u := NewCartUsecase(store)

	assert.Equal(t, 1, u.Size())
	assert.Equal(t, 2, u.ItemCount())
	assert.Equal(t, "19.98", u.DisplayTotal())
}

func TestCartUsecasePersistsOnEveryMutation(t *testing.T) {
	store := &fakeStore{}
	u := NewCartUsecase(store)

	require.NoError(t, u.AddItem(addInput("p1", "10.00")))
	require.NoError(t, u.AddItem(addInput("p2", "5.00")))
	require.NoError(t, u.SetQuantity("p1", 3))
	u.RemoveItem("p2")
	u.Clear()

	require.Len(t, store.saves, 5)
	assert.Len(t, store.lastSave(), 0)

	// the save after SetQuantity reflects the new quantity
	third := store.saves[2]
	require.Len(t, third, 2)
	assert.Equal(t, 3, third[0].Quantity)
}

func TestCartUsecaseRejectsBadPriceBeforeMutating(t *testing.T) {
	store := &fakeStore{}
	u := NewCartUsecase(store)

	err := u.AddItem(addInput("p1", "banana"))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 0, u.Size())
	assert.Len(t, store.saves, 0, "a rejected add must not persist")
}

func TestCartUsecaseQuantityFloorKeepsPriorState(t *testing.T) {
	store := &fakeStore{}
	u := NewCartUsecase(store)

	require.NoError(t, u.AddItem(addInput("p1", "10.00")))
	require.NoError(t, u.SetQuantity("p1", 2))

	err := u.SetQuantity("p1", 0)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 2, u.ItemCount())
	require.Len(t, store.saves, 2, "a rejected update must not persist")
}

func TestCartUsecaseWorksWithoutStore(t *testing.T) {
	u := NewCartUsecase(nil)
	require.NoError(t, u.AddItem(addInput("p1", "1.50")))
	assert.Equal(t, "1.50", u.DisplayTotal())
}
