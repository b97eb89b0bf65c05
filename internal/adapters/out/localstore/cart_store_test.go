// internal/adapters/out/localstore/cart_store_test.go
package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "storefront/internal/domain/cart"
)

func storeAt(t *testing.T) *CartStore {
	t.Helper()
	return NewCartStore(filepath.Join(t.TempDir(), "mirror", "cart.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := storeAt(t)

	items := []cartdom.LineItem{
		{ProductID: "p1", Title: "widget", UnitPrice: decimal.RequireFromString("19.99"), Quantity: 2, Image: "w.png"},
		{ProductID: "p2", Title: "gadget", UnitPrice: decimal.RequireFromString("0.1"), Quantity: 1},
	}
	s.Save(items)

	got := s.Load()
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, "widget", got[0].Title)
	assert.True(t, got[0].UnitPrice.Equal(items[0].UnitPrice))
	assert.Equal(t, 2, got[0].Quantity)
	assert.True(t, got[1].UnitPrice.Equal(items[1].UnitPrice), "decimal text must round-trip without drift")
}

func TestLoadMissingFileIsEmptyCart(t *testing.T) {
	s := storeAt(t)
	assert.Empty(t, s.Load())
}

func TestLoadCorruptedMirrorIsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewCartStore(path)
	assert.Empty(t, s.Load())
}

func TestLoadDropsEntriesWithBadPrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	// 1e999999999 is a valid JSON number but overflows the decimal exponent
	payload := `[{"id":"p1","title":"ok","price":5,"quantity":1,"image":""},` +
		`{"id":"p2","title":"bad","price":1e999999999,"quantity":1,"image":""}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	got := NewCartStore(path).Load()
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProductID)
}

func TestSaveReplacesWholeFile(t *testing.T) {
	s := storeAt(t)

	s.Save([]cartdom.LineItem{
		{ProductID: "p1", UnitPrice: decimal.NewFromInt(1), Quantity: 1},
		{ProductID: "p2", UnitPrice: decimal.NewFromInt(2), Quantity: 1},
	})
	s.Save([]cartdom.LineItem{
		{ProductID: "p2", UnitPrice: decimal.NewFromInt(2), Quantity: 5},
	})

	got := s.Load()
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ProductID)
	assert.Equal(t, 5, got[0].Quantity)
}
