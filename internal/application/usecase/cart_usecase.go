// internal/application/usecase/cart_usecase.go
package usecase

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	cartdom "storefront/internal/domain/cart"
)

// CartUsecase is the cart engine: the in-memory authoritative cart state
// for one session. Every mutation is synchronous and side-effect-complete:
// the mirror write happens before the call returns.
//
// The mirror is best-effort (the store logs failures); cart usability
// never depends on persistence succeeding.
type CartUsecase struct {
	mu    sync.Mutex
	cart  *cartdom.Cart
	store cartdom.Store
}

// NewCartUsecase rehydrates the cart from the persisted mirror.
// A missing or corrupted mirror yields an empty cart (store contract).
func NewCartUsecase(store cartdom.Store) *CartUsecase {
	var items []cartdom.LineItem
	if store != nil {
		items = store.Load()
	}
	return &CartUsecase{
		cart:  cartdom.New(items),
		store: store,
	}
}

// AddItemInput carries product data as it arrives from the catalog.
// Price is string input; it is normalized to a decimal here, at the moment
// the item enters the cart.
type AddItemInput struct {
	ProductID string
	Title     string
	Price     string
	Image     string
}

// AddItem inserts the product with quantity 1 or increments the existing
// entry by 1.
func (u *CartUsecase) AddItem(in AddItemInput) error {
	price, err := cartdom.ParsePrice(in.Price)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.cart.Add(cartdom.LineItem{
		ProductID: strings.TrimSpace(in.ProductID),
		Title:     strings.TrimSpace(in.Title),
		UnitPrice: price,
		Image:     strings.TrimSpace(in.Image),
	}); err != nil {
		return err
	}

	u.persistLocked()
	return nil
}

// RemoveItem deletes the entry; absent is a no-op.
func (u *CartUsecase) RemoveItem(productID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.cart.Remove(productID)
	u.persistLocked()
}

// SetQuantity replaces the quantity exactly. quantity < 1 is rejected and
// the prior quantity preserved.
func (u *CartUsecase) SetQuantity(productID string, quantity int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.cart.SetQuantity(productID, quantity); err != nil {
		return err
	}
	u.persistLocked()
	return nil
}

// Clear empties the cart and persists the empty state.
func (u *CartUsecase) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.cart.Clear()
	u.persistLocked()
}

// Items returns a snapshot decoupled from future mutation.
func (u *CartUsecase) Items() []cartdom.LineItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cart.Snapshot()
}

// Total is the exact Σ(unitPrice × quantity).
func (u *CartUsecase) Total() decimal.Decimal {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cart.Total()
}

// DisplayTotal is Total rounded to 2 places (display/commit only).
func (u *CartUsecase) DisplayTotal() string {
	return u.Total().StringFixed(2)
}

// ItemCount is Σ(quantity).
func (u *CartUsecase) ItemCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cart.ItemCount()
}

// Size is the distinct product count.
func (u *CartUsecase) Size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cart.Size()
}

func (u *CartUsecase) persistLocked() {
	if u.store == nil {
		return
	}
	u.store.Save(u.cart.Snapshot())
}
