// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/apperr"
	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	principaldom "storefront/internal/domain/principal"
)

// CheckoutUsecase is the reconciliation coordinator: it hands a cart off
// to the order lifecycle engine and clears the cart only after the remote
// service confirmed the order. It subscribes once to the principal watcher
// and keeps an explicit current-principal field.
type CheckoutUsecase struct {
	orders *OrderUsecase

	mu        sync.RWMutex
	principal *principaldom.Principal
}

func NewCheckoutUsecase(orders *OrderUsecase, watcher *principaldom.Watcher) *CheckoutUsecase {
	u := &CheckoutUsecase{orders: orders}
	if watcher != nil {
		watcher.Subscribe(u.setPrincipal)
	}
	return u
}

func (u *CheckoutUsecase) setPrincipal(p *principaldom.Principal) {
	u.mu.Lock()
	u.principal = p
	u.mu.Unlock()
}

// Principal returns the current principal (nil when signed out).
func (u *CheckoutUsecase) Principal() *principaldom.Principal {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.principal
}

// Checkout converts the cart into a pending order.
//
// Sequencing is the core correctness property:
//  1. auth and empty-cart checks fail before any remote call
//  2. items are snapshotted, so a cart mutation mid-checkout cannot leak
//     into the order
//  3. the total is computed from the snapshot, not the live cart
//  4. the cart is cleared only after the remote create succeeded; on
//     failure it is left intact so the user can retry
func (u *CheckoutUsecase) Checkout(ctx context.Context, cart *CartUsecase) (orderdom.Order, error) {
	p := u.Principal()
	if p == nil {
		return orderdom.Order{}, apperr.Unauthenticated("please sign in to place an order")
	}

	items := cart.Items()
	if len(items) == 0 {
		return orderdom.Order{}, apperr.Validation("your cart is empty")
	}

	snapshot := snapshotItems(items)
	total := snapshotTotal(snapshot)

	created, err := u.orders.Create(ctx, p.UID, snapshot, total)
	if err != nil {
		return orderdom.Order{}, err
	}

	cart.Clear()
	return created, nil
}

func snapshotItems(items []cartdom.LineItem) []orderdom.ItemSnapshot {
	out := make([]orderdom.ItemSnapshot, 0, len(items))
	for _, it := range items {
		out = append(out, orderdom.ItemSnapshot{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.UnitPrice,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return out
}

// snapshotTotal rounds to 2 places at the point of commit.
func snapshotTotal(items []orderdom.ItemSnapshot) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2)
}
