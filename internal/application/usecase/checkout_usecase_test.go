// internal/application/usecase/checkout_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/apperr"
	orderdom "storefront/internal/domain/order"
	principaldom "storefront/internal/domain/principal"
)

func signedInCheckout(repo *fakeOrderRepo) (*CheckoutUsecase, *principaldom.Watcher) {
	watcher := principaldom.NewWatcher()
	u := NewCheckoutUsecase(newOrderUsecase(repo), watcher)
	watcher.Publish(&principaldom.Principal{UID: "u1", Email: "u1@example.com"})
	return u, watcher
}

func TestCheckoutRequiresPrincipal(t *testing.T) {
	repo := &fakeOrderRepo{}
	watcher := principaldom.NewWatcher()
	u := NewCheckoutUsecase(newOrderUsecase(repo), watcher)

	cart := NewCartUsecase(nil)
	require.NoError(t, cart.AddItem(addInput("p1", "100")))

	_, err := u.Checkout(context.Background(), cart)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))
	assert.Equal(t, 0, repo.createCalls)
	assert.Equal(t, 1, cart.Size(), "cart must survive a rejected checkout")
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	repo := &fakeOrderRepo{}
	u, _ := signedInCheckout(repo)

	_, err := u.Checkout(context.Background(), NewCartUsecase(nil))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 0, repo.createCalls)
}

func TestCheckoutAtomicity(t *testing.T) {
	repo := &fakeOrderRepo{
		createFn: func(context.Context, orderdom.Order) (orderdom.Order, error) {
			return orderdom.Order{}, apperr.Remote("failed to create order", errors.New("unavailable"))
		},
	}
	u, _ := signedInCheckout(repo)

	cart := NewCartUsecase(nil)
	require.NoError(t, cart.AddItem(addInput("a", "100")))
	require.NoError(t, cart.AddItem(addInput("a", "100")))

	_, err := u.Checkout(context.Background(), cart)
	assert.True(t, apperr.IsKind(err, apperr.KindRemote))

	// cart intact, no cached order
	assert.Equal(t, 1, cart.Size())
	assert.Equal(t, 2, cart.ItemCount())
	assert.Len(t, u.orders.Orders(), 0)
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	repo := &fakeOrderRepo{}
	u, _ := signedInCheckout(repo)

	cart := NewCartUsecase(nil)
	require.NoError(t, cart.AddItem(addInput("a", "100")))
	require.NoError(t, cart.SetQuantity("a", 2))

	created, err := u.Checkout(context.Background(), cart)
	require.NoError(t, err)

	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, orderdom.StatusPending, created.Status)
	assert.Equal(t, "200.00", created.Total.StringFixed(2))
	require.Len(t, created.Items, 1)
	assert.Equal(t, 2, created.Items[0].Quantity)

	assert.Equal(t, 0, cart.Size(), "cart clears only after remote success")

	cached := u.orders.Orders()
	require.Len(t, cached, 1)
	assert.Equal(t, created.ID, cached[0].ID)
}

func TestCheckoutFollowsSignOut(t *testing.T) {
	repo := &fakeOrderRepo{}
	u, watcher := signedInCheckout(repo)

	watcher.Publish(nil)

	cart := NewCartUsecase(nil)
	require.NoError(t, cart.AddItem(addInput("p1", "10")))

	_, err := u.Checkout(context.Background(), cart)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))
}

func TestSubscribeFiresImmediately(t *testing.T) {
	watcher := principaldom.NewWatcher()
	watcher.Publish(&principaldom.Principal{UID: "u9"})

	u := NewCheckoutUsecase(newOrderUsecase(&fakeOrderRepo{}), watcher)

	p := u.Principal()
	require.NotNil(t, p)
	assert.Equal(t, "u9", p.UID)
}
