// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	orderdom "storefront/internal/domain/order"
)

// FetchPageSize caps the order list page (createdAt desc).
const FetchPageSize = 20

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// OrderUsecase is the order lifecycle engine. It holds a read-through
// cache of the current user's orders, most-recent-first, and enforces the
// client-side transition guards before any remote mutation is attempted.
//
// Every mutation is two-phase: (a) issue the remote call, (b) apply the
// transition to the cache only after remote success. A remote failure
// leaves the cache untouched, so the cache never reflects a transition the
// remote service did not confirm.
type OrderUsecase struct {
	repo  orderdom.Repository
	clock Clock

	mu          sync.Mutex
	cache       []orderdom.Order
	cacheUserID string
}

func NewOrderUsecase(repo orderdom.Repository) *OrderUsecase {
	return &OrderUsecase{
		repo:  repo,
		clock: systemClock{},
	}
}

// NewOrderUsecaseWithClock is useful for tests.
func NewOrderUsecaseWithClock(repo orderdom.Repository, clock Clock) *OrderUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &OrderUsecase{repo: repo, clock: clock}
}

// Create validates input, stores the order remotely, and on success puts
// the new pending order at the front of the cache (most-recent-first is
// the display convention). Validation failures are raised before any
// remote call.
func (u *OrderUsecase) Create(ctx context.Context, userID string, items []orderdom.ItemSnapshot, total decimal.Decimal) (orderdom.Order, error) {
	o, err := orderdom.New(userID, items, total, u.clock.Now())
	if err != nil {
		return orderdom.Order{}, err
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return orderdom.Order{}, err
	}

	u.mu.Lock()
	u.cache = append([]orderdom.Order{created}, u.cache...)
	u.mu.Unlock()

	return created, nil
}

// Cancel moves a cached pending order to cancelled.
func (u *OrderUsecase) Cancel(ctx context.Context, id string) (orderdom.Order, error) {
	return u.transition(ctx, id, func(o *orderdom.Order, now time.Time) error {
		return o.Cancel(now)
	})
}

// Fulfill moves a cached pending order to completed.
func (u *OrderUsecase) Fulfill(ctx context.Context, id string) (orderdom.Order, error) {
	return u.transition(ctx, id, func(o *orderdom.Order, now time.Time) error {
		return o.Fulfill(now)
	})
}

// Return moves a cached completed order to returned with a reason.
func (u *OrderUsecase) Return(ctx context.Context, id, reason string) (orderdom.Order, error) {
	return u.transition(ctx, id, func(o *orderdom.Order, now time.Time) error {
		return o.Return(reason, now)
	})
}

// transition runs the guard on a copy of the cached order, issues the
// remote mutation, and only then stores the copy back into the cache.
func (u *OrderUsecase) transition(ctx context.Context, id string, apply func(*orderdom.Order, time.Time) error) (orderdom.Order, error) {
	id = strings.TrimSpace(id)

	u.mu.Lock()
	idx := u.indexOfLocked(id)
	if idx < 0 {
		u.mu.Unlock()
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	next := u.cache[idx]
	u.mu.Unlock()

	now := u.clock.Now()
	if err := apply(&next, now); err != nil {
		return orderdom.Order{}, err
	}

	if err := u.repo.UpdateStatus(ctx, id, next.Status, next.ReturnReason, next.UpdatedAt); err != nil {
		return orderdom.Order{}, err
	}

	u.mu.Lock()
	if idx := u.indexOfLocked(id); idx >= 0 {
		u.cache[idx] = next
	}
	u.mu.Unlock()

	return next, nil
}

// Delete removes a cached pending order remotely, then drops it from the
// cache.
func (u *OrderUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	u.mu.Lock()
	idx := u.indexOfLocked(id)
	if idx < 0 {
		u.mu.Unlock()
		return orderdom.ErrNotFound
	}
	o := u.cache[idx]
	u.mu.Unlock()

	if err := o.Deletable(); err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}

	u.mu.Lock()
	if idx := u.indexOfLocked(id); idx >= 0 {
		u.cache = append(u.cache[:idx], u.cache[idx+1:]...)
	}
	u.mu.Unlock()

	return nil
}

// Fetch replaces the entire cache with the remote result set (full
// replace, not a merge: orders outside the page window are dropped).
func (u *OrderUsecase) Fetch(ctx context.Context, userID string) ([]orderdom.Order, error) {
	uid := strings.TrimSpace(userID)

	list, err := u.repo.ListByUser(ctx, uid, FetchPageSize)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.cache = list
	u.cacheUserID = uid
	u.mu.Unlock()

	return u.Orders(), nil
}

// Orders returns a snapshot of the cache, most-recent-first.
func (u *OrderUsecase) Orders() []orderdom.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]orderdom.Order, len(u.cache))
	copy(out, u.cache)
	return out
}

func (u *OrderUsecase) indexOfLocked(id string) int {
	for i := range u.cache {
		if u.cache[i].ID == id {
			return i
		}
	}
	return -1
}
