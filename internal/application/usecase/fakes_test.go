// internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"time"

	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

// fixedClock pins Now for deterministic assertions.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeStore records every Save and serves a canned Load.
type fakeStore struct {
	loaded []cartdom.LineItem
	saves  [][]cartdom.LineItem
}

func (s *fakeStore) Load() []cartdom.LineItem { return s.loaded }

func (s *fakeStore) Save(items []cartdom.LineItem) {
	s.saves = append(s.saves, items)
}

func (s *fakeStore) lastSave() []cartdom.LineItem {
	if len(s.saves) == 0 {
		return nil
	}
	return s.saves[len(s.saves)-1]
}

// fakeOrderRepo delegates to optional func fields; unset fields succeed
// with zero-ish defaults. createCalls counts remote create attempts.
type fakeOrderRepo struct {
	createFn     func(ctx context.Context, o orderdom.Order) (orderdom.Order, error)
	updateFn     func(ctx context.Context, id string, st orderdom.Status, reason string, at time.Time) error
	deleteFn     func(ctx context.Context, id string) error
	listFn       func(ctx context.Context, userID string, limit int) ([]orderdom.Order, error)
	createCalls  int
	updateCalls  int
	deleteCalls  int
	lastListUser string
	lastListLim  int
}

func (r *fakeOrderRepo) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	r.createCalls++
	if r.createFn != nil {
		return r.createFn(ctx, o)
	}
	o.ID = "order-1"
	return o, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, st orderdom.Status, reason string, at time.Time) error {
	r.updateCalls++
	if r.updateFn != nil {
		return r.updateFn(ctx, id, st, reason, at)
	}
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	r.deleteCalls++
	if r.deleteFn != nil {
		return r.deleteFn(ctx, id)
	}
	return nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID string, limit int) ([]orderdom.Order, error) {
	r.lastListUser = userID
	r.lastListLim = limit
	if r.listFn != nil {
		return r.listFn(ctx, userID, limit)
	}
	return nil, nil
}

// fakeProductRepo delegates to optional func fields.
type fakeProductRepo struct {
	listFn        func(ctx context.Context) ([]productdom.Product, error)
	getFn         func(ctx context.Context, id string) (productdom.Product, error)
	findByTitleFn func(ctx context.Context, title string) (*productdom.Product, error)
	createFn      func(ctx context.Context, p productdom.Product) (productdom.Product, error)
	updateFn      func(ctx context.Context, p productdom.Product) (productdom.Product, error)
}

func (r *fakeProductRepo) List(ctx context.Context) ([]productdom.Product, error) {
	if r.listFn != nil {
		return r.listFn(ctx)
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r.getFn != nil {
		return r.getFn(ctx, id)
	}
	return productdom.Product{}, productdom.ErrNotFound
}

func (r *fakeProductRepo) FindByTitle(ctx context.Context, title string) (*productdom.Product, error) {
	if r.findByTitleFn != nil {
		return r.findByTitleFn(ctx, title)
	}
	return nil, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if r.createFn != nil {
		return r.createFn(ctx, p)
	}
	p.ID = "prod-1"
	return p, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if r.updateFn != nil {
		return r.updateFn(ctx, p)
	}
	return p, nil
}

// fakeCategoryRepo records the incremented names.
type fakeCategoryRepo struct {
	incrementFn func(ctx context.Context, name string, now time.Time) error
	names       []string
}

func (r *fakeCategoryRepo) IncrementOrCreate(ctx context.Context, name string, now time.Time) error {
	r.names = append(r.names, name)
	if r.incrementFn != nil {
		return r.incrementFn(ctx, name, now)
	}
	return nil
}
