// internal/application/usecase/product_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	"storefront/internal/domain/apperr"
	categorydom "storefront/internal/domain/category"
	principaldom "storefront/internal/domain/principal"
	productdom "storefront/internal/domain/product"
)

// ProductUsecase coordinates catalog operations.
type ProductUsecase struct {
	repo       productdom.Repository
	categories categorydom.Repository
	clock      Clock
}

func NewProductUsecase(repo productdom.Repository, categories categorydom.Repository) *ProductUsecase {
	return &ProductUsecase{
		repo:       repo,
		categories: categories,
		clock:      systemClock{},
	}
}

// NewProductUsecaseWithClock is useful for tests.
func NewProductUsecaseWithClock(repo productdom.Repository, categories categorydom.Repository, clock Clock) *ProductUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &ProductUsecase{repo: repo, categories: categories, clock: clock}
}

// List returns the full catalog.
func (u *ProductUsecase) List(ctx context.Context) ([]productdom.Product, error) {
	return u.repo.List(ctx)
}

// Add creates a product for the signed-in principal.
//
// Title uniqueness is an existence probe followed by the insert
// (check-then-insert; the remote service stays the source of truth).
// The category counter update is best-effort: its failure is logged and
// the product add still succeeds.
func (u *ProductUsecase) Add(ctx context.Context, by *principaldom.Principal, p productdom.Product) (productdom.Product, error) {
	if by == nil {
		return productdom.Product{}, apperr.Unauthenticated("please sign in to add products")
	}

	p.Normalize()
	if err := p.Validate(); err != nil {
		return productdom.Product{}, err
	}

	existing, err := u.repo.FindByTitle(ctx, p.Title)
	if err != nil {
		return productdom.Product{}, err
	}
	if existing != nil {
		return productdom.Product{}, apperr.Validation("product with this title already exists")
	}

	now := u.clock.Now().UTC()
	p.Quantity = 1
	p.AddedBy = productdom.AddedBy{UID: by.UID, Email: by.Email}
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return productdom.Product{}, err
	}

	if u.categories != nil {
		if err := u.categories.IncrementOrCreate(ctx, created.Category, now); err != nil {
			log.Printf("[product_usecase] WARN: category update failed, product still added: %v", err)
		}
	}

	return created, nil
}

// Edit updates an existing product for the signed-in principal.
func (u *ProductUsecase) Edit(ctx context.Context, by *principaldom.Principal, id string, p productdom.Product) (productdom.Product, error) {
	if by == nil {
		return productdom.Product{}, apperr.Unauthenticated("please sign in to edit products")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, apperr.Validation("product id is required")
	}

	p.ID = id
	p.Normalize()
	if err := p.Validate(); err != nil {
		return productdom.Product{}, err
	}

	p.AddedBy = productdom.AddedBy{UID: by.UID, Email: by.Email}
	p.UpdatedAt = u.clock.Now().UTC()

	return u.repo.Update(ctx, p)
}
