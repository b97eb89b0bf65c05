// internal/application/usecase/product_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/apperr"
	principaldom "storefront/internal/domain/principal"
	productdom "storefront/internal/domain/product"
)

var seller = &principaldom.Principal{UID: "u1", Email: "u1@example.com"}

func validProduct() productdom.Product {
	return productdom.Product{
		Title:    "  Widget  ",
		Price:    "19.99",
		Category: "tools",
	}
}

func newProductUsecase(repo *fakeProductRepo, cats *fakeCategoryRepo) *ProductUsecase {
	return NewProductUsecaseWithClock(repo, cats, fixedClock{t: testNow})
}

func TestProductAddRequiresPrincipal(t *testing.T) {
	u := newProductUsecase(&fakeProductRepo{}, &fakeCategoryRepo{})
	_, err := u.Add(context.Background(), nil, validProduct())
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))
}

func TestProductAddValidatesAndNormalizes(t *testing.T) {
	repo := &fakeProductRepo{}
	cats := &fakeCategoryRepo{}
	u := newProductUsecase(repo, cats)

	_, err := u.Add(context.Background(), seller, productdom.Product{Price: "1"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	created, err := u.Add(context.Background(), seller, validProduct())
	require.NoError(t, err)
	assert.Equal(t, "Widget", created.Title)
	assert.Equal(t, 1, created.Quantity)
	assert.Equal(t, "u1", created.AddedBy.UID)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.Equal(t, []string{"tools"}, cats.names)
}

func TestProductAddRejectsDuplicateTitle(t *testing.T) {
	repo := &fakeProductRepo{
		findByTitleFn: func(_ context.Context, title string) (*productdom.Product, error) {
			return &productdom.Product{ID: "existing", Title: title}, nil
		},
	}
	u := newProductUsecase(repo, &fakeCategoryRepo{})

	_, err := u.Add(context.Background(), seller, validProduct())
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestProductAddSurvivesCategoryFailure(t *testing.T) {
	cats := &fakeCategoryRepo{
		incrementFn: func(context.Context, string, time.Time) error {
			return errors.New("counter unavailable")
		},
	}
	u := newProductUsecase(&fakeProductRepo{}, cats)

	created, err := u.Add(context.Background(), seller, validProduct())
	require.NoError(t, err, "category counter failure must not fail the add")
	assert.Equal(t, "prod-1", created.ID)
}

func TestProductEdit(t *testing.T) {
	repo := &fakeProductRepo{}
	u := newProductUsecase(repo, &fakeCategoryRepo{})

	_, err := u.Edit(context.Background(), nil, "prod-1", validProduct())
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))

	_, err = u.Edit(context.Background(), seller, "  ", validProduct())
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	updated, err := u.Edit(context.Background(), seller, "prod-1", validProduct())
	require.NoError(t, err)
	assert.Equal(t, "prod-1", updated.ID)
	assert.Equal(t, testNow, updated.UpdatedAt)
}
