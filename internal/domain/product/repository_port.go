// internal/domain/product/repository_port.go
package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product: not found")

// Repository is the persistence port for Product (collection: products).
type Repository interface {
	// List returns the full catalog.
	List(ctx context.Context) ([]Product, error)

	// GetByID returns one product or ErrNotFound.
	GetByID(ctx context.Context, id string) (Product, error)

	// FindByTitle returns (nil, nil) when no product carries the title.
	// Used by the add flow's existence probe.
	FindByTitle(ctx context.Context, title string) (*Product, error)

	// Create stores a new product and returns it with the assigned ID.
	Create(ctx context.Context, p Product) (Product, error)

	// Update overwrites mutable fields of an existing product and returns
	// the stored result.
	Update(ctx context.Context, p Product) (Product, error)
}
