// internal/domain/category/entity.go
package category

import (
	"context"
	"time"
)

// Category is a per-category counter document (collection: categories).
type Category struct {
	ID        string
	Name      string
	Count     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository is the persistence port for Category.
type Repository interface {
	// IncrementOrCreate bumps the counter for name, creating the document
	// with count=1 when absent. Callers treat failure as best-effort.
	IncrementOrCreate(ctx context.Context, name string, now time.Time) error
}
