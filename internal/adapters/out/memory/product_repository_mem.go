// internal/adapters/out/memory/product_repository_mem.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	categorydom "storefront/internal/domain/category"
	productdom "storefront/internal/domain/product"
)

// ProductRepositoryMem implements product.Repository in memory for the
// local dev container and tests.
type ProductRepositoryMem struct {
	mu   sync.Mutex
	docs map[string]productdom.Product
}

func NewProductRepositoryMem() *ProductRepositoryMem {
	return &ProductRepositoryMem{docs: map[string]productdom.Product{}}
}

func (r *ProductRepositoryMem) List(_ context.Context) ([]productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]productdom.Product, 0, len(r.docs))
	for _, p := range r.docs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ProductRepositoryMem) GetByID(_ context.Context, id string) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.docs[strings.TrimSpace(id)]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepositoryMem) FindByTitle(_ context.Context, title string) (*productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	title = strings.TrimSpace(title)
	for _, p := range r.docs {
		if p.Title == title {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *ProductRepositoryMem) Create(_ context.Context, p productdom.Product) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	r.docs[p.ID] = p
	return p, nil
}

func (r *ProductRepositoryMem) Update(_ context.Context, p productdom.Product) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := strings.TrimSpace(p.ID)
	if _, ok := r.docs[id]; !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	p.ID = id
	r.docs[id] = p
	return p, nil
}

// CategoryRepositoryMem implements category.Repository in memory.
type CategoryRepositoryMem struct {
	mu   sync.Mutex
	docs map[string]categorydom.Category
}

func NewCategoryRepositoryMem() *CategoryRepositoryMem {
	return &CategoryRepositoryMem{docs: map[string]categorydom.Category{}}
}

func (r *CategoryRepositoryMem) IncrementOrCreate(_ context.Context, name string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	c, ok := r.docs[name]
	if !ok {
		r.docs[name] = categorydom.Category{
			ID:        uuid.NewString(),
			Name:      name,
			Count:     1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	}
	c.Count++
	c.UpdatedAt = now
	r.docs[name] = c
	return nil
}
