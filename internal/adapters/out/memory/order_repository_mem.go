// internal/adapters/out/memory/order_repository_mem.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	orderdom "storefront/internal/domain/order"
)

// OrderRepositoryMem implements order.Repository in memory. Used by the
// local dev container (no GCP project) and by tests.
type OrderRepositoryMem struct {
	mu   sync.Mutex
	docs map[string]orderdom.Order
}

func NewOrderRepositoryMem() *OrderRepositoryMem {
	return &OrderRepositoryMem{docs: map[string]orderdom.Order{}}
}

func (r *OrderRepositoryMem) Create(_ context.Context, o orderdom.Order) (orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = uuid.NewString()
	r.docs[o.ID] = o
	return o, nil
}

func (r *OrderRepositoryMem) UpdateStatus(_ context.Context, id string, st orderdom.Status, returnReason string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.docs[strings.TrimSpace(id)]
	if !ok {
		return orderdom.ErrNotFound
	}
	o.Status = st
	if strings.TrimSpace(returnReason) != "" {
		o.ReturnReason = strings.TrimSpace(returnReason)
	}
	o.UpdatedAt = updatedAt
	r.docs[o.ID] = o
	return nil
}

func (r *OrderRepositoryMem) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id = strings.TrimSpace(id)
	if _, ok := r.docs[id]; !ok {
		return orderdom.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *OrderRepositoryMem) ListByUser(_ context.Context, userID string, limit int) ([]orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	uid := strings.TrimSpace(userID)
	var out []orderdom.Order
	for _, o := range r.docs {
		if o.UserID == uid {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
