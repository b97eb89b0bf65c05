// internal/application/usecase/cart_registry.go
package usecase

import (
	"strings"
	"sync"

	cartdom "storefront/internal/domain/cart"
)

// StoreFactory builds the mirror store for one session id.
type StoreFactory func(sessionID string) cartdom.Store

// CartRegistry hands out one cart engine per session. Each engine owns its
// own mirror record, so the single-writer contract of the store holds.
type CartRegistry struct {
	mu      sync.Mutex
	engines map[string]*CartUsecase
	stores  StoreFactory
}

func NewCartRegistry(stores StoreFactory) *CartRegistry {
	return &CartRegistry{
		engines: map[string]*CartUsecase{},
		stores:  stores,
	}
}

// ForSession returns the engine for the session, creating (and
// rehydrating) it on first use.
func (r *CartRegistry) ForSession(sessionID string) *CartUsecase {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		sid = "anonymous"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if eng, ok := r.engines[sid]; ok {
		return eng
	}

	var store cartdom.Store
	if r.stores != nil {
		store = r.stores(sid)
	}
	eng := NewCartUsecase(store)
	r.engines[sid] = eng
	return eng
}
