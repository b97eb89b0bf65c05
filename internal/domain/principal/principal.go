// internal/domain/principal/principal.go
package principal

import "sync"

// Principal is the signed-in identity. The engines react only to its
// presence or absence, never to provider-specific claims.
type Principal struct {
	UID   string
	Email string
	Name  string
}

// Watcher is the subscription stream of principal-changed events.
// The auth usecase publishes on sign-in/sign-out; subscribers (the
// reconciliation coordinator) keep an explicit current-principal field
// instead of reading ambient session state.
type Watcher struct {
	mu      sync.Mutex
	current *Principal
	subs    []func(*Principal)
}

func NewWatcher() *Watcher {
	return &Watcher{}
}

// Subscribe registers fn and invokes it immediately with the current
// principal (mirrors an auth-state listener firing on attach).
func (w *Watcher) Subscribe(fn func(*Principal)) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	w.subs = append(w.subs, fn)
	cur := w.current
	w.mu.Unlock()

	fn(cur)
}

// Publish updates the current principal and notifies every subscriber.
// nil means signed out.
func (w *Watcher) Publish(p *Principal) {
	w.mu.Lock()
	w.current = p
	subs := make([]func(*Principal), len(w.subs))
	copy(subs, w.subs)
	w.mu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
}

// Current returns the current principal (nil when signed out).
func (w *Watcher) Current() *Principal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}
