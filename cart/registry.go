package cart

import "sync"

// Registry maps session ids to their carts so handlers can reach the right
// cart for an HTTP request. Carts are created lazily on first use.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// With runs fn against the cart for sessionID while holding the registry
// lock, so individual Cart methods never race across requests.
func (r *Registry) With(sessionID string, fn func(*Cart)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	if !ok {
		c = New()
		r.carts[sessionID] = c
	}
	fn(c)
}

// Drop discards the cart for sessionID.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
