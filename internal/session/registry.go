// Package session owns the carts of live shopping sessions. Every session
// gets its own cart, keyed by the session ID carried in the browser cookie;
// there is no process-wide shared cart.
package session

import (
	"context"
	"sync"

	"go-storefront/internal/models"
)

// CartRegistry maps session IDs to carts.
type CartRegistry interface {
	// Get returns the session's cart, creating an empty one on first use.
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	// Save persists the cart back under the session ID.
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	// RemoveProduct drops the product's line from every live cart. Used when
	// a product is deleted from the catalog so no cart keeps a dangling line.
	RemoveProduct(ctx context.Context, productID int) error
}

// MemoryRegistry keeps carts in process memory, the default for a single
// instance deployment.
type MemoryRegistry struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{carts: make(map[string]*models.Cart)}
}

var _ CartRegistry = (*MemoryRegistry)(nil)

func (r *MemoryRegistry) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		cart = models.NewCart()
		r.carts[sessionID] = cart
	}
	return cart, nil
}

func (r *MemoryRegistry) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[sessionID] = cart
	return nil
}

func (r *MemoryRegistry) RemoveProduct(ctx context.Context, productID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cart := range r.carts {
		cart.RemoveLine(models.Product{ID: productID})
	}
	return nil
}
