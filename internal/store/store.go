// Package store provides the persistence backends for the catalog and orders.
package store

import (
	"context"
	"fmt"

	"go-storefront/internal/models"
)

// ProductStore is the catalog persistence contract. Lookups of a missing ID
// return (nil, nil) and deletes of a missing ID succeed; not-found is never
// an error here.
type ProductStore interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int) (*models.Product, error)
	// Create persists the product and assigns its ID.
	Create(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) error
	// DecrementStock reduces the product's quantity. If the result would be
	// zero or negative the product is removed from the catalog entirely.
	DecrementStock(ctx context.Context, id, quantity int) error
}

// OrderStore persists order aggregates. Reads include the order lines and
// each line's referenced product where it still exists.
type OrderStore interface {
	// Create persists the order and assigns the order and line IDs.
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id int) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}

// Open builds the product and order stores for the configured backend,
// either "memory" or "sqlite".
func Open(backend, path string) (ProductStore, OrderStore, error) {
	switch backend {
	case "", "memory":
		products := NewMemoryProductStore()
		return products, NewMemoryOrderStore(products), nil
	case "sqlite":
		return OpenSQL(path)
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
