package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/internal/models"
)

func TestMemoryRegistryCreatesCartPerSession(t *testing.T) {
	registry := NewMemoryRegistry()
	ctx := context.Background()

	a, err := registry.Get(ctx, "session-a")
	require.NoError(t, err)
	b, err := registry.Get(ctx, "session-b")
	require.NoError(t, err)

	a.AddItem(models.Product{ID: 1, Price: 10.10}, 2)

	// Sessions are isolated from each other.
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())

	// The same session sees the same cart again.
	again, err := registry.Get(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Len())
}

func TestMemoryRegistryRemoveProductSweepsAllCarts(t *testing.T) {
	registry := NewMemoryRegistry()
	ctx := context.Background()

	a, err := registry.Get(ctx, "session-a")
	require.NoError(t, err)
	b, err := registry.Get(ctx, "session-b")
	require.NoError(t, err)

	a.AddItem(models.Product{ID: 2, Price: 20.10}, 1)
	a.AddItem(models.Product{ID: 3, Price: 30.10}, 1)
	b.AddItem(models.Product{ID: 2, Price: 20.10}, 5)

	require.NoError(t, registry.RemoveProduct(ctx, 2))

	require.Equal(t, 1, a.Len())
	assert.Equal(t, 3, a.Lines()[0].Product.ID)
	assert.Equal(t, 0, b.Len())
}

func TestMemoryRegistrySave(t *testing.T) {
	registry := NewMemoryRegistry()
	ctx := context.Background()

	cart := models.NewCart()
	cart.AddItem(models.Product{ID: 1}, 1)
	require.NoError(t, registry.Save(ctx, "session-a", cart))

	got, err := registry.Get(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
}
