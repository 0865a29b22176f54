package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/internal/models"
	"go-storefront/internal/session"
	"go-storefront/internal/store"
)

func seedCatalog(t *testing.T, products store.ProductStore) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []models.Product{
		{Name: "one", Price: 10.10, Quantity: 100},
		{Name: "two", Price: 20.10, Quantity: 200},
		{Name: "three", Price: 30.10, Quantity: 300},
	} {
		p := p
		require.NoError(t, products.Create(ctx, &p))
	}
}

func newProductFixture(t *testing.T) (*ProductService, *store.MemoryProductStore, *session.MemoryRegistry) {
	t.Helper()
	products := store.NewMemoryProductStore()
	registry := session.NewMemoryRegistry()
	return NewProductService(products, registry), products, registry
}

func TestGetProductById(t *testing.T) {
	svc, products, _ := newProductFixture(t)
	seedCatalog(t, products)
	ctx := context.Background()

	p, err := svc.GetProductById(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "two", p.Name)

	// A missing id is nil, not an error.
	p, err = svc.GetProductById(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetAllProductsViewModel(t *testing.T) {
	svc, products, _ := newProductFixture(t)
	seedCatalog(t, products)

	vms, err := svc.GetAllProductsViewModel(context.Background())
	require.NoError(t, err)
	require.Len(t, vms, 3)
	assert.Equal(t, "10.1", vms[0].Price)
	assert.Equal(t, "100", vms[0].Stock)
	assert.Equal(t, 1, vms[0].ID)
}

func TestSaveProduct(t *testing.T) {
	svc, _, _ := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.SaveProduct(ctx, models.ProductViewModel{
		Name:  "Echo Dot",
		Price: "92.50",
		Stock: "10",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 92.50, created.Price)
	assert.Equal(t, 10, created.Quantity)

	stored, err := svc.GetProductById(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Echo Dot", stored.Name)
}

func TestSaveProductRejectsUnparsedInput(t *testing.T) {
	svc, _, _ := newProductFixture(t)
	ctx := context.Background()

	_, err := svc.SaveProduct(ctx, models.ProductViewModel{Name: "P", Price: "p30", Stock: "10"})
	assert.Error(t, err)

	_, err = svc.SaveProduct(ctx, models.ProductViewModel{Name: "P", Price: "30", Stock: "10.10"})
	assert.Error(t, err)
}

func TestDeleteProductSweepsCartsFirst(t *testing.T) {
	svc, products, registry := newProductFixture(t)
	seedCatalog(t, products)
	ctx := context.Background()

	cart, err := registry.Get(ctx, "session-a")
	require.NoError(t, err)
	two, err := svc.GetProductById(ctx, 2)
	require.NoError(t, err)
	cart.AddItem(*two, 3)
	cart.AddItem(models.Product{ID: 1, Price: 10.10}, 1)

	require.NoError(t, svc.DeleteProduct(ctx, 2))

	// The cart line for the deleted product is gone, the rest remain.
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Lines()[0].Product.ID)

	all, err := svc.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateProductQuantities(t *testing.T) {
	svc, products, _ := newProductFixture(t)
	seedCatalog(t, products)
	ctx := context.Background()

	cart := models.NewCart()
	cart.AddItem(models.Product{ID: 1}, 30)
	cart.AddItem(models.Product{ID: 2}, 200)

	require.NoError(t, svc.UpdateProductQuantities(ctx, cart))

	one, err := products.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, 70, one.Quantity)

	// Product 2 dropped to zero stock and is removed outright.
	two, err := products.Get(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, two)
}

func TestUpdateProductQuantitiesMissingProductIsNoOp(t *testing.T) {
	svc, products, _ := newProductFixture(t)
	seedCatalog(t, products)

	cart := models.NewCart()
	cart.AddItem(models.Product{ID: 99}, 5)

	require.NoError(t, svc.UpdateProductQuantities(context.Background(), cart))
}
