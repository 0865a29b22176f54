package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckout() map[string]any {
	return map[string]any{
		"name":    "John Doe",
		"address": "1 Main St",
		"city":    "Springfield",
		"zip":     "12345",
		"country": "USA",
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/cart/items", map[string]any{"product_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/orders", validCheckout())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Exactly one order, with the snapshotted line.
	ctx := context.Background()
	orders, err := s.orders.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 1)
	assert.Equal(t, 1, orders[0].Lines[0].ProductID)
	assert.Equal(t, 2, orders[0].Lines[0].Quantity)

	// Stock decremented, cart empty afterwards.
	one, err := s.products.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, 98, one.Quantity)

	w = s.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeJSON(t, w)["data"].(map[string]any)
	assert.Empty(t, data["lines"])
}

func TestCheckoutIgnoresClientSuppliedLines(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/cart/items", map[string]any{"product_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	// Extra payload fields are discarded at binding; only the session
	// cart decides what is ordered.
	body := validCheckout()
	body["lines"] = []map[string]any{
		{"product": map[string]any{"id": 2}, "quantity": 99},
	}
	w = s.do(t, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	orders, err := s.orders.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 1)
	assert.Equal(t, 1, orders[0].Lines[0].ProductID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/orders", validCheckout())
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := decodeJSON(t, w)["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, CartEmpty, errs[0])

	orders, err := s.orders.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutMissingFields(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/cart/items", map[string]any{"product_id": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/orders", map[string]any{"name": "John Doe"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decodeJSON(t, w)["errors"])

	// The rejected submission persisted nothing and kept the cart.
	orders, err := s.orders.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)

	w = s.do(t, http.MethodGet, "/api/cart", nil)
	data := decodeJSON(t, w)["data"].(map[string]any)
	assert.Len(t, data["lines"], 1)
}

func TestCheckoutEmptyCartAndMissingFieldsAccumulate(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/orders", map[string]any{"name": "John Doe"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := decodeJSON(t, w)["errors"].([]any)
	require.Len(t, errs, 2)
	assert.Equal(t, CartEmpty, errs[0])
}

func TestGetOrders(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/cart/items", map[string]any{"product_id": 2, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodPost, "/api/orders", validCheckout())
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON(t, w)["data"], 1)

	w = s.do(t, http.MethodGet, "/api/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
