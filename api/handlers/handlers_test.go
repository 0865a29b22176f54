package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-storefront/internal/events"
	"go-storefront/internal/models"
	"go-storefront/internal/services"
	"go-storefront/internal/session"
	"go-storefront/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router   *gin.Engine
	products *store.MemoryProductStore
	orders   *store.MemoryOrderStore
	cookies  []*http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, session.NewMemoryRegistry())
}

func newTestServerWith(t *testing.T, registry session.CartRegistry) *testServer {
	t.Helper()

	products := store.NewMemoryProductStore()
	orders := store.NewMemoryOrderStore(products)
	productService := services.NewProductService(products, registry)
	orderService := services.NewOrderService(orders, productService, events.NoopPublisher{})

	ctx := context.Background()
	for _, p := range []models.Product{
		{Name: "one", Price: 10.10, Quantity: 100},
		{Name: "two", Price: 20.10, Quantity: 200},
		{Name: "three", Price: 30.10, Quantity: 300},
	} {
		p := p
		require.NoError(t, products.Create(ctx, &p))
	}

	return &testServer{
		router:   NewRouter("test", registry, productService, orderService),
		products: products,
		orders:   orders,
	}
}

// do performs a request, carrying the session cookie between calls.
func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range s.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		s.cookies = cookies
	}
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
