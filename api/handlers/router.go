// Package handlers wires the storefront HTTP surface.
package handlers

import (
	"github.com/gin-gonic/gin"

	"go-storefront/internal/services"
	"go-storefront/internal/session"
)

// NewRouter builds the Gin engine with all storefront routes. Every /api
// route runs inside a cart session.
func NewRouter(env string, registry session.CartRegistry, productService *services.ProductService, orderService *services.OrderService) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	productHandler := NewProductHandler(productService)
	cartHandler := NewCartHandler(productService)
	orderHandler := NewOrderHandler(orderService)

	api := router.Group("/api")
	api.Use(CartSession(registry))
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetAllProducts)
			products.GET("/:id", productHandler.GetProductByID)
			products.POST("", productHandler.CreateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddToCart)
			cart.DELETE("/items/:product_id", cartHandler.RemoveFromCart)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.Checkout)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		api.GET("/health", productHandler.HealthCheck)
	}

	return router
}
