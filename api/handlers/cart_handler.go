package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-storefront/internal/models"
	"go-storefront/internal/services"
)

type CartHandler struct {
	productService *services.ProductService
}

func NewCartHandler(productService *services.ProductService) *CartHandler {
	return &CartHandler{productService: productService}
}

type addToCartRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int `json:"quantity" form:"quantity" binding:"omitempty,gt=0"`
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart := currentCart(c)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"lines":   cart.Lines(),
			"total":   cart.GetTotalValue(),
			"average": cart.GetAverageValue(),
		},
	})
}

// POST /api/cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.productService.GetProductById(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cart := currentCart(c)
	cart.AddItem(*product, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"lines":   cart.Lines(),
	})
}

// DELETE /api/cart/items/:product_id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	// Removal matches on the line's product ID alone; the product may
	// already be gone from the catalog (sold out) and the line must still
	// be removable.
	cart := currentCart(c)
	cart.RemoveLine(models.Product{ID: productID})
	c.JSON(http.StatusOK, gin.H{"lines": cart.Lines()})
}
