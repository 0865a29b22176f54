package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-storefront/internal/models"
	"go-storefront/internal/services"
)

// CartEmpty is the checkout rejection code for an empty cart.
const CartEmpty = "CartEmpty"

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/orders
// Checkout: the submission must pass the required-field rules and the cart
// must hold at least one line before the order pipeline runs.
func (h *OrderHandler) Checkout(c *gin.Context) {
	cart := currentCart(c)

	errs := []string{}
	if cart.Len() == 0 {
		errs = append(errs, CartEmpty)
	}
	var vm models.OrderViewModel
	if err := c.ShouldBind(&vm); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	order, err := h.orderService.SaveOrder(c.Request.Context(), cart, vm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// SaveOrder already cleared the cart; clearing again is an idempotent
	// safety net on the completion path.
	cart.Clear()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order confirmed",
		"data":    order,
	})
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}
