package services

import (
	"context"
	"log"
	"time"

	"go-storefront/internal/events"
	"go-storefront/internal/models"
	"go-storefront/internal/store"
)

// OrderService turns a session cart plus a checkout submission into a
// persisted order.
type OrderService struct {
	orders    store.OrderStore
	products  *ProductService
	publisher events.Publisher
}

func NewOrderService(orders store.OrderStore, products *ProductService, publisher events.Publisher) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		publisher: publisher,
	}
}

// SaveOrder snapshots the cart into an order aggregate and persists it, then
// decrements catalog stock per line and clears the cart. The sequence is
// fixed: persist, then inventory, then clear — a stock-update failure leaves
// the order saved and the cart intact, with no rollback.
func (s *OrderService) SaveOrder(ctx context.Context, cart *models.Cart, vm models.OrderViewModel) (*models.Order, error) {
	order := mapToOrder(cart, vm)
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.products.UpdateProductQuantities(ctx, cart); err != nil {
		return nil, err
	}
	cart.Clear()

	if err := s.publisher.OrderPlaced(ctx, order); err != nil {
		log.Printf("Failed to publish order %d: %v", order.ID, err)
	}
	return order, nil
}

// GetOrder returns the order with its lines, or nil when absent.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return s.orders.Get(ctx, id)
}

// GetOrders returns all orders with their lines.
func (s *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.GetAll(ctx)
}

func mapToOrder(cart *models.Cart, vm models.OrderViewModel) *models.Order {
	order := &models.Order{
		Name:    vm.Name,
		Address: vm.Address,
		City:    vm.City,
		Zip:     vm.Zip,
		Country: vm.Country,
		// Stamped here; any date in the submission is ignored.
		Date: time.Now().UTC(),
	}
	for _, line := range cart.Lines() {
		order.Lines = append(order.Lines, models.OrderLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}
	return order
}
