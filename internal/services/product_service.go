// Package services holds the catalog and checkout business logic.
package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"go-storefront/internal/models"
	"go-storefront/internal/session"
	"go-storefront/internal/store"
)

// ProductService orchestrates catalog reads and writes and keeps live carts
// consistent with the catalog.
type ProductService struct {
	products store.ProductStore
	carts    session.CartRegistry
}

func NewProductService(products store.ProductStore, carts session.CartRegistry) *ProductService {
	return &ProductService{
		products: products,
		carts:    carts,
	}
}

// GetAllProducts returns the full catalog.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.GetAll(ctx)
}

// GetAllProductsViewModel returns the catalog in submission/display form,
// with Price rendered using the invariant decimal-point convention.
func (s *ProductService) GetAllProductsViewModel(ctx context.Context) ([]models.ProductViewModel, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.ProductViewModel, 0, len(products))
	for _, p := range products {
		out = append(out, models.ProductViewModel{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Details:     p.Details,
			Stock:       strconv.Itoa(p.Quantity),
			Price:       decimal.NewFromFloat(p.Price).String(),
		})
	}
	return out, nil
}

// GetProductById looks the product up in the full catalog list. A missing id
// yields nil, never an error.
func (s *ProductService) GetProductById(ctx context.Context, id int) (*models.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// SaveProduct converts the submission to a catalog entity and persists it.
// It assumes the caller already ran CheckProductModelErrors; a parse failure
// here is a programming error surfaced as a plain error.
func (s *ProductService) SaveProduct(ctx context.Context, vm models.ProductViewModel) (*models.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(vm.Price))
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", vm.Price, err)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(vm.Stock))
	if err != nil {
		return nil, fmt.Errorf("parse stock %q: %w", vm.Stock, err)
	}

	product := &models.Product{
		Name:        vm.Name,
		Description: vm.Description,
		Details:     vm.Details,
		Price:       price.InexactFloat64(),
		Quantity:    quantity,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product from every live cart first, then from
// the catalog, so no cart is left holding a deleted product.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.carts.RemoveProduct(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

// UpdateProductQuantities decrements catalog stock by the quantity of each
// cart line, one store call per line. There is no transaction across lines:
// a failure partway through leaves earlier lines already applied.
func (s *ProductService) UpdateProductQuantities(ctx context.Context, cart *models.Cart) error {
	for _, line := range cart.Lines() {
		if err := s.products.DecrementStock(ctx, line.Product.ID, line.Quantity); err != nil {
			return fmt.Errorf("decrement stock for product %d: %w", line.Product.ID, err)
		}
	}
	return nil
}
