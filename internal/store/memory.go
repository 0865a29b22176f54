package store

import (
	"context"
	"sort"
	"sync"

	"go-storefront/internal/models"
)

// MemoryProductStore is a thread-safe in-memory ProductStore.
type MemoryProductStore struct {
	mu       sync.RWMutex
	products map[int]models.Product
	nextID   int
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

var _ ProductStore = (*MemoryProductStore)(nil)

func (s *MemoryProductStore) GetAll(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryProductStore) Get(ctx context.Context, id int) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryProductStore) Create(ctx context.Context, product *models.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextID
	s.nextID++
	s.products[product.ID] = *product
	return nil
}

func (s *MemoryProductStore) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, id)
	return nil
}

func (s *MemoryProductStore) DecrementStock(ctx context.Context, id, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil
	}
	p.Quantity -= quantity
	if p.Quantity <= 0 {
		delete(s.products, id)
		return nil
	}
	s.products[id] = p
	return nil
}

// MemoryOrderStore is a thread-safe in-memory OrderStore. It joins order
// lines against the catalog on read, the same shape the SQL store produces
// with its preloads.
type MemoryOrderStore struct {
	mu       sync.RWMutex
	orders   map[int]models.Order
	nextID   int
	nextLine int
	products ProductStore
}

func NewMemoryOrderStore(products ProductStore) *MemoryOrderStore {
	return &MemoryOrderStore{
		orders:   make(map[int]models.Order),
		nextID:   1,
		nextLine: 1,
		products: products,
	}
}

var _ OrderStore = (*MemoryOrderStore)(nil)

func (s *MemoryOrderStore) Create(ctx context.Context, order *models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextID
	s.nextID++
	for i := range order.Lines {
		order.Lines[i].ID = s.nextLine
		s.nextLine++
		order.Lines[i].OrderID = order.ID
	}

	stored := *order
	stored.Lines = make([]models.OrderLine, len(order.Lines))
	copy(stored.Lines, order.Lines)
	s.orders[order.ID] = stored
	return nil
}

func (s *MemoryOrderStore) Get(ctx context.Context, id int) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	o, ok := s.orders[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if err := s.attachProducts(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *MemoryOrderStore) GetAll(ctx context.Context) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	for i := range out {
		if err := s.attachProducts(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *MemoryOrderStore) attachProducts(ctx context.Context, order *models.Order) error {
	lines := make([]models.OrderLine, len(order.Lines))
	copy(lines, order.Lines)
	for i := range lines {
		// Product is nil when it has since been removed from the catalog.
		p, err := s.products.Get(ctx, lines[i].ProductID)
		if err != nil {
			return err
		}
		lines[i].Product = p
	}
	order.Lines = lines
	return nil
}
