package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-storefront/internal/models"
)

// OpenSQL opens (or creates) the sqlite database at path and returns GORM
// backed stores over it.
func OpenSQL(path string) (*SQLProductStore, *SQLOrderStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Order lines must survive the products they reference; stock
		// decrement deletes sold-out products while their orders remain.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderLine{}); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLProductStore{db: db}, &SQLOrderStore{db: db}, nil
}

// SQLProductStore implements ProductStore on a relational database.
type SQLProductStore struct {
	db *gorm.DB
}

var _ ProductStore = (*SQLProductStore)(nil)

func (s *SQLProductStore) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *SQLProductStore) Get(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *SQLProductStore) Create(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *SQLProductStore) Delete(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}

// DecrementStock runs one transaction per product; checkout calls it once
// per cart line, so a failure partway through a checkout leaves earlier
// lines already applied.
func (s *SQLProductStore) DecrementStock(ctx context.Context, id, quantity int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.First(&product, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		product.Quantity -= quantity
		if product.Quantity <= 0 {
			return tx.Delete(&product).Error
		}
		return tx.Save(&product).Error
	})
}

// SQLOrderStore implements OrderStore on a relational database.
type SQLOrderStore struct {
	db *gorm.DB
}

var _ OrderStore = (*SQLOrderStore)(nil)

func (s *SQLOrderStore) Create(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *SQLOrderStore) Get(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Lines.Product").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *SQLOrderStore) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Preload("Lines.Product").Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
