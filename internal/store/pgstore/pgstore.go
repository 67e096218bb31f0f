// Package pgstore implements the store contract on PostgreSQL through gorm.
// Each operation is a single statement; the engine's per-statement atomicity
// is the only transactional guarantee the contract needs.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"storefront/internal/model"
	"storefront/internal/store"
	"storefront/pkg/config"
)

// PGStore is the PostgreSQL backend
type PGStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// New connects to PostgreSQL, runs migrations, and seeds the catalog when the
// products table is empty
func New(cfg *config.Config, log *zap.Logger) (*PGStore, error) {
	pgConfig := postgres.Config{
		DSN:                  cfg.DB.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: gormlogger.Default.LogMode(cfg.DB.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database object: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	if err := db.AutoMigrate(&model.Product{}, &model.Order{}, &model.Category{}); err != nil {
		return nil, fmt.Errorf("run database migrations: %w", err)
	}

	s := &PGStore{db: db, log: log}
	if err := s.seed(); err != nil {
		return nil, err
	}
	if err := s.migrateCatalog(cfg.Store.ReseedCatalog); err != nil {
		return nil, err
	}
	return s, nil
}

// seed populates categories and products only when the products table is
// empty; existing data is never overwritten
func (s *PGStore) seed() error {
	var count int64
	if err := s.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	s.log.Info("Seeding sample catalog")
	for _, category := range store.PGSeedCategories() {
		c := category
		if err := s.db.Where(model.Category{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}
	for _, product := range store.PGSeedProducts() {
		p := product
		p.Available = true
		if err := s.db.Create(&p).Error; err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	return nil
}

// ListAvailableProducts returns available products sorted by (category, name)
func (s *PGStore) ListAvailableProducts(ctx context.Context, filter store.ProductFilter) ([]model.Product, error) {
	query := s.db.WithContext(ctx).Where("available = ?", true)

	if filter.Category != "" && filter.Category != "All" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var products []model.Product
	if err := query.Order("category, name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct returns the product with the given id, soft-deleted included
func (s *PGStore) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

// CreateProduct inserts the product and upserts its category so the derived
// category view never drifts from the product rows
func (s *PGStore) CreateProduct(ctx context.Context, in store.ProductInput) (*model.Product, error) {
	prepTime := in.PrepTime
	if prepTime <= 0 {
		prepTime = 15
	}

	product := model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Stock:       in.Stock,
		PrepTime:    prepTime,
		Rating:      0,
		Available:   true,
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if err := s.ensureCategory(ctx, in.Category); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the mutable fields of an existing product
func (s *PGStore) UpdateProduct(ctx context.Context, id int, in store.ProductInput) (*model.Product, error) {
	var product model.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Category = in.Category
	product.Image = in.Image
	product.Stock = in.Stock
	product.PrepTime = in.PrepTime

	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if err := s.ensureCategory(ctx, in.Category); err != nil {
		return nil, err
	}
	return &product, nil
}

// SoftDeleteProduct marks the product unavailable; repeating the call on an
// already unavailable product still succeeds
func (s *PGStore) SoftDeleteProduct(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("available", false)
	if result.Error != nil {
		return fmt.Errorf("delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListOrders returns all orders, newest-first
func (s *PGStore) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns the order with the given id
func (s *PGStore) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	var order model.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

// CreateOrder persists the order with the items snapshot verbatim
func (s *PGStore) CreateOrder(ctx context.Context, in store.OrderInput) (*model.Order, error) {
	deliveryTime := in.DeliveryTime
	if deliveryTime <= 0 {
		deliveryTime = 30
	}

	order := model.Order{
		CustomerName:        in.CustomerName,
		CustomerEmail:       in.CustomerEmail,
		CustomerPhone:       in.CustomerPhone,
		DeliveryAddress:     in.DeliveryAddress,
		Items:               in.Items,
		Total:               in.Total,
		Status:              model.StatusPending,
		PaymentStatus:       model.PaymentPaid,
		DeliveryTime:        deliveryTime,
		SpecialInstructions: in.SpecialInstructions,
	}

	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

// UpdateOrderStatus updates status and updated_at only
func (s *PGStore) UpdateOrderStatus(ctx context.Context, id int, status model.OrderStatus) (*model.Order, error) {
	var order model.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Model(&order).
		Updates(map[string]interface{}{"status": status, "updated_at": order.UpdatedAt}).Error; err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &order, nil
}

// ListCategories returns the active category names in ascending order
func (s *PGStore) ListCategories(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&model.Category{}).
		Where("active = ?", true).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return names, nil
}

// Close releases the underlying connection pool
func (s *PGStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PGStore) ensureCategory(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	category := model.Category{Name: name, Active: true}
	err := s.db.WithContext(ctx).Where(model.Category{Name: name}).FirstOrCreate(&category).Error
	if err != nil {
		return fmt.Errorf("ensure category %q: %w", name, err)
	}
	return nil
}
