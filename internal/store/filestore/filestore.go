// Package filestore implements the store contract over two pretty-printed
// JSON array files, one per collection. Every operation is a full
// read-modify-write of the affected file, serialized by an in-process lock
// so concurrent requests cannot lose updates to each other.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"storefront/internal/model"
	"storefront/internal/store"
)

// FileStore is the flat-file JSON backend
type FileStore struct {
	mu           sync.RWMutex
	productsFile string
	ordersFile   string
	log          *zap.Logger
}

// New opens (and if necessary creates and seeds) the JSON collections under
// dataDir. Seeding only runs when a collection is empty; existing data is
// never overwritten.
func New(dataDir string, log *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &FileStore{
		productsFile: filepath.Join(dataDir, "products.json"),
		ordersFile:   filepath.Join(dataDir, "orders.json"),
		log:          log,
	}

	if err := s.initCollections(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) initCollections() error {
	products, err := s.readProducts()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		s.log.Info("Seeding products", zap.String("file", s.productsFile))
		now := time.Now()
		seed := store.FileSeedProducts()
		for i := range seed {
			seed[i].ID = i + 1
			seed[i].Available = true
			seed[i].CreatedAt = now
			seed[i].UpdatedAt = now
		}
		if err := s.writeProducts(seed); err != nil {
			return err
		}
	}

	orders, err := s.readOrders()
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		s.log.Info("Seeding orders", zap.String("file", s.ordersFile))
		now := time.Now()
		seed := store.FileSeedOrders()
		for i := range seed {
			seed[i].ID = i + 1
			seed[i].CreatedAt = now
			seed[i].UpdatedAt = now
		}
		if err := s.writeOrders(seed); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) readProducts() ([]model.Product, error) {
	var products []model.Product
	if err := readCollection(s.productsFile, &products); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	return products, nil
}

func (s *FileStore) writeProducts(products []model.Product) error {
	if err := writeCollection(s.productsFile, products); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}

func (s *FileStore) readOrders() ([]model.Order, error) {
	var orders []model.Order
	if err := readCollection(s.ordersFile, &orders); err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return orders, nil
}

func (s *FileStore) writeOrders(orders []model.Order) error {
	if err := writeCollection(s.ordersFile, orders); err != nil {
		return fmt.Errorf("write orders: %w", err)
	}
	return nil
}

func readCollection(file string, out interface{}) error {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func writeCollection(file string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}

// ListAvailableProducts returns available products sorted by (category, name)
func (s *FileStore) ListAvailableProducts(ctx context.Context, filter store.ProductFilter) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}

	result := make([]model.Product, 0, len(products))
	search := strings.ToLower(filter.Search)
	for _, p := range products {
		if !p.Available {
			continue
		}
		if filter.Category != "" && filter.Category != "All" && p.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// GetProduct returns the product with the given id, soft-deleted included
func (s *FileStore) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// CreateProduct assigns the next id (max existing + 1) and persists the
// product with defaults applied
func (s *FileStore) CreateProduct(ctx context.Context, in store.ProductInput) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}

	prepTime := in.PrepTime
	if prepTime <= 0 {
		prepTime = 15
	}

	now := time.Now()
	product := model.Product{
		ID:          nextID(products),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Stock:       in.Stock,
		PrepTime:    prepTime,
		Rating:      0,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	products = append(products, product)
	if err := s.writeProducts(products); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
// Available, rating, id, and created_at are untouched.
func (s *FileStore) UpdateProduct(ctx context.Context, id int, in store.ProductInput) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Name = in.Name
		products[i].Description = in.Description
		products[i].Price = in.Price
		products[i].Category = in.Category
		products[i].Image = in.Image
		products[i].Stock = in.Stock
		products[i].PrepTime = in.PrepTime
		products[i].UpdatedAt = time.Now()

		if err := s.writeProducts(products); err != nil {
			return nil, err
		}
		return &products[i], nil
	}
	return nil, store.ErrNotFound
}

// SoftDeleteProduct marks the product unavailable. Deleting an already
// soft-deleted product succeeds, since the record still exists.
func (s *FileStore) SoftDeleteProduct(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readProducts()
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Available = false
		products[i].UpdatedAt = time.Now()
		return s.writeProducts(products)
	}
	return store.ErrNotFound
}

// ListOrders returns all orders, newest-first
func (s *FileStore) ListOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders, err := s.readOrders()
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

// GetOrder returns the order with the given id
func (s *FileStore) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders, err := s.readOrders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// CreateOrder persists the order with the items snapshot verbatim. Payment
// is assumed successful at order time, so payment_status starts as paid.
func (s *FileStore) CreateOrder(ctx context.Context, in store.OrderInput) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.readOrders()
	if err != nil {
		return nil, err
	}

	deliveryTime := in.DeliveryTime
	if deliveryTime <= 0 {
		deliveryTime = 30
	}

	now := time.Now()
	order := model.Order{
		ID:                  nextOrderID(orders),
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
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	orders = append(orders, order)
	if err := s.writeOrders(orders); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus updates status and updated_at only. Items and total are
// immutable after creation.
func (s *FileStore) UpdateOrderStatus(ctx context.Context, id int, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.readOrders()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		orders[i].UpdatedAt = time.Now()

		if err := s.writeOrders(orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, store.ErrNotFound
}

// ListCategories derives the distinct category set from available products
func (s *FileStore) ListCategories(ctx context.Context) ([]string, error) {
	products, err := s.ListAvailableProducts(ctx, store.ProductFilter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Close is a no-op for the file backend
func (s *FileStore) Close() error {
	return nil
}

func nextID(products []model.Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func nextOrderID(orders []model.Order) int {
	max := 0
	for _, o := range orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}
