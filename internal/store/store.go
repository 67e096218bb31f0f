// Package store defines the persistence contract shared by the storefront
// backends. Two drivers implement it: a flat-file JSON store and a
// PostgreSQL store, selected via configuration.
package store

import (
	"context"
	"errors"

	"storefront/internal/model"
)

var (
	// ErrNotFound is returned when no record matches the requested id
	ErrNotFound = errors.New("record not found")
)

// ProductFilter narrows ListAvailableProducts results
type ProductFilter struct {
	// Category filters by exact match; empty or "All" means no filter
	Category string
	// Search matches case-insensitively against name or description
	Search string
}

// ProductInput carries the caller-mutable product fields
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Stock       int
	PrepTime    int
}

// OrderInput carries the fields accepted at order creation. Items is the
// snapshot persisted verbatim; the store never re-derives it from products.
type OrderInput struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	DeliveryAddress     string
	Items               []model.OrderItem
	Total               float64
	DeliveryTime        int
	SpecialInstructions string
}

// Store is the backend-agnostic persistence contract
type Store interface {
	// ListAvailableProducts returns available products sorted by
	// (category, name) ascending, optionally filtered
	ListAvailableProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int, in ProductInput) (*model.Product, error)
	// SoftDeleteProduct marks the product unavailable; the row persists
	SoftDeleteProduct(ctx context.Context, id int) error

	// ListOrders returns all orders, newest-first by created_at
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int) (*model.Order, error)
	CreateOrder(ctx context.Context, in OrderInput) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status model.OrderStatus) (*model.Order, error)

	// ListCategories returns the distinct category names in ascending order
	ListCategories(ctx context.Context) ([]string, error)

	Close() error
}
