package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/store"
	"storefront/pkg/logger"
	"storefront/prometheus"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	PrepTime    int     `json:"prep_time"`
}

func (r *ProductRequest) toInput() store.ProductInput {
	return store.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		Stock:       r.Stock,
		PrepTime:    r.PrepTime,
	}
}

// ProductHandler serves the product catalog endpoints
type ProductHandler struct {
	store store.Store
}

// NewProductHandler creates a product handler backed by the given store
func NewProductHandler(s store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// List handles retrieving available products with optional filtering
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	defer prometheus.TrackStoreOperation("list_products")(time.Now())

	filter := store.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	products, err := h.store.ListAvailableProducts(c.Request().Context(), filter)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return respondStorageError(c, "Error fetching products", err)
	}

	log.Info("Products retrieved",
		zap.Int("count", len(products)),
		zap.String("category", filter.Category),
		zap.String("search", filter.Search))
	return respondData(c, http.StatusOK, products)
}

// Get handles retrieving a single product by ID
func (h *ProductHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	product, err := h.store.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Product not found", zap.Int("product_id", id))
			return respondError(c, http.StatusNotFound, "Product not found")
		}
		log.Error("Failed to get product", zap.Int("product_id", id), zap.Error(err))
		return respondStorageError(c, "Error fetching product", err)
	}

	return respondData(c, http.StatusOK, product)
}

// Create handles creating a new product (admin)
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid product request data", zap.Error(err))
		return respondError(c, http.StatusBadRequest, "Invalid request data")
	}

	if req.Name == "" || req.Description == "" || req.Category == "" || req.Price <= 0 {
		log.Warn("Product creation rejected, missing required fields",
			zap.String("name", req.Name),
			zap.String("category", req.Category))
		return respondError(c, http.StatusBadRequest, "Missing required fields")
	}

	defer prometheus.TrackStoreOperation("create_product")(time.Now())
	product, err := h.store.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		log.Error("Failed to create product", zap.String("name", req.Name), zap.Error(err))
		return respondStorageError(c, "Error creating product", err)
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created",
		zap.Int("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("category", product.Category))
	return respondCreated(c, product, "Product created successfully")
}

// Update handles updating an existing product (admin)
func (h *ProductHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid product request data", zap.Int("product_id", id), zap.Error(err))
		return respondError(c, http.StatusBadRequest, "Invalid request data")
	}

	defer prometheus.TrackStoreOperation("update_product")(time.Now())
	product, err := h.store.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Product not found for update", zap.Int("product_id", id))
			return respondError(c, http.StatusNotFound, "Product not found")
		}
		log.Error("Failed to update product", zap.Int("product_id", id), zap.Error(err))
		return respondStorageError(c, "Error updating product", err)
	}

	prometheus.RecordProductOperation("update")
	log.Info("Product updated",
		zap.Int("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    product,
		"message": "Product updated successfully",
	})
}

// Delete handles soft-deleting a product (admin). The record persists with
// available=false so historical orders keep resolving.
func (h *ProductHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	defer prometheus.TrackStoreOperation("delete_product")(time.Now())
	if err := h.store.SoftDeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Product not found for deletion", zap.Int("product_id", id))
			return respondError(c, http.StatusNotFound, "Product not found")
		}
		log.Error("Failed to delete product", zap.Int("product_id", id), zap.Error(err))
		return respondStorageError(c, "Error deleting product", err)
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted", zap.Int("product_id", id))
	return respondMessage(c, "Product deleted successfully")
}
