package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/store"
	"storefront/pkg/logger"
	"storefront/prometheus"
)

// CategoryHandler serves the category listing. Categories are a read-only
// derived view; there is no category CRUD.
type CategoryHandler struct {
	store store.Store
}

// NewCategoryHandler creates a category handler backed by the given store
func NewCategoryHandler(s store.Store) *CategoryHandler {
	return &CategoryHandler{store: s}
}

// List handles retrieving the distinct category names
func (h *CategoryHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	defer prometheus.TrackStoreOperation("list_categories")(time.Now())

	categories, err := h.store.ListCategories(c.Request().Context())
	if err != nil {
		log.Error("Failed to list categories", zap.Error(err))
		return respondStorageError(c, "Error fetching categories", err)
	}

	log.Info("Categories retrieved", zap.Int("count", len(categories)))
	return respondData(c, http.StatusOK, categories)
}
