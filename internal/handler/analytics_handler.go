package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/model"
	"storefront/internal/store"
	"storefront/pkg/logger"
	"storefront/prometheus"
)

// AnalyticsStats is the aggregate block of the admin dashboard
type AnalyticsStats struct {
	TotalProducts   int     `json:"totalProducts"`
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	ActiveCustomers int     `json:"activeCustomers"`
}

// AnalyticsResponse carries the dashboard aggregates and the five most
// recent orders
type AnalyticsResponse struct {
	Stats        AnalyticsStats `json:"stats"`
	RecentOrders []model.Order  `json:"recentOrders"`
}

// AnalyticsHandler serves the admin dashboard aggregates
type AnalyticsHandler struct {
	store store.Store
}

// NewAnalyticsHandler creates an analytics handler backed by the given store
func NewAnalyticsHandler(s store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: s}
}

// Get handles computing the dashboard aggregates. Revenue sums every order's
// total; active customers counts distinct email values, where the empty
// email counts as one customer.
func (h *AnalyticsHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	defer prometheus.TrackStoreOperation("analytics")(time.Now())

	ctx := c.Request().Context()

	products, err := h.store.ListAvailableProducts(ctx, store.ProductFilter{})
	if err != nil {
		log.Error("Failed to load products for analytics", zap.Error(err))
		return respondStorageError(c, "Error fetching analytics", err)
	}

	orders, err := h.store.ListOrders(ctx)
	if err != nil {
		log.Error("Failed to load orders for analytics", zap.Error(err))
		return respondStorageError(c, "Error fetching analytics", err)
	}

	totalRevenue := 0.0
	customers := make(map[string]struct{})
	for _, order := range orders {
		totalRevenue += order.Total
		customers[order.CustomerEmail] = struct{}{}
	}

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	response := AnalyticsResponse{
		Stats: AnalyticsStats{
			TotalProducts:   len(products),
			TotalOrders:     len(orders),
			TotalRevenue:    totalRevenue,
			ActiveCustomers: len(customers),
		},
		RecentOrders: recent,
	}

	log.Info("Analytics computed",
		zap.Int("total_products", response.Stats.TotalProducts),
		zap.Int("total_orders", response.Stats.TotalOrders),
		zap.Float64("total_revenue", response.Stats.TotalRevenue))
	return respondData(c, http.StatusOK, response)
}
