package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/model"
	"storefront/internal/store"
	"storefront/pkg/logger"
	"storefront/prometheus"
)

// totalTolerance is the maximum accepted difference between the submitted
// order total and the total recomputed from the items snapshot
const totalTolerance = 0.01

// OrderRequest defines the structure for order creation requests
type OrderRequest struct {
	CustomerName        string            `json:"customerName"`
	CustomerEmail       string            `json:"customerEmail"`
	CustomerPhone       string            `json:"customerPhone"`
	Address             string            `json:"address"`
	Items               []model.OrderItem `json:"items"`
	Total               float64           `json:"total"`
	DeliveryTime        int               `json:"deliveryTime"`
	SpecialInstructions string            `json:"specialInstructions"`
}

// OrderStatusRequest defines the structure for status update requests
type OrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// OrderHandler serves the order endpoints
type OrderHandler struct {
	store store.Store
}

// NewOrderHandler creates an order handler backed by the given store
func NewOrderHandler(s store.Store) *OrderHandler {
	return &OrderHandler{store: s}
}

// List handles retrieving all orders, newest-first
func (h *OrderHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	defer prometheus.TrackStoreOperation("list_orders")(time.Now())

	orders, err := h.store.ListOrders(c.Request().Context())
	if err != nil {
		log.Error("Failed to list orders", zap.Error(err))
		return respondStorageError(c, "Error fetching orders", err)
	}

	log.Info("Orders retrieved", zap.Int("count", len(orders)))
	return respondData(c, http.StatusOK, orders)
}

// Get handles retrieving a single order by ID
func (h *OrderHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Order not found")
	}

	order, err := h.store.GetOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Order not found", zap.Int("order_id", id))
			return respondError(c, http.StatusNotFound, "Order not found")
		}
		log.Error("Failed to get order", zap.Int("order_id", id), zap.Error(err))
		return respondStorageError(c, "Error fetching order", err)
	}

	return respondData(c, http.StatusOK, order)
}

// Create handles placing a new order. The items snapshot is persisted
// verbatim; the submitted total must match the recomputed item total.
func (h *OrderHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid order request data", zap.Error(err))
		return respondError(c, http.StatusBadRequest, "Invalid request data")
	}

	if req.CustomerName == "" || len(req.Items) == 0 || req.Total <= 0 {
		log.Warn("Order creation rejected, missing required information",
			zap.String("customer_name", req.CustomerName),
			zap.Int("item_count", len(req.Items)))
		return respondError(c, http.StatusBadRequest, "Missing required order information")
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 || item.Price < 0 {
			log.Warn("Order creation rejected, invalid line item",
				zap.Int("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity))
			return respondError(c, http.StatusBadRequest, "Invalid order item")
		}
	}

	recomputed := itemsTotal(req.Items)
	if math.Abs(recomputed-req.Total) > totalTolerance {
		log.Warn("Order creation rejected, total mismatch",
			zap.Float64("submitted_total", req.Total),
			zap.Float64("computed_total", recomputed))
		return respondError(c, http.StatusBadRequest, "Order total does not match items")
	}

	defer prometheus.TrackStoreOperation("create_order")(time.Now())
	order, err := h.store.CreateOrder(c.Request().Context(), store.OrderInput{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		DeliveryAddress:     req.Address,
		Items:               req.Items,
		Total:               req.Total,
		DeliveryTime:        req.DeliveryTime,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		log.Error("Failed to create order", zap.String("customer_name", req.CustomerName), zap.Error(err))
		return respondStorageError(c, "Error creating order", err)
	}

	prometheus.RecordOrderOperation("create")
	prometheus.RecordOrderRevenue(order.Total)
	log.Info("Order placed",
		zap.Int("order_id", order.ID),
		zap.String("customer_name", order.CustomerName),
		zap.Float64("total", order.Total),
		zap.Int("item_count", len(order.Items)))
	return respondCreated(c, order, "Order placed successfully")
}

// UpdateStatus handles changing an order's lifecycle status (admin). Only
// transitions allowed by the status table are accepted.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Order not found")
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid status request data", zap.Int("order_id", id), zap.Error(err))
		return respondError(c, http.StatusBadRequest, "Invalid request data")
	}

	if !req.Status.Valid() {
		log.Warn("Invalid order status",
			zap.Int("order_id", id),
			zap.String("status", string(req.Status)))
		return respondError(c, http.StatusBadRequest, "Invalid order status")
	}

	order, err := h.store.GetOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Order not found for status update", zap.Int("order_id", id))
			return respondError(c, http.StatusNotFound, "Order not found")
		}
		log.Error("Failed to load order", zap.Int("order_id", id), zap.Error(err))
		return respondStorageError(c, "Error updating order", err)
	}

	if !order.Status.CanTransitionTo(req.Status) {
		log.Warn("Disallowed status transition",
			zap.Int("order_id", id),
			zap.String("from", string(order.Status)),
			zap.String("to", string(req.Status)))
		return respondError(c, http.StatusBadRequest,
			fmt.Sprintf("Cannot change order status from %s to %s", order.Status, req.Status))
	}

	defer prometheus.TrackStoreOperation("update_order_status")(time.Now())
	updated, err := h.store.UpdateOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		log.Error("Failed to update order status", zap.Int("order_id", id), zap.Error(err))
		return respondStorageError(c, "Error updating order status", err)
	}

	prometheus.RecordOrderOperation("update_status")
	prometheus.RecordOrderStatusChange(string(req.Status))
	log.Info("Order status updated",
		zap.Int("order_id", id),
		zap.String("from", string(order.Status)),
		zap.String("to", string(updated.Status)))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    updated,
		"message": "Order status updated successfully",
	})
}

func itemsTotal(items []model.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
