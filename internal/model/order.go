package model

import (
	"time"

	"gorm.io/datatypes"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus is the (simulated) payment state of an order
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// statusTransitions is the allowed-transition table. Delivered and cancelled
// are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// Valid reports whether s is one of the five known statuses
func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
// A same-status update is treated as an allowed no-op.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a snapshot of a product line at order-creation time.
// Later product edits or deletes never alter it.
type OrderItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order represents a customer order. Items and total are immutable once
// created; only Status and UpdatedAt change afterwards.
type Order struct {
	ID                  int                            `json:"id" gorm:"primarykey"`
	CustomerName        string                         `json:"customer_name" gorm:"type:varchar(255);not null"`
	CustomerEmail       string                         `json:"customer_email" gorm:"type:varchar(255)"`
	CustomerPhone       string                         `json:"customer_phone" gorm:"type:varchar(20)"`
	DeliveryAddress     string                         `json:"delivery_address" gorm:"type:text"`
	Items               datatypes.JSONSlice[OrderItem] `json:"items" gorm:"type:jsonb;not null"`
	Total               float64                        `json:"total" gorm:"type:decimal(10,2);not null"`
	Status              OrderStatus                    `json:"status" gorm:"type:varchar(50);default:'pending'"`
	PaymentStatus       PaymentStatus                  `json:"payment_status" gorm:"type:varchar(50);default:'pending'"`
	DeliveryTime        int                            `json:"delivery_time" gorm:"default:30;comment:'Estimated delivery in minutes'"`
	SpecialInstructions string                         `json:"special_instructions" gorm:"type:text"`
	CreatedAt           time.Time                      `json:"created_at"`
	UpdatedAt           time.Time                      `json:"updated_at"`
}
