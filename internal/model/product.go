package model

import (
	"time"
)

// Product represents a catalog item. Soft-deleted products keep their row
// with available=false so historical orders can still resolve them by id.
type Product struct {
	ID          int       `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string    `json:"category" gorm:"type:varchar(100);index"`
	Image       string    `json:"image" gorm:"type:varchar(500)"`
	Stock       int       `json:"stock" gorm:"default:0"`
	PrepTime    int       `json:"prep_time" gorm:"default:15;comment:'Preparation time in minutes'"`
	Rating      float64   `json:"rating" gorm:"type:decimal(3,2);default:0"`
	Available   bool      `json:"available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category represents a product category row in the relational backend.
// The file backend derives categories from products instead.
type Category struct {
	ID          int       `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	Description string    `json:"description" gorm:"type:text"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}
