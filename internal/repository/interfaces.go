// internal/repository/interfaces.go

// Package repository declares the storage contracts the services program
// against. The MySQL implementations live in repository/mysql; tests swap
// in mocks.
package repository

import (
	"github.com/shoplabs/shop-backend/internal/models"
)

// Lookup methods return (nil, nil) when no row matches: absence is an empty
// result for readers, never an error.

type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id uint) (*models.Category, error)
	FindAll() ([]models.Category, error)
	// Delete removes the category; referencing products keep existing with
	// category_id cleared to NULL.
	Delete(id uint) error
}

type CustomerRepository interface {
	Create(customer *models.Customer) error
	FindByID(id uint) (*models.Customer, error)
	FindAll(offset, limit int) ([]models.Customer, int64, error)
	Search(query string, limit int) ([]models.Customer, error)
	// Delete cascades to the customer's orders and their order items.
	Delete(id uint) error
}

// ProductFilters narrows product listings.
type ProductFilters struct {
	CategoryID *uint
	ActiveOnly bool
	Search     string
}

type ProductRepository interface {
	Create(product *models.Product) error
	FindByID(id uint) (*models.Product, error)
	FindAll(offset, limit int, filters ProductFilters) ([]models.Product, int64, error)
	Update(product *models.Product) error
	Delete(id uint) error
}

type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id uint) (*models.Order, error)
	FindRecent(limit int) ([]models.Order, error)
	// AddItem inserts the order item and decrements the product's stock by
	// the item quantity in one transaction: both apply or neither does.
	AddItem(item *models.OrderItem) error
	// UpdateItemQuantity changes an item's quantity; total_price recomputes
	// in the database and stock is deliberately left untouched.
	UpdateItemQuantity(itemID uint, quantity int) error
	// DeleteItem removes an item without restoring stock.
	DeleteItem(itemID uint) error
	UpdateStatus(orderID uint, status models.OrderStatus) error
}

type ReportRepository interface {
	OrderSummaries() ([]models.OrderSummary, error)
	OrderSummariesByCustomer(customerID uint) ([]models.OrderSummary, error)
	CustomerOrderHistory(customerID uint) ([]models.OrderHistoryEntry, error)
	Stats() (*models.TableStats, error)
	TopProducts(limit int) ([]models.TopProduct, error)
}
