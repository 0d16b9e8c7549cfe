// internal/models/order_summary.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSummary is one row of the order_summary view: an order joined with
// its customer and a left-join count of its items. It is a live projection
// over the base tables, never stored on its own.
type OrderSummary struct {
	OrderID      uint            `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	OrderDate    time.Time       `json:"order_date"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalItems   int             `json:"total_items"`
}

// OrderHistoryEntry is one row of the customer order history query,
// newest order first.
type OrderHistoryEntry struct {
	OrderID     uint            `json:"order_id"`
	OrderDate   time.Time       `json:"order_date"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
}

// TableStats is a row-count snapshot used by the stats report.
type TableStats struct {
	Categories int64 `json:"categories"`
	Customers  int64 `json:"customers"`
	Products   int64 `json:"products"`
	Orders     int64 `json:"orders"`
	OrderItems int64 `json:"order_items"`
}

// TopProduct is one row of the best-sellers report: a product ranked by the
// total quantity ordered across all order items.
type TopProduct struct {
	ProductID    uint            `json:"product_id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	TotalOrdered int             `json:"total_ordered"`
	Revenue      decimal.Decimal `json:"revenue"`
}
