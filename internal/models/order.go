// internal/models/order.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is owned by exactly one customer and is deleted with it.
type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID      uint            `json:"customer_id" gorm:"not null;index"`
	OrderDate       time.Time       `json:"order_date" gorm:"not null"`
	Status          OrderStatus     `json:"status" gorm:"type:enum('pending','processing','shipped','delivered','cancelled');default:'pending'"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	ShippingAddress string          `json:"shipping_address,omitempty" gorm:"type:text"`
	BillingAddress  string          `json:"billing_address,omitempty" gorm:"type:text"`
	Notes           string          `json:"notes,omitempty" gorm:"type:text"`

	Customer *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return nil
}
