// internal/models/order_item.go
package models

import (
	"github.com/shopspring/decimal"
)

// OrderItem links an order to a product. It follows the order's lifecycle
// (cascade on order delete) and is also removed when the product goes away.
//
// TotalPrice is a stored generated column, always quantity * unit_price.
// The ORM never writes it (`->` permission); MySQL recomputes it on every
// insert and update of quantity or unit_price.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	ProductID  uint            `json:"product_id" gorm:"not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"->;type:decimal(10,2) GENERATED ALWAYS AS (quantity * unit_price) STORED"`

	Order   *Order   `json:"order,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
