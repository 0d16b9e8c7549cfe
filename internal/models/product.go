// internal/models/product.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product belongs to the catalog. Its category reference is optional and is
// cleared (not cascaded) when the category goes away.
//
// StockQuantity is decremented when order items are inserted and is never
// floored at zero; readers must tolerate negative values.
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string          `json:"name" gorm:"size:100;not null"`
	Description   string          `json:"description,omitempty" gorm:"type:text"`
	CategoryID    *uint           `json:"category_id,omitempty" gorm:"index"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null;default:0"`
	SKU           string          `json:"sku" gorm:"column:sku;size:50;uniqueIndex:uq_products_sku"`
	IsActive      bool            `json:"is_active" gorm:"not null;default:true"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (Product) TableName() string {
	return "products"
}
