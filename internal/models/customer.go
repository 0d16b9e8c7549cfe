// internal/models/customer.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer owns zero or more orders. Deleting a customer cascades to the
// orders and, transitively, their order items.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string    `json:"first_name" gorm:"size:50;not null"`
	LastName  string    `json:"last_name" gorm:"size:50;not null"`
	Email     string    `json:"email" gorm:"size:100;not null;uniqueIndex:uq_customers_email"`
	Phone     string    `json:"phone,omitempty" gorm:"size:20"`
	Address   string    `json:"address,omitempty" gorm:"size:200"`
	City      string    `json:"city,omitempty" gorm:"size:50"`
	State     string    `json:"state,omitempty" gorm:"size:50"`
	ZipCode   string    `json:"zip_code,omitempty" gorm:"size:10"`
	Country   string    `json:"country" gorm:"size:50;default:'USA'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (Customer) TableName() string {
	return "customers"
}

// FullName is the display form used by the order summary projection.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.Country == "" {
		c.Country = DefaultCountry
	}
	return nil
}
