// internal/database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/models"
)

// SampleCategories returns the seed categories. Names are unique.
func SampleCategories() []models.Category {
	return []models.Category{
		{Name: "Electronics", Description: "Phones, laptops and accessories"},
		{Name: "Books", Description: "Print and digital books"},
		{Name: "Clothing", Description: "Apparel for all seasons"},
		{Name: "Home & Garden", Description: "Furniture, decor and tools"},
		{Name: "Sports", Description: "Sporting goods and outdoor gear"},
	}
}

// SampleCustomers returns the seed customers. Emails are unique; country
// defaults stay explicit so the fixtures match the persisted contract.
func SampleCustomers() []models.Customer {
	return []models.Customer{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: "555-0101", Address: "123 Main St", City: "New York", State: "NY", ZipCode: "10001", Country: "USA"},
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Phone: "555-0102", Address: "456 Oak Ave", City: "Los Angeles", State: "CA", ZipCode: "90001", Country: "USA"},
		{FirstName: "Carlos", LastName: "Garcia", Email: "carlos.garcia@example.com", Phone: "555-0103", Address: "789 Pine Rd", City: "Houston", State: "TX", ZipCode: "77001", Country: "USA"},
		{FirstName: "Emily", LastName: "Chen", Email: "emily.chen@example.com", Phone: "555-0104", Address: "321 Elm St", City: "Seattle", State: "WA", ZipCode: "98101", Country: "USA"},
		{FirstName: "Liam", LastName: "Murphy", Email: "liam.murphy@example.com", Phone: "555-0105", Address: "14 Abbey Rd", City: "Boston", State: "MA", ZipCode: "02101", Country: "USA"},
	}
}

type sampleProduct struct {
	Name     string
	Category string
	Price    string
	Stock    int
	SKU      string
}

func sampleProducts() []sampleProduct {
	return []sampleProduct{
		{Name: "Smartphone X", Category: "Electronics", Price: "699.99", Stock: 50, SKU: "ELEC-001"},
		{Name: "Laptop Pro 15", Category: "Electronics", Price: "1299.00", Stock: 25, SKU: "ELEC-002"},
		{Name: "Wireless Earbuds", Category: "Electronics", Price: "89.99", Stock: 120, SKU: "ELEC-003"},
		{Name: "The Go Programming Language", Category: "Books", Price: "39.95", Stock: 80, SKU: "BOOK-001"},
		{Name: "Database Design Basics", Category: "Books", Price: "54.50", Stock: 35, SKU: "BOOK-002"},
		{Name: "Cotton T-Shirt", Category: "Clothing", Price: "14.99", Stock: 200, SKU: "CLTH-001"},
		{Name: "Denim Jacket", Category: "Clothing", Price: "79.00", Stock: 60, SKU: "CLTH-002"},
		{Name: "Garden Tool Set", Category: "Home & Garden", Price: "45.00", Stock: 40, SKU: "HOME-001"},
		{Name: "Yoga Mat", Category: "Sports", Price: "24.99", Stock: 150, SKU: "SPRT-001"},
		{Name: "Trail Running Shoes", Category: "Sports", Price: "119.95", Stock: 45, SKU: "SPRT-002"},
	}
}

// Seed inserts representative sample data: categories, customers, products,
// then a handful of orders with items placed through the same transactional
// path the application uses, so stock decrements apply to the seeded rows
// too. Seeding an already-populated database is a no-op.
func Seed(db *gorm.DB) error {
	logrus.Info("Seeding sample data...")

	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount > 0 {
		logrus.Info("Sample data already present, skipping seed")
		return nil
	}

	return WithTransaction(db, func(tx *gorm.DB) error {
		categories := SampleCategories()
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		categoryIDs := make(map[string]uint, len(categories))
		for _, c := range categories {
			categoryIDs[c.Name] = c.ID
		}

		customers := SampleCustomers()
		if err := tx.Create(&customers).Error; err != nil {
			return fmt.Errorf("failed to seed customers: %w", err)
		}

		var products []models.Product
		for _, p := range sampleProducts() {
			catID := categoryIDs[p.Category]
			products = append(products, models.Product{
				Name:          p.Name,
				CategoryID:    &catID,
				Price:         decimal.RequireFromString(p.Price),
				StockQuantity: p.Stock,
				SKU:           p.SKU,
				IsActive:      true,
			})
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		return seedOrders(tx, customers, products)
	})
}

// seedOrders places a few orders, one of them deliberately item-less so the
// left-join projections have a zero-count row to show.
func seedOrders(tx *gorm.DB, customers []models.Customer, products []models.Product) error {
	type orderSpec struct {
		customer int
		status   models.OrderStatus
		daysAgo  int
		items    map[int]int // product index -> quantity
	}

	specs := []orderSpec{
		{customer: 0, status: models.OrderStatusDelivered, daysAgo: 30, items: map[int]int{0: 1, 3: 2}},
		{customer: 0, status: models.OrderStatusShipped, daysAgo: 7, items: map[int]int{5: 3}},
		{customer: 1, status: models.OrderStatusProcessing, daysAgo: 2, items: map[int]int{1: 1, 2: 2, 8: 1}},
		{customer: 2, status: models.OrderStatusPending, daysAgo: 1, items: map[int]int{9: 1}},
		{customer: 3, status: models.OrderStatusCancelled, daysAgo: 14, items: nil},
	}

	for _, spec := range specs {
		total := decimal.Zero
		for idx, qty := range spec.items {
			total = total.Add(products[idx].Price.Mul(decimal.NewFromInt(int64(qty))))
		}

		order := models.Order{
			CustomerID:  customers[spec.customer].ID,
			OrderDate:   time.Now().AddDate(0, 0, -spec.daysAgo),
			Status:      spec.status,
			TotalAmount: total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}

		for idx, qty := range spec.items {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: products[idx].ID,
				Quantity:  qty,
				UnitPrice: products[idx].Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to seed order item: %w", err)
			}
			// Seeded items decrement stock the same way live inserts do.
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).Error; err != nil {
				return fmt.Errorf("failed to adjust seeded stock: %w", err)
			}
		}
	}

	return nil
}
