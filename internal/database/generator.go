// internal/database/generator.go
package database

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/models"
)

// DataGenerator produces larger datasets for performance practice. It
// writes through the same invariants as live traffic: generated orders get
// their items inserted with the matching stock decrement.
type DataGenerator struct {
	db  *gorm.DB
	rng *rand.Rand
}

func NewDataGenerator(db *gorm.DB) *DataGenerator {
	return &DataGenerator{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var (
	generatorFirstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
		"Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Christopher", "Karen",
	}

	generatorLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor",
		"Thomas", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White",
	}

	generatorCities = []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
		"Austin", "Seattle", "Denver", "Boston", "Portland",
	}
)

// GenerateCustomers inserts n synthetic customers with unique emails.
func (g *DataGenerator) GenerateCustomers(n int) error {
	logrus.WithField("count", n).Info("Generating customers...")

	customers := make([]models.Customer, 0, n)
	stamp := time.Now().UnixNano()
	for i := 0; i < n; i++ {
		first := generatorFirstNames[g.rng.Intn(len(generatorFirstNames))]
		last := generatorLastNames[g.rng.Intn(len(generatorLastNames))]
		customers = append(customers, models.Customer{
			FirstName: first,
			LastName:  last,
			Email:     fmt.Sprintf("%s.%s.%d.%d@example.com", first, last, stamp, i),
			City:      generatorCities[g.rng.Intn(len(generatorCities))],
			Country:   models.DefaultCountry,
		})
	}

	return g.db.CreateInBatches(&customers, 100).Error
}

// GenerateOrders places n random orders, each with 1-4 items against the
// existing product catalog. Quantities stay small so generated load does not
// drive stock negative immediately; the schema would permit it regardless.
func (g *DataGenerator) GenerateOrders(n int) error {
	logrus.WithField("count", n).Info("Generating orders...")

	var customers []models.Customer
	if err := g.db.Find(&customers).Error; err != nil {
		return err
	}
	var products []models.Product
	if err := g.db.Where("is_active = ?", true).Find(&products).Error; err != nil {
		return err
	}
	if len(customers) == 0 || len(products) == 0 {
		return fmt.Errorf("cannot generate orders without customers and products")
	}

	statuses := []models.OrderStatus{
		models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}

	for i := 0; i < n; i++ {
		customer := customers[g.rng.Intn(len(customers))]
		itemCount := 1 + g.rng.Intn(4)

		err := WithTransaction(g.db, func(tx *gorm.DB) error {
			order := models.Order{
				CustomerID:  customer.ID,
				OrderDate:   time.Now().AddDate(0, 0, -g.rng.Intn(365)),
				Status:      statuses[g.rng.Intn(len(statuses))],
				TotalAmount: decimal.Zero,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			total := decimal.Zero
			for j := 0; j < itemCount; j++ {
				product := products[g.rng.Intn(len(products))]
				qty := 1 + g.rng.Intn(3)

				item := models.OrderItem{
					OrderID:   order.ID,
					ProductID: product.ID,
					Quantity:  qty,
					UnitPrice: product.Price,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.Product{}).
					Where("id = ?", product.ID).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty)).Error; err != nil {
					return err
				}
				total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(qty))))
			}

			return tx.Model(&order).Update("total_amount", total).Error
		})
		if err != nil {
			return fmt.Errorf("failed to generate order %d: %w", i, err)
		}
	}

	return nil
}
