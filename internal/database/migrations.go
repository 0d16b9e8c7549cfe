// internal/database/migrations.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/models"
)

// Tables in dependency order: parents before children. Drops happen in
// reverse so foreign keys never block a reset.
func migrationOrder() []interface{} {
	return []interface{}{
		&models.Category{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	}
}

// OrderSummaryViewSQL defines the order_summary view: one row per order with
// the customer's name/email and a LEFT JOIN count of its items, so orders
// without items still appear with total_items = 0.
const OrderSummaryViewSQL = `
CREATE OR REPLACE VIEW order_summary AS
SELECT
    o.id AS order_id,
    CONCAT(c.first_name, ' ', c.last_name) AS customer_name,
    c.email,
    o.order_date,
    o.status,
    o.total_amount,
    COUNT(oi.id) AS total_items
FROM orders o
JOIN customers c ON c.id = o.customer_id
LEFT JOIN order_items oi ON oi.order_id = o.id
GROUP BY o.id, customer_name, c.email, o.order_date, o.status, o.total_amount`

const dropOrderSummaryViewSQL = `DROP VIEW IF EXISTS order_summary`

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.AutoMigrate(migrationOrder()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.Exec(OrderSummaryViewSQL).Error; err != nil {
		return fmt.Errorf("failed to create order_summary view: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

// DropAll removes the view and every table in reverse dependency order,
// giving the clean-reset contract of the setup routine.
func DropAll(db *gorm.DB) error {
	logrus.Info("Dropping database objects...")

	if err := db.Exec(dropOrderSummaryViewSQL).Error; err != nil {
		return fmt.Errorf("failed to drop order_summary view: %w", err)
	}

	tables := migrationOrder()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX idx_orders_customer_date ON orders(customer_id, order_date DESC)",
		"CREATE INDEX idx_orders_status ON orders(status)",
		"CREATE INDEX idx_products_active ON products(is_active)",
		"CREATE INDEX idx_order_items_order_product ON order_items(order_id, product_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}
