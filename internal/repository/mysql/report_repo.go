// internal/repository/mysql/report_repo.go
package mysql

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
)

// The summary projections are live queries over the base tables, never
// materialized. LEFT JOIN keeps item-less orders in the result with a zero
// count.

const orderSummaryQuery = `
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
%s
GROUP BY o.id, customer_name, c.email, o.order_date, o.status, o.total_amount
ORDER BY o.order_date DESC`

// customerOrderHistoryQuery returns a customer's orders, newest first,
// with a left-join item count.
const customerOrderHistoryQuery = `
SELECT
    o.id AS order_id,
    o.order_date,
    o.status,
    o.total_amount,
    COUNT(oi.id) AS total_items
FROM orders o
LEFT JOIN order_items oi ON oi.order_id = o.id
WHERE o.customer_id = ?
GROUP BY o.id, o.order_date, o.status, o.total_amount
ORDER BY o.order_date DESC`

const topProductsQuery = `
SELECT
    p.id AS product_id,
    p.name,
    p.sku,
    COALESCE(SUM(oi.quantity), 0) AS total_ordered,
    COALESCE(SUM(oi.total_price), 0) AS revenue
FROM products p
JOIN order_items oi ON oi.product_id = p.id
GROUP BY p.id, p.name, p.sku
ORDER BY total_ordered DESC
LIMIT ?`

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) OrderSummaries() ([]models.OrderSummary, error) {
	summaries := []models.OrderSummary{}
	query := sprintfSummary("")
	if err := r.db.Raw(query).Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *reportRepo) OrderSummariesByCustomer(customerID uint) ([]models.OrderSummary, error) {
	summaries := []models.OrderSummary{}
	query := sprintfSummary("WHERE o.customer_id = ?")
	if err := r.db.Raw(query, customerID).Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *reportRepo) CustomerOrderHistory(customerID uint) ([]models.OrderHistoryEntry, error) {
	// An unknown customer and a customer without orders both come back as
	// an empty slice; the query does not tell them apart.
	history := []models.OrderHistoryEntry{}
	if err := r.db.Raw(customerOrderHistoryQuery, customerID).Scan(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (r *reportRepo) Stats() (*models.TableStats, error) {
	var stats models.TableStats

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Category{}, &stats.Categories},
		{&models.Customer{}, &stats.Customers},
		{&models.Product{}, &stats.Products},
		{&models.Order{}, &stats.Orders},
		{&models.OrderItem{}, &stats.OrderItems},
	}

	for _, c := range counts {
		if err := r.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

func (r *reportRepo) TopProducts(limit int) ([]models.TopProduct, error) {
	products := []models.TopProduct{}
	if err := r.db.Raw(topProductsQuery, limit).Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// sprintfSummary fills the optional customer filter slot of the summary
// query.
func sprintfSummary(where string) string {
	return fmt.Sprintf(orderSummaryQuery, where)
}
