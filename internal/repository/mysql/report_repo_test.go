// internal/repository/mysql/report_repo_test.go
package mysql

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplabs/shop-backend/internal/models"
)

var historyColumns = []string{"order_id", "order_date", "status", "total_amount", "total_items"}

var summaryColumns = []string{
	"order_id", "customer_name", "email", "order_date", "status", "total_amount", "total_items",
}

func TestCustomerOrderHistoryOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	newer := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery("LEFT JOIN order_items").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows(historyColumns).
			AddRow(12, newer, "shipped", "129.99", 3).
			AddRow(5, older, "delivered", "20.00", 0))

	history, err := repo.CustomerOrderHistory(7)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, uint(12), history[0].OrderID)
	assert.Equal(t, models.OrderStatusShipped, history[0].Status)
	assert.Equal(t, 3, history[0].TotalItems)
	assert.True(t, history[0].TotalAmount.Equal(decimal.RequireFromString("129.99")))

	// Item-less orders still appear, with a zero count.
	assert.Equal(t, uint(5), history[1].OrderID)
	assert.Equal(t, 0, history[1].TotalItems)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerOrderHistoryUnknownCustomerIsEmptyNotError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery("LEFT JOIN order_items").
		WithArgs(uint(9999)).
		WillReturnRows(sqlmock.NewRows(historyColumns))

	history, err := repo.CustomerOrderHistory(9999)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderSummariesIncludeItemlessOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	when := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("LEFT JOIN order_items").
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow(1, "John Doe", "john@x.com", when, "pending", "20.00", 1).
			AddRow(2, "Jane Smith", "jane@x.com", when, "cancelled", "0.00", 0))

	summaries, err := repo.OrderSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "John Doe", summaries[0].CustomerName)
	assert.Equal(t, 1, summaries[0].TotalItems)
	assert.Equal(t, "Jane Smith", summaries[1].CustomerName)
	assert.Equal(t, 0, summaries[1].TotalItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderSummariesByCustomerFiltersByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	when := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("WHERE o\\.customer_id = \\?").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow(4, "Carlos Garcia", "carlos@x.com", when, "processing", "45.00", 2))

	summaries, err := repo.OrderSummariesByCustomer(3)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, uint(4), summaries[0].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopProducts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery("ORDER BY total_ordered DESC").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(
			[]string{"product_id", "name", "sku", "total_ordered", "revenue"}).
			AddRow(3, "Wireless Earbuds", "ELEC-003", 40, "3599.60").
			AddRow(1, "Smartphone X", "ELEC-001", 12, "8399.88"))

	top, err := repo.TopProducts(5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "ELEC-003", top[0].SKU)
	assert.Equal(t, 40, top[0].TotalOrdered)
	assert.True(t, top[1].Revenue.Equal(decimal.RequireFromString("8399.88")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCountsEveryTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	for _, n := range []int64{5, 5, 10, 4, 7} {
		mock.ExpectQuery("SELECT count\\(\\*\\)").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
	}

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Categories)
	assert.Equal(t, int64(5), stats.Customers)
	assert.Equal(t, int64(10), stats.Products)
	assert.Equal(t, int64(4), stats.Orders)
	assert.Equal(t, int64(7), stats.OrderItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}
