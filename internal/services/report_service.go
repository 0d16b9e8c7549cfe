// internal/services/report_service.go
package services

import (
	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
)

// ReportService exposes the read-only projections: the order summary view,
// the customer order history routine, table stats and best sellers. All of
// them compute live against the base tables; nothing here is cached.
type ReportService struct {
	reports repository.ReportRepository
}

func NewReportService(reports repository.ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

// OrderSummaries lists every order with customer name/email and item count,
// optionally filtered to one customer.
func (s *ReportService) OrderSummaries(customerID *uint) ([]models.OrderSummary, error) {
	if customerID != nil {
		return s.reports.OrderSummariesByCustomer(*customerID)
	}
	return s.reports.OrderSummaries()
}

// CustomerOrderHistory returns a customer's orders newest-first. A customer
// with no orders and an unknown identifier both yield an empty result; the
// query does not distinguish them.
func (s *ReportService) CustomerOrderHistory(customerID uint) ([]models.OrderHistoryEntry, error) {
	return s.reports.CustomerOrderHistory(customerID)
}

func (s *ReportService) Stats() (*models.TableStats, error) {
	return s.reports.Stats()
}

func (s *ReportService) TopProducts(limit int) ([]models.TopProduct, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.reports.TopProducts(limit)
}
