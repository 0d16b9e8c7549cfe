// internal/handlers/customer_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shoplabs/shop-backend/internal/dberrors"
	"github.com/shoplabs/shop-backend/internal/mocks"
	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/services"
)

func newCustomerRouter(customers *mocks.MockCustomerRepository, reports *mocks.MockReportRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewCustomerHandler(
		services.NewCustomerService(customers),
		services.NewReportService(reports),
	)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/customers/:id", h.Get)
	api.POST("/customers", h.Create)
	api.GET("/customers/:id/orders", h.Orders)
	api.GET("/search/customers", h.Search)
	return r
}

func TestGetCustomerNotFound(t *testing.T) {
	customers := new(mocks.MockCustomerRepository)
	customers.On("FindByID", uint(99)).Return(nil, nil)

	r := newCustomerRouter(customers, new(mocks.MockReportRepository))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestGetCustomerInvalidID(t *testing.T) {
	r := newCustomerRouter(new(mocks.MockCustomerRepository), new(mocks.MockReportRepository))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCustomerSuccess(t *testing.T) {
	customers := new(mocks.MockCustomerRepository)
	customers.On("Create", mock.AnythingOfType("*models.Customer")).Return(nil)

	r := newCustomerRouter(customers, new(mocks.MockReportRepository))
	w := httptest.NewRecorder()
	body := `{"first_name":"John","last_name":"Doe","email":"john.doe@email.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    models.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "USA", resp.Data.Country)
}

func TestCreateCustomerDuplicateEmailConflicts(t *testing.T) {
	customers := new(mocks.MockCustomerRepository)
	customers.On("Create", mock.AnythingOfType("*models.Customer")).
		Return(&dberrors.UniqueViolationError{Field: "email"})

	r := newCustomerRouter(customers, new(mocks.MockReportRepository))
	w := httptest.NewRecorder()
	body := `{"first_name":"John","last_name":"Doe","email":"john.doe@email.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "UNIQUE_VIOLATION")
	assert.Contains(t, w.Body.String(), "email")
}

func TestCreateCustomerMissingEmailRejected(t *testing.T) {
	customers := new(mocks.MockCustomerRepository)

	r := newCustomerRouter(customers, new(mocks.MockReportRepository))
	w := httptest.NewRecorder()
	body := `{"first_name":"John","last_name":"Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	customers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCustomerOrdersNewestFirst(t *testing.T) {
	reports := new(mocks.MockReportRepository)
	reports.On("CustomerOrderHistory", uint(1)).Return([]models.OrderHistoryEntry{
		{OrderID: 3, OrderDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Status: models.OrderStatusPending, TotalAmount: decimal.RequireFromString("49.99"), TotalItems: 1},
		{OrderID: 1, OrderDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Status: models.OrderStatusDelivered, TotalAmount: decimal.RequireFromString("129.50"), TotalItems: 3},
	}, nil)

	r := newCustomerRouter(new(mocks.MockCustomerRepository), reports)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/1/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                       `json:"success"`
		Data    []models.OrderHistoryEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, uint(3), resp.Data[0].OrderID)
	assert.Equal(t, uint(1), resp.Data[1].OrderID)
}

func TestCustomerOrdersUnknownCustomerIsEmptyList(t *testing.T) {
	reports := new(mocks.MockReportRepository)
	reports.On("CustomerOrderHistory", uint(404)).Return([]models.OrderHistoryEntry{}, nil)

	r := newCustomerRouter(new(mocks.MockCustomerRepository), reports)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/404/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                       `json:"success"`
		Data    []models.OrderHistoryEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
}

func TestSearchCustomersRequiresQuery(t *testing.T) {
	r := newCustomerRouter(new(mocks.MockCustomerRepository), new(mocks.MockReportRepository))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search/customers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
