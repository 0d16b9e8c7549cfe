// internal/handlers/customer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplabs/shop-backend/internal/services"
	"github.com/shoplabs/shop-backend/internal/utils"
)

type CustomerHandler struct {
	customerService *services.CustomerService
	reportService   *services.ReportService
}

func NewCustomerHandler(customerService *services.CustomerService, reportService *services.ReportService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		reportService:   reportService,
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	customers, total, err := h.customerService.ListCustomers(params.Offset(), params.Limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponseWithMeta(c, customers, utils.NewPaginationResult(params, total))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid customer id", nil)
		return
	}

	customer, err := h.customerService.GetCustomer(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if customer == nil {
		utils.NotFoundResponse(c, "customer not found")
		return
	}
	utils.SuccessResponse(c, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(&req)
	if err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.CreatedResponse(c, customer)
}

// Delete cascades to the customer's orders and their items.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid customer id", nil)
		return
	}

	if err := h.customerService.DeleteCustomer(id); err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// Orders serves /api/customers/:id/orders: the order-history query, newest
// first. An unknown id yields an empty list, same as a customer without
// orders.
func (h *CustomerHandler) Orders(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid customer id", nil)
		return
	}

	history, err := h.reportService.CustomerOrderHistory(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, history)
}

// Search backs /api/search/customers.
func (h *CustomerHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.BadRequestResponse(c, "missing query parameter q", nil)
		return
	}

	params := utils.GetPaginationParams(c)
	customers, err := h.customerService.SearchCustomers(query, params.Limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, customers)
}
