// internal/handlers/order.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/services"
	"github.com/shoplabs/shop-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	orders, err := h.orderService.ListRecentOrders(limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid order id", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if order == nil {
		utils.NotFoundResponse(c, "order not found")
		return
	}
	utils.SuccessResponse(c, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.CreatedResponse(c, order)
}

// AddItem places an item on an order; the product's stock decrements in
// the same transaction. This is the only sanctioned way to adjust stock
// during order placement.
func (h *OrderHandler) AddItem(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid order id", nil)
		return
	}

	var req services.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}
	req.OrderID = id

	item, err := h.orderService.AddOrderItem(&req)
	if err != nil {
		if errors.Is(err, services.ErrQuantityNotPositive) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.CreatedResponse(c, item)
}

func (h *OrderHandler) UpdateItemQuantity(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "invalid item id", nil)
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	if err := h.orderService.UpdateOrderItemQuantity(uint(itemID), req.Quantity); err != nil {
		if errors.Is(err, services.ErrQuantityNotPositive) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"updated": itemID})
}

func (h *OrderHandler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "invalid item id", nil)
		return
	}

	if err := h.orderService.RemoveOrderItem(uint(itemID)); err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": itemID})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid order id", nil)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	if err := h.orderService.UpdateOrderStatus(id, models.OrderStatus(req.Status)); err != nil {
		if errors.Is(err, services.ErrInvalidOrderStatus) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"updated": id})
}
