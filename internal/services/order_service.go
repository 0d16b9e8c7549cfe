// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
	"github.com/shoplabs/shop-backend/internal/utils"
)

var (
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
)

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

type CreateOrderRequest struct {
	CustomerID      uint            `json:"customer_id" validate:"required"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status,omitempty" validate:"omitempty,order_status"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	BillingAddress  string          `json:"billing_address,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type AddOrderItemRequest struct {
	OrderID   uint             `json:"order_id" validate:"required"`
	ProductID uint             `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
	}
}

func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Status and order date default explicitly (pending / now).
	status := models.OrderStatus(req.Status)
	if status == "" {
		status = models.OrderStatusPending
	}

	order := &models.Order{
		CustomerID:      req.CustomerID,
		OrderDate:       time.Now(),
		Status:          status,
		TotalAmount:     req.TotalAmount,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	return s.orders.FindByID(id)
}

func (s *OrderService) ListRecentOrders(limit int) ([]models.Order, error) {
	return s.orders.FindRecent(limit)
}

// AddOrderItem places an item on an order. The unit price defaults to the
// product's current price when the caller does not pin one. The insert and
// the product's stock decrement happen in one transaction; there is no
// stock floor, so over-ordering drives stock_quantity negative.
//
// Callers cannot set total_price: the value is generated in the database
// from quantity and unit price.
func (s *OrderService) AddOrderItem(req *AddOrderItemRequest) (*models.OrderItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}

	unitPrice := req.UnitPrice
	if unitPrice == nil {
		product, err := s.products.FindByID(req.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("product %d not found", req.ProductID)
		}
		unitPrice = &product.Price
	}

	item := &models.OrderItem{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: *unitPrice,
	}
	if err := s.orders.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateOrderItemQuantity changes an item's quantity. total_price follows
// automatically in the database; stock does not. Only inserting an item
// touches stock.
func (s *OrderService) UpdateOrderItemQuantity(itemID uint, quantity int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	return s.orders.UpdateItemQuantity(itemID, quantity)
}

// RemoveOrderItem deletes an item without restoring stock.
func (s *OrderService) RemoveOrderItem(itemID uint) error {
	return s.orders.DeleteItem(itemID)
}

func (s *OrderService) UpdateOrderStatus(orderID uint, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidOrderStatus
	}
	return s.orders.UpdateStatus(orderID, status)
}
