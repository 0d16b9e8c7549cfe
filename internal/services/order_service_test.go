// internal/services/order_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shoplabs/shop-backend/internal/dberrors"
	"github.com/shoplabs/shop-backend/internal/mocks"
	"github.com/shoplabs/shop-backend/internal/models"
)

func TestCreateOrderDefaultsToPending(t *testing.T) {
	mockOrders := new(mocks.MockOrderRepository)
	mockProducts := new(mocks.MockProductRepository)
	svc := NewOrderService(mockOrders, mockProducts)

	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
		order := args.Get(0).(*models.Order)
		order.ID = 1
	})

	order, err := svc.CreateOrder(&CreateOrderRequest{
		CustomerID:  7,
		TotalAmount: decimal.RequireFromString("20.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.OrderDate.IsZero())
	mockOrders.AssertExpectations(t)
}

func TestCreateOrderRejectsUnknownStatus(t *testing.T) {
	mockOrders := new(mocks.MockOrderRepository)
	mockProducts := new(mocks.MockProductRepository)
	svc := NewOrderService(mockOrders, mockProducts)

	_, err := svc.CreateOrder(&CreateOrderRequest{
		CustomerID:  7,
		TotalAmount: decimal.RequireFromString("20.00"),
		Status:      "misplaced",
	})
	require.Error(t, err)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateOrderPropagatesForeignKeyError(t *testing.T) {
	mockOrders := new(mocks.MockOrderRepository)
	mockProducts := new(mocks.MockProductRepository)
	svc := NewOrderService(mockOrders, mockProducts)

	fkErr := &dberrors.ForeignKeyError{Constraint: "fk_orders_customer"}
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(fkErr)

	_, err := svc.CreateOrder(&CreateOrderRequest{
		CustomerID:  999,
		TotalAmount: decimal.RequireFromString("20.00"),
	})

	var fk *dberrors.ForeignKeyError
	require.True(t, errors.As(err, &fk))
	mockOrders.AssertExpectations(t)
}

func TestAddOrderItemRejectsNonPositiveQuantity(t *testing.T) {
	mockOrders := new(mocks.MockOrderRepository)
	mockProducts := new(mocks.MockProductRepository)
	svc := NewOrderService(mockOrders, mockProducts)

	price := decimal.RequireFromString("10.00")
	for _, qty := range []int{0, -3} {
		_, err := svc.AddOrderItem(&AddOrderItemRequest{
			OrderID:   1,
			ProductID: 3,
			Quantity:  qty,
			UnitPrice: &price,
		})
		require.Error(t, err)
	}
	mockOrders.AssertNotCalled(t, "AddItem", mock.Anything)
}

func TestAddOrderItemUsesProductPriceWhenUnset(t *testing.T) {
	mockOrders := new(mocks.MockOrderRepository)
	mockProducts := new(mocks.MockProductRepository)
	svc := NewOrderService(mockOrders, mockProducts)

	mockProducts.On("FindByID", uint(3)).Return(&models.Product{
		ID:    3,
		Name:  "Widget",
		Price: decimal.RequireFromString("10.00"),
	}, nil)
	mockOrders.On("AddItem", mock.AnythingOfType("*models.OrderItem")).Return(nil).Run(func(args mock.Arguments) {
		item := args.Get(0).(*models.OrderItem)
		item.ID = 42
		item.TotalPrice = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	})

	item, err := svc.AddOrderItem(&AddOrderItemRequest{
		OrderID:   1,
		ProductID: 3,
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("20.00")))
	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestAddOrderItemUnknownProduct(t *testing.T) {
	mockOrders := new(mocks.MockOrderRepository)
	mockProducts := new(mocks.MockProductRepository)
	svc := NewOrderService(mockOrders, mockProducts)

	mockProducts.On("FindByID", uint(999)).Return(nil, nil)

	_, err := svc.AddOrderItem(&AddOrderItemRequest{
		OrderID:   1,
		ProductID: 999,
		Quantity:  1,
	})
	require.Error(t, err)
	mockOrders.AssertNotCalled(t, "AddItem", mock.Anything)
}

func TestUpdateOrderItemQuantityValidatesBeforeTouchingStorage(t *testing.T) {
	mockOrders := new(mocks.MockOrderRepository)
	mockProducts := new(mocks.MockProductRepository)
	svc := NewOrderService(mockOrders, mockProducts)

	require.ErrorIs(t, svc.UpdateOrderItemQuantity(42, 0), ErrQuantityNotPositive)
	mockOrders.AssertNotCalled(t, "UpdateItemQuantity", mock.Anything, mock.Anything)

	mockOrders.On("UpdateItemQuantity", uint(42), 5).Return(nil)
	require.NoError(t, svc.UpdateOrderItemQuantity(42, 5))
	mockOrders.AssertExpectations(t)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	mockOrders := new(mocks.MockOrderRepository)
	mockProducts := new(mocks.MockProductRepository)
	svc := NewOrderService(mockOrders, mockProducts)

	require.ErrorIs(t, svc.UpdateOrderStatus(1, "lost"), ErrInvalidOrderStatus)

	mockOrders.On("UpdateStatus", uint(1), models.OrderStatusShipped).Return(nil)
	require.NoError(t, svc.UpdateOrderStatus(1, models.OrderStatusShipped))
	mockOrders.AssertExpectations(t)
}
