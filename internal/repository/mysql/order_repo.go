// internal/repository/mysql/order_repo.go
package mysql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/dberrors"
	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
)

// ErrStockAdjustmentFailed aborts an order-item insert whose stock side
// effect could not be applied; the item must not persist without it.
var ErrStockAdjustmentFailed = errors.New("stock adjustment could not be applied")

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}

func (r *orderRepo) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Customer").Preload("Items").Preload("Items.Product").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("order_date DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// AddItem inserts the item and decrements the product's stock in one
// transaction: both commit together or roll back together. The UPDATE
// takes a row lock on the product, so concurrent
// inserts against the same product serialize their decrements. Stock has no
// floor; over-ordering drives it negative.
func (r *orderRepo) AddItem(item *models.OrderItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return dberrors.Translate(err)
		}

		res := tx.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
		if res.Error != nil {
			return dberrors.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			// The product vanished between the FK check and the update.
			return fmt.Errorf("product %d: %w", item.ProductID, ErrStockAdjustmentFailed)
		}

		// Re-read the row so the caller sees the generated total_price.
		return tx.First(item, item.ID).Error
	})
	return err
}

// UpdateItemQuantity changes only the quantity; MySQL recomputes the stored
// total_price. Stock is not re-adjusted: the decrement happens on insert
// only.
func (r *orderRepo) UpdateItemQuantity(itemID uint, quantity int) error {
	res := r.db.Model(&models.OrderItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if res.Error != nil {
		return dberrors.Translate(res.Error)
	}
	return nil
}

// DeleteItem removes the item without restoring stock (same asymmetry as
// UpdateItemQuantity).
func (r *orderRepo) DeleteItem(itemID uint) error {
	if err := r.db.Delete(&models.OrderItem{}, itemID).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}

func (r *orderRepo) UpdateStatus(orderID uint, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return dberrors.Translate(res.Error)
	}
	return nil
}
