// internal/repository/mysql/customer_repo.go
package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/dberrors"
	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
)

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}

func (r *customerRepo) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindAll(offset, limit int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	query := r.db.Model(&models.Customer{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *customerRepo) Search(query string, limit int) ([]models.Customer, error) {
	var customers []models.Customer
	pattern := "%" + query + "%"
	err := r.db.
		Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR CONCAT(first_name, ' ', last_name) LIKE ?",
			pattern, pattern, pattern, pattern).
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepo) Delete(id uint) error {
	// ON DELETE CASCADE removes the customer's orders and, through the
	// order items' own cascade, their items. Stock is not restored.
	if err := r.db.Delete(&models.Customer{}, id).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}
