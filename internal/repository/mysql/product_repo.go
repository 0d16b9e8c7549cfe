// internal/repository/mysql/product_repo.go
package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/dberrors"
	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}

func (r *productRepo) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindAll(offset, limit int, filters repository.ProductFilters) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := r.db.Model(&models.Product{}).Preload("Category")

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name LIKE ? OR sku LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Update persists catalog fields only. stock_quantity is excluded: it is
// owned by the order-item insert path, and writing the value read before
// this update would overwrite a concurrent decrement.
func (r *productRepo) Update(product *models.Product) error {
	if err := r.db.Omit("stock_quantity").Save(product).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}

func (r *productRepo) Delete(id uint) error {
	// ON DELETE CASCADE removes the product's order items; their stock
	// decrements are not reversed.
	if err := r.db.Delete(&models.Product{}, id).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}
