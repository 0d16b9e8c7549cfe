// internal/repository/mysql/category_repo.go
package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/dberrors"
	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}

func (r *categoryRepo) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) Delete(id uint) error {
	// ON DELETE SET NULL on products.category_id keeps the products alive.
	if err := r.db.Delete(&models.Category{}, id).Error; err != nil {
		return dberrors.Translate(err)
	}
	return nil
}
