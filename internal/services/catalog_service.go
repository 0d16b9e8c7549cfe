// internal/services/catalog_service.go
package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
	"github.com/shoplabs/shop-backend/internal/utils"
)

// CatalogService covers categories and products.
type CatalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty"`
}

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	Description   string          `json:"description,omitempty"`
	CategoryID    *uint           `json:"category_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	SKU           string          `json:"sku" validate:"required,max=50"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string          `json:"description,omitempty"`
	CategoryID  *uint            `json:"category_id,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

func NewCatalogService(categories repository.CategoryRepository, products repository.ProductRepository) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
	}
}

func (s *CatalogService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) GetCategory(id uint) (*models.Category, error) {
	return s.categories.FindByID(id)
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categories.FindAll()
}

// DeleteCategory removes a category. Products that referenced it survive
// with a NULL category.
func (s *CatalogService) DeleteCategory(id uint) error {
	return s.categories.Delete(id)
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative")
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		SKU:           req.SKU,
		IsActive:      true,
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.products.FindByID(id)
}

func (s *CatalogService) ListProducts(offset, limit int, filters repository.ProductFilters) ([]models.Product, int64, error) {
	return s.products.FindAll(offset, limit, filters)
}

func (s *CatalogService) UpdateProduct(id uint, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("price must not be negative")
		}
		product.Price = *req.Price
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	return s.products.Delete(id)
}
