// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shoplabs/shop-backend/internal/repository"
	"github.com/shoplabs/shop-backend/internal/services"
	"github.com/shoplabs/shop-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filters := repository.ProductFilters{
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			filters.CategoryID = &categoryID
		}
	}

	products, total, err := h.catalogService.ListProducts(params.Offset(), params.Limit, filters)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponseWithMeta(c, products, utils.NewPaginationResult(params, total))
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if product == nil {
		utils.NotFoundResponse(c, "product not found")
		return
	}
	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.CreatedResponse(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(id, &req)
	if err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	if product == nil {
		utils.NotFoundResponse(c, "product not found")
		return
	}
	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	if err := h.catalogService.DeleteProduct(id); err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// Search backs /api/search/products.
func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.BadRequestResponse(c, "missing query parameter q", nil)
		return
	}

	params := utils.GetPaginationParams(c)
	products, _, err := h.catalogService.ListProducts(0, params.Limit, repository.ProductFilters{Search: query})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, products)
}
