// internal/handlers/category.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shoplabs/shop-backend/internal/services"
	"github.com/shoplabs/shop-backend/internal/utils"
)

type CategoryHandler struct {
	catalogService *services.CatalogService
}

func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid category id", nil)
		return
	}

	category, err := h.catalogService.GetCategory(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if category == nil {
		utils.NotFoundResponse(c, "category not found")
		return
	}
	utils.SuccessResponse(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.CreatedResponse(c, category)
}

// Delete removes a category; products that pointed at it stay, with their
// category cleared.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "invalid category id", nil)
		return
	}

	if err := h.catalogService.DeleteCategory(id); err != nil {
		utils.ConstraintAwareError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": id})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
