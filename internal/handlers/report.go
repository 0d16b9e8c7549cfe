// internal/handlers/report.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shoplabs/shop-backend/internal/services"
	"github.com/shoplabs/shop-backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// OrderSummary serves the live order_summary projection, optionally
// filtered with ?customer_id=.
func (h *ReportHandler) OrderSummary(c *gin.Context) {
	var customerID *uint
	if raw := c.Query("customer_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.BadRequestResponse(c, "invalid customer_id", nil)
			return
		}
		id := uint(parsed)
		customerID = &id
	}

	summaries, err := h.reportService.OrderSummaries(customerID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, summaries)
}

func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.reportService.Stats()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, stats)
}

func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	top, err := h.reportService.TopProducts(limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, top)
}
