// internal/handler/report_handler.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/service"
	"github.com/arifrahmanandika/kangserpis/internal/utils"
)

// ReportHandler serves period report aggregates without printing them
type ReportHandler struct {
	reportService *service.ReportService
	logger        *utils.ServiceLogger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        utils.NewServiceLogger(logger, "report-handler"),
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/reports/sales", h.GetSalesReport)
}

// GetSalesReport returns the aggregated sales report for the
// start_date/end_date query parameters (inclusive calendar dates).
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "start_date and end_date are required", nil)
		return
	}

	query, err := parseReportQuery(startDate, endDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report period", err)
		return
	}

	result, err := h.reportService.GenerateReport(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("Sales report generation failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate report", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sales report generated", result)
}
