// internal/handler/print_handler.go
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/model"
	"github.com/arifrahmanandika/kangserpis/internal/service"
	"github.com/arifrahmanandika/kangserpis/internal/utils"
)

const dateLayout = "2006-01-02"

// PrintHandler handles print job requests
type PrintHandler struct {
	printService *service.PrintService
	logger       *utils.ServiceLogger
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(printService *service.PrintService, logger *zap.Logger) *PrintHandler {
	return &PrintHandler{
		printService: printService,
		logger:       utils.NewServiceLogger(logger, "print-handler"),
	}
}

// RegisterRoutes registers print routes
func (h *PrintHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/print/intake", h.PrintIntakeSlip)
	router.POST("/print/sales/:transaction_id", h.PrintSaleReceipt)
	router.POST("/print/report", h.PrintPeriodReport)
}

// IntakeSlipRequest is the body of a hand-in slip print request
type IntakeSlipRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	DeviceType   string `json:"device_type" binding:"required"`
	DevicePin    string `json:"device_pin"`
	Description  string `json:"description"`
}

// ReportRequest is the body of a period report print request
type ReportRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// PrintIntakeSlip prints a customer hand-in slip
func (h *PrintHandler) PrintIntakeSlip(c *gin.Context) {
	var req IntakeSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	now := time.Now()
	slip := &model.IntakeSlip{
		SlipNumber:   model.NewSlipNumber(now),
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		DeviceType:   req.DeviceType,
		DevicePin:    req.DevicePin,
		Description:  req.Description,
		IssuedAt:     now,
	}

	outcome, err := h.printService.PrintIntakeSlip(c.Request.Context(), slip)
	if err != nil {
		h.logger.Error("Intake slip print failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to print intake slip", err)
		return
	}

	h.respondOutcome(c, outcome, gin.H{
		"outcome":     outcome,
		"slip_number": slip.SlipNumber,
		"issued_at":   slip.IssuedAt,
	})
}

// PrintSaleReceipt prints the receipt of a completed transaction
func (h *PrintHandler) PrintSaleReceipt(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "transaction_id is required", nil)
		return
	}

	outcome, err := h.printService.PrintSaleReceipt(c.Request.Context(), transactionID)
	if err != nil {
		h.logger.Error("Sale receipt print failed",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
		)
		utils.ErrorResponse(c, http.StatusNotFound, "Transaction not printable", err)
		return
	}

	h.respondOutcome(c, outcome, gin.H{"outcome": outcome})
}

// PrintPeriodReport prints the sales report for an inclusive date range
func (h *PrintHandler) PrintPeriodReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	query, err := parseReportQuery(req.StartDate, req.EndDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report period", err)
		return
	}

	outcome, err := h.printService.PrintPeriodReport(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("Period report print failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to print report", err)
		return
	}

	h.respondOutcome(c, outcome, gin.H{"outcome": outcome})
}

// respondOutcome maps the job outcome onto an HTTP status. Delivery
// failures are reported with the outcome attached so the UI can show
// the job id and reason.
func (h *PrintHandler) respondOutcome(c *gin.Context, outcome *service.PrintOutcome, data gin.H) {
	switch outcome.Status {
	case service.PrintSucceeded:
		utils.SuccessResponse(c, http.StatusOK, "Print job completed", data)
	case service.PrintCancelled:
		h.failOutcome(c, http.StatusConflict, "Print job cancelled", data)
	case service.PrintPermissionDenied:
		h.failOutcome(c, http.StatusForbidden, "Bluetooth permission denied", data)
	default:
		h.failOutcome(c, http.StatusBadGateway, "Printer unreachable", data)
	}
}

func (h *PrintHandler) failOutcome(c *gin.Context, statusCode int, message string, data gin.H) {
	c.JSON(statusCode, utils.APIResponse{
		Success:   false,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// parseReportQuery parses the inclusive calendar-date range.
func parseReportQuery(startDate, endDate string) (model.ReportQuery, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.Local)
	if err != nil {
		return model.ReportQuery{}, err
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.Local)
	if err != nil {
		return model.ReportQuery{}, err
	}
	return model.ReportQuery{StartDate: start, EndDate: end}, nil
}
