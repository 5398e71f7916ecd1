package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minewatch-gh/minewatch-backend-go/internal/service"
	"github.com/minewatch-gh/minewatch-backend-go/pkg/response"
)

// ReportHandler handles HTTP requests for persisted reports.
type ReportHandler struct {
	service *service.AnalysisService
}

// NewReportHandler creates a report handler.
func NewReportHandler(service *service.AnalysisService) *ReportHandler {
	return &ReportHandler{service: service}
}

// List handles GET /api/v1/reports.
func (h *ReportHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	district := c.Query("district")

	reports, err := h.service.ListReports(district, limit, offset)
	if err != nil {
		response.InternalError(c, "Failed to list reports")
		return
	}

	response.Success(c, gin.H{
		"data":  reports,
		"count": len(reports),
	})
}

// Get handles GET /api/v1/reports/:id.
func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.service.GetReport(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to load report")
		return
	}
	if report == nil {
		response.NotFound(c, "Report not found")
		return
	}
	response.Success(c, report)
}
