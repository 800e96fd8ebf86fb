package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medilabs/dcreport-api/internal/application/service"
	"github.com/medilabs/dcreport-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the overview metrics and chart data
type DashboardHandler struct {
	caseService   *service.CaseService
	reportService *service.ReportService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(caseService *service.CaseService, reportService *service.ReportService) *DashboardHandler {
	return &DashboardHandler{caseService: caseService, reportService: reportService}
}

// GetStats handles getting dashboard statistics for the filtered records
func (h *DashboardHandler) GetStats(c *gin.Context) {
	records, ok := filteredRecords(c, h.caseService)
	if !ok {
		return
	}

	stats := h.reportService.Dashboard(records)
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
