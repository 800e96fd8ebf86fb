package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medilabs/dcreport-api/internal/application/service"
	"github.com/medilabs/dcreport-api/internal/presentation/http/dto/response"
)

// ReportHandler serves the referrer-grouped DC report
type ReportHandler struct {
	caseService   *service.CaseService
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(caseService *service.CaseService, reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{caseService: caseService, reportService: reportService}
}

// GetDCReport handles the grouped report view: records partitioned by
// referrer, referrers sorted, each group carrying its DC subtotal.
func (h *ReportHandler) GetDCReport(c *gin.Context) {
	records, ok := filteredRecords(c, h.caseService)
	if !ok {
		return
	}

	groups := h.reportService.GroupedReport(records)
	response.OK(c, "DC report retrieved successfully", gin.H{
		"record_count": len(records),
		"groups":       groups,
	})
}
