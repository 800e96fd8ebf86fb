package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medilabs/dcreport-api/internal/application/service"
	"github.com/medilabs/dcreport-api/internal/presentation/http/dto/response"
)

// ExportHandler serves the monthly spreadsheet export
type ExportHandler struct {
	caseService   *service.CaseService
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(caseService *service.CaseService, exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{caseService: caseService, exportService: exportService}
}

// Export handles generating the monthly report files for the records
// currently displayed (same filters as the report view) and delivers them as
// a single ZIP archive. An empty filtered set yields an explicit notice.
func (h *ExportHandler) Export(c *gin.Context) {
	records, ok := filteredRecords(c, h.caseService)
	if !ok {
		return
	}

	format := service.FormatXLS
	if c.Query("format") == string(service.FormatXLSX) {
		format = service.FormatXLSX
	}

	files, err := h.exportService.BuildFiles(records, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", `attachment; filename="`+service.ArchiveName+`"`)
	c.Status(http.StatusOK)

	if err := h.exportService.WriteArchive(c.Writer, files); err != nil {
		// Headers already went out; all we can do is record the failure
		_ = c.Error(err)
	}
}
