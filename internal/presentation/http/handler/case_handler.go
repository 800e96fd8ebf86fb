package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medilabs/dcreport-api/internal/application/service"
	"github.com/medilabs/dcreport-api/internal/domain/entity"
	"github.com/medilabs/dcreport-api/internal/presentation/http/dto/request"
	"github.com/medilabs/dcreport-api/internal/presentation/http/dto/response"
	"github.com/medilabs/dcreport-api/pkg/pagination"
)

// CaseHandler handles case record HTTP requests
type CaseHandler struct {
	caseService *service.CaseService
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseService *service.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// List handles listing case records with the filter bar state applied
func (h *CaseHandler) List(c *gin.Context) {
	var req request.CaseFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	records, err := h.caseService.ListFiltered(c.Request.Context(), req.Search, req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	page := pagination.Slice(records, params)
	pag := pagination.NewPagination(params.Page, params.PerPage, int64(len(records)))
	response.SuccessWithPagination(c, 200, "Case records retrieved successfully",
		pagination.NewPaginatedResult(page, pag))
}

// Create handles adding a manually entered case record
func (h *CaseHandler) Create(c *gin.Context) {
	var req request.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.caseService.AddEntry(c.Request.Context(), &service.AddEntryInput{
		Date:           req.Date,
		Referrer:       req.Referrer,
		PatientName:    req.PatientName,
		Age:            req.Age,
		Investigations: req.Investigations,
		TotalFee:       req.TotalFee,
		FeePaid:        req.FeePaid,
		Discount:       req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Case entry added successfully", record)
}

// Delete handles bulk deletion of case records by id. The request must carry
// confirm=true: confirmation happens in the UI, and the API refuses to treat
// deletion as a silent default.
func (h *CaseHandler) Delete(c *gin.Context) {
	var req request.DeleteCasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !req.Confirm {
		response.BadRequest(c, "Deletion requires confirmation")
		return
	}

	if err := h.caseService.DeleteEntries(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Case entries deleted successfully", gin.H{"deleted_ids": req.IDs})
}

// filteredRecords applies the shared filter bar parameters used by the
// report, dashboard and export endpoints.
func filteredRecords(c *gin.Context, caseService *service.CaseService) ([]entity.CaseRecord, bool) {
	search := c.Query("search")
	date := c.Query("date")

	records, err := caseService.ListFiltered(c.Request.Context(), search, date)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return records, true
}
