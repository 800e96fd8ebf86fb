package request

// CreateCaseRequest represents a manual case entry submitted by the entry
// form. Everything except the discount is required.
type CreateCaseRequest struct {
	Date           string   `json:"date" binding:"required"`
	Referrer       string   `json:"referrer" binding:"required"`
	PatientName    string   `json:"patient_name" binding:"required"`
	Age            string   `json:"age" binding:"required"`
	Investigations []string `json:"investigations" binding:"required,min=1"`
	TotalFee       float64  `json:"total_fee" binding:"required,min=0"`
	FeePaid        float64  `json:"fee_paid" binding:"min=0"`
	Discount       float64  `json:"discount" binding:"min=0"`
}

// DeleteCasesRequest represents a bulk deletion. Confirm must be true: the
// UI asks the user before calling, and the API refuses silent deletes.
type DeleteCasesRequest struct {
	IDs     []string `json:"ids" binding:"required,min=1"`
	Confirm bool     `json:"confirm"`
}

// CaseFilterRequest represents the filter bar state
type CaseFilterRequest struct {
	Search  string `form:"search"`
	Date    string `form:"date"` // "YYYY-MM-DD"
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
