package entity

import "math"

// Remark values derived from the discount at creation time.
const (
	RemarkDiscounted = "LESS BY DR"
	RemarkDefault    = "C/O nan"
)

// CaseRecord represents one diagnostic-center billing/visit entry.
//
// Validity is enforced by the producers (the ingestion parser and the
// add-entry flow), not by the type. DCAmount and Remark are snapshots
// computed at creation time; changing the DC rate later does not rewrite
// existing records.
type CaseRecord struct {
	ID             string   `json:"id"`
	RegNo          string   `json:"reg_no"`
	CaseType       string   `json:"case_type"`
	Date           CaseDate `json:"date"`
	PatientName    string   `json:"patient_name"` // "<name> <age>", as reported
	PatientAge     string   `json:"patient_age"`
	Referrer       string   `json:"referrer"`
	Investigations string   `json:"investigations"`
	TotalFee       float64  `json:"total_fee"`
	FeePaid        float64  `json:"fee_paid"`
	FeeDue         float64  `json:"fee_due"`
	Discount       float64  `json:"discount"`
	DiscountType   string   `json:"discount_type"`
	Canceled       bool     `json:"canceled"`
	DCAmount       int64    `json:"dc_amount"`
	Remark         string   `json:"remark"`
}

// ComputeDerived applies the doctor-commission derivation rule:
// dcAmount = round(totalFee*dcRate - discount) clamped to a minimum of 0,
// and a remark of "LESS BY DR" whenever a discount was applied.
func ComputeDerived(totalFee, discount, dcRate float64) (dcAmount int64, remark string) {
	dcAmount = int64(math.Round(totalFee*dcRate - discount))
	if dcAmount < 0 {
		dcAmount = 0
	}
	remark = RemarkDefault
	if discount > 0 {
		remark = RemarkDiscounted
	}
	return dcAmount, remark
}
