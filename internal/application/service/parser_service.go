package service

import (
	"strconv"
	"strings"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
)

// Fixed column order of the source dataset.
const (
	colID = iota
	colRegNo
	colUHID
	colDailyCaseNo
	colCaseType
	colDate
	colPatient
	colAge
	colMobile
	colAddress
	colReferrer
	colInvestigations
	colCenter
	colTotal
	colPaid
	colDue
	colDiscount
	colDiscType
	colAgent
	colCanceled
)

// minColumns is the threshold below which a row is considered malformed and
// dropped rather than failing the whole parse.
const minColumns = 5

// ParserService converts raw tab-separated case rows into normalized case
// records. Parsing is a pure function of the input text: no state, no side
// effects, safe to rerun.
type ParserService struct {
	dcRate float64
}

// NewParserService creates a parser applying the given DC rate
func NewParserService(dcRate float64) *ParserService {
	return &ParserService{dcRate: dcRate}
}

// DCRate returns the doctor-commission rate the parser derives with
func (s *ParserService) DCRate() float64 {
	return s.dcRate
}

// Parse converts raw TSV text into case records. The header row is skipped;
// rows with fewer than 5 columns are dropped silently. Field-level failures
// degrade to safe defaults, never an error.
func (s *ParserService) Parse(raw string) []entity.CaseRecord {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) <= 1 {
		return nil
	}

	records := make([]entity.CaseRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		columns := strings.Split(line, "\t")
		if len(columns) < minColumns {
			continue
		}

		name := field(columns, colPatient)
		age := field(columns, colAge)
		referrer := field(columns, colReferrer)
		if referrer == "" {
			referrer = "Unknown"
		}

		totalFee := parseAmount(field(columns, colTotal))
		discount := parseAmount(field(columns, colDiscount))
		dcAmount, remark := entity.ComputeDerived(totalFee, discount, s.dcRate)

		records = append(records, entity.CaseRecord{
			ID:             field(columns, colID),
			RegNo:          field(columns, colRegNo),
			CaseType:       field(columns, colCaseType),
			Date:           entity.ParseSourceDate(field(columns, colDate)),
			PatientName:    name + " " + age,
			PatientAge:     age,
			Referrer:       referrer,
			Investigations: field(columns, colInvestigations),
			TotalFee:       totalFee,
			FeePaid:        parseAmount(field(columns, colPaid)),
			FeeDue:         parseAmount(field(columns, colDue)),
			Discount:       discount,
			DiscountType:   field(columns, colDiscType),
			Canceled:       strings.EqualFold(field(columns, colCanceled), "TRUE"),
			DCAmount:       dcAmount,
			Remark:         remark,
		})
	}
	return records
}

// field returns the trimmed column value, or "" when the row is too short
func field(columns []string, index int) string {
	if index >= len(columns) {
		return ""
	}
	return strings.TrimSpace(columns[index])
}

// parseAmount tolerantly parses a monetary value, defaulting to 0
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
