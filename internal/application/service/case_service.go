package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
	"github.com/medilabs/dcreport-api/internal/domain/repository"
	"github.com/medilabs/dcreport-api/pkg/apperror"
	"github.com/medilabs/dcreport-api/pkg/utils"
)

// CaseService owns the case record collection: seeding, filtering, manual
// entry and bulk deletion.
type CaseService struct {
	caseRepo repository.CaseRepository
	parser   *ParserService
	logger   *zap.Logger
}

// NewCaseService creates a new case service
func NewCaseService(caseRepo repository.CaseRepository, parser *ParserService, logger *zap.Logger) *CaseService {
	return &CaseService{caseRepo: caseRepo, parser: parser, logger: logger}
}

// Seed replaces the collection with records parsed from raw TSV text
func (s *CaseService) Seed(ctx context.Context, raw string) (int, error) {
	records := s.parser.Parse(raw)
	if err := s.caseRepo.ReplaceAll(ctx, records); err != nil {
		return 0, err
	}
	s.logger.Info("case dataset seeded", zap.Int("records", len(records)))
	return len(records), nil
}

// ListFiltered returns the collection narrowed by the active filters
func (s *CaseService) ListFiltered(ctx context.Context, search, date string) ([]entity.CaseRecord, error) {
	records, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCases(records, search, date), nil
}

// FilterCases narrows records by a free-text search term and an exact
// calendar date in "YYYY-MM-DD" form, with AND semantics. Empty filters
// return the input unchanged. The search term matches case-insensitively
// against patient name, referrer or investigations. Records whose date never
// parsed are excluded from date-filtered results.
func FilterCases(records []entity.CaseRecord, search, date string) []entity.CaseRecord {
	if search == "" && date == "" {
		return records
	}

	lower := strings.ToLower(search)
	out := make([]entity.CaseRecord, 0, len(records))
	for _, rec := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.PatientName), lower) &&
			!strings.Contains(strings.ToLower(rec.Referrer), lower) &&
			!strings.Contains(strings.ToLower(rec.Investigations), lower) {
			continue
		}
		if date != "" {
			iso := rec.Date.ISO()
			if iso == "" || iso != date {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// AddEntryInput represents a manually entered case
type AddEntryInput struct {
	Date           string // "YYYY-MM-DD"
	Referrer       string
	PatientName    string
	Age            string
	Investigations []string
	TotalFee       float64
	FeePaid        float64
	Discount       float64
}

// AddEntry creates a manually entered case record and prepends it to the
// collection. The entry carries regNo "NEW" and the default case type, and
// the DC amount and remark are derived the same way ingestion derives them.
func (s *CaseService) AddEntry(ctx context.Context, input *AddEntryInput) (*entity.CaseRecord, error) {
	date := entity.ParseISODate(input.Date)
	if !date.Parsed {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "date", Message: "must be a calendar date in YYYY-MM-DD form"},
		})
	}

	investigations := dedupe(input.Investigations)
	if len(investigations) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "investigations", Message: "at least one investigation is required"},
		})
	}

	dcAmount, remark := entity.ComputeDerived(input.TotalFee, input.Discount, s.parser.DCRate())

	record := &entity.CaseRecord{
		ID:             utils.NewEntryID(),
		RegNo:          "NEW",
		CaseType:       "USG",
		Date:           date,
		PatientName:    input.PatientName + " " + input.Age,
		PatientAge:     input.Age,
		Referrer:       input.Referrer,
		Investigations: strings.Join(investigations, ", "),
		TotalFee:       input.TotalFee,
		FeePaid:        input.FeePaid,
		FeeDue:         input.TotalFee - input.FeePaid - input.Discount,
		Discount:       input.Discount,
		Canceled:       false,
		DCAmount:       dcAmount,
		Remark:         remark,
	}

	if err := s.caseRepo.Prepend(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("case entry added",
		zap.String("id", record.ID),
		zap.String("referrer", record.Referrer))
	return record, nil
}

// DeleteEntries removes the records whose ids are given. The caller is
// responsible for obtaining user confirmation first.
func (s *CaseService) DeleteEntries(ctx context.Context, ids []string) error {
	if err := s.caseRepo.DeleteByIDs(ctx, ids); err != nil {
		return err
	}
	s.logger.Info("case entries deleted", zap.Int("requested", len(ids)))
	return nil
}

// dedupe removes duplicates while keeping first-seen order
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
