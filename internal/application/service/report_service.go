package service

import (
	"sort"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
	"github.com/medilabs/dcreport-api/pkg/currency"
)

// maxReferrerNameLen is the display cutoff for chart labels
const maxReferrerNameLen = 15

// topReferrerLimit caps the referrer volume chart
const topReferrerLimit = 5

// ReportService computes the referrer-grouped report and the dashboard
// aggregates. All computations are pure projections over the records they
// are given.
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// ReferrerGroup is one referrer's slice of the report, with its DC subtotal
type ReferrerGroup struct {
	Referrer       string              `json:"referrer"`
	DCTotal        int64               `json:"dc_total"`
	DCTotalDisplay string              `json:"dc_total_display"`
	Cases          []entity.CaseRecord `json:"cases"`
}

// GroupCasesByReferrer partitions records by referrer, sorted by referrer
// name ascending. Cases keep their input order within each group. Groups
// with no records are never emitted.
func GroupCasesByReferrer(records []entity.CaseRecord) []ReferrerGroup {
	byReferrer := make(map[string][]entity.CaseRecord)
	for _, rec := range records {
		byReferrer[rec.Referrer] = append(byReferrer[rec.Referrer], rec)
	}

	names := make([]string, 0, len(byReferrer))
	for name := range byReferrer {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]ReferrerGroup, 0, len(names))
	for _, name := range names {
		cases := byReferrer[name]
		var total int64
		for _, c := range cases {
			total += c.DCAmount
		}
		groups = append(groups, ReferrerGroup{
			Referrer:       name,
			DCTotal:        total,
			DCTotalDisplay: currency.FormatInt(total),
			Cases:          cases,
		})
	}
	return groups
}

// GroupedReport returns the referrer-grouped report for the given records
func (s *ReportService) GroupedReport(records []entity.CaseRecord) []ReferrerGroup {
	return GroupCasesByReferrer(records)
}

// SummaryMetrics are the four scalar aggregates shown on the dashboard
type SummaryMetrics struct {
	TotalCollection        float64 `json:"total_collection"`
	TotalCollectionDisplay string  `json:"total_collection_display"`
	TotalDue               float64 `json:"total_due"`
	TotalDueDisplay        string  `json:"total_due_display"`
	TotalPatients          int     `json:"total_patients"`
	TotalDC                int64   `json:"total_dc"`
	TotalDCDisplay         string  `json:"total_dc_display"`
}

// Metrics computes the dashboard aggregates. Patients are counted by the
// full display name (name plus age); two people sharing that string collide.
func (s *ReportService) Metrics(records []entity.CaseRecord) *SummaryMetrics {
	m := &SummaryMetrics{}
	patients := make(map[string]struct{})
	for _, rec := range records {
		m.TotalCollection += rec.FeePaid
		m.TotalDue += rec.FeeDue
		m.TotalDC += rec.DCAmount
		patients[rec.PatientName] = struct{}{}
	}
	m.TotalPatients = len(patients)
	m.TotalCollectionDisplay = currency.Format(m.TotalCollection)
	m.TotalDueDisplay = currency.Format(m.TotalDue)
	m.TotalDCDisplay = currency.FormatInt(m.TotalDC)
	return m
}

// ReferrerVolume is one bar of the top-referrers chart
type ReferrerVolume struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopReferrers returns the five busiest referrers by case count, descending.
// Ties keep the order the referrers were first encountered in. Long names
// are truncated for display only.
func (s *ReportService) TopReferrers(records []entity.CaseRecord) []ReferrerVolume {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		if _, ok := counts[rec.Referrer]; !ok {
			order = append(order, rec.Referrer)
		}
		counts[rec.Referrer]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topReferrerLimit {
		order = order[:topReferrerLimit]
	}

	out := make([]ReferrerVolume, 0, len(order))
	for _, name := range order {
		out = append(out, ReferrerVolume{
			Name:  truncateName(name),
			Count: counts[name],
		})
	}
	return out
}

// CaseTypeCount is one slice of the case-type distribution chart
type CaseTypeCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CaseTypeDistribution returns the full case-type distribution, in
// first-encounter order, with no truncation or top-N limit.
func (s *ReportService) CaseTypeDistribution(records []entity.CaseRecord) []CaseTypeCount {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		if _, ok := counts[rec.CaseType]; !ok {
			order = append(order, rec.CaseType)
		}
		counts[rec.CaseType]++
	}

	out := make([]CaseTypeCount, 0, len(order))
	for _, name := range order {
		out = append(out, CaseTypeCount{Name: name, Value: counts[name]})
	}
	return out
}

// DashboardData bundles everything the overview screen renders
type DashboardData struct {
	RecordCount  int              `json:"record_count"`
	Metrics      *SummaryMetrics  `json:"metrics"`
	TopReferrers []ReferrerVolume `json:"top_referrers"`
	CaseTypes    []CaseTypeCount  `json:"case_types"`
}

// Dashboard computes the full dashboard payload for the given records
func (s *ReportService) Dashboard(records []entity.CaseRecord) *DashboardData {
	return &DashboardData{
		RecordCount:  len(records),
		Metrics:      s.Metrics(records),
		TopReferrers: s.TopReferrers(records),
		CaseTypes:    s.CaseTypeDistribution(records),
	}
}

// truncateName shortens long referrer names for chart labels
func truncateName(name string) string {
	if len(name) > maxReferrerNameLen {
		return name[:maxReferrerNameLen] + "..."
	}
	return name
}
