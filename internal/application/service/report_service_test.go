package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
)

func TestGroupCasesByReferrer(t *testing.T) {
	records := []entity.CaseRecord{
		{ID: "1", Referrer: "DR. S PRASAD", DCAmount: 100},
		{ID: "2", Referrer: "DR. A K JHA", DCAmount: 250},
		{ID: "3", Referrer: "DR. S PRASAD", DCAmount: 50},
		{ID: "4", Referrer: "Unknown", DCAmount: 0},
	}

	groups := GroupCasesByReferrer(records)
	require.Len(t, groups, 3)

	// referrer name ascending
	assert.Equal(t, "DR. A K JHA", groups[0].Referrer)
	assert.Equal(t, "DR. S PRASAD", groups[1].Referrer)
	assert.Equal(t, "Unknown", groups[2].Referrer)

	assert.Equal(t, int64(250), groups[0].DCTotal)
	assert.Equal(t, int64(150), groups[1].DCTotal)
	assert.Equal(t, "150", groups[1].DCTotalDisplay)

	// input order kept within a group
	require.Len(t, groups[1].Cases, 2)
	assert.Equal(t, "1", groups[1].Cases[0].ID)
	assert.Equal(t, "3", groups[1].Cases[1].ID)
}

func TestGroupCasesByReferrerEmpty(t *testing.T) {
	assert.Empty(t, GroupCasesByReferrer(nil))
}

func TestReportServiceMetrics(t *testing.T) {
	svc := NewReportService()

	records := []entity.CaseRecord{
		{PatientName: "SUNITA DEVI 32 YRS", FeePaid: 1000, FeeDue: 200, DCAmount: 360},
		{PatientName: "RAMESH KUMAR 45 YRS", FeePaid: 2500, FeeDue: 0, DCAmount: 750},
		{PatientName: "SUNITA DEVI 32 YRS", FeePaid: 500, FeeDue: 100, DCAmount: 150},
	}

	m := svc.Metrics(records)
	assert.Equal(t, 4000.0, m.TotalCollection)
	assert.Equal(t, 300.0, m.TotalDue)
	assert.Equal(t, int64(1260), m.TotalDC)
	// same name+age string counts as one patient
	assert.Equal(t, 2, m.TotalPatients)
	assert.Equal(t, "4,000", m.TotalCollectionDisplay)
	assert.Equal(t, "1,260", m.TotalDCDisplay)
}

func TestReportServiceTopReferrers(t *testing.T) {
	svc := NewReportService()

	byReferrer := func(name string, n int) []entity.CaseRecord {
		out := make([]entity.CaseRecord, n)
		for i := range out {
			out[i] = entity.CaseRecord{Referrer: name}
		}
		return out
	}

	var records []entity.CaseRecord
	records = append(records, byReferrer("DR. A", 3)...)
	records = append(records, byReferrer("DR. B", 5)...)
	records = append(records, byReferrer("DR. C", 3)...)
	records = append(records, byReferrer("DR. D", 1)...)
	records = append(records, byReferrer("DR. E", 2)...)
	records = append(records, byReferrer("DR. F", 4)...)

	top := svc.TopReferrers(records)
	require.Len(t, top, 5)

	assert.Equal(t, ReferrerVolume{Name: "DR. B", Count: 5}, top[0])
	assert.Equal(t, ReferrerVolume{Name: "DR. F", Count: 4}, top[1])
	// tie at 3 keeps first-encounter order: A before C
	assert.Equal(t, ReferrerVolume{Name: "DR. A", Count: 3}, top[2])
	assert.Equal(t, ReferrerVolume{Name: "DR. C", Count: 3}, top[3])
	assert.Equal(t, ReferrerVolume{Name: "DR. E", Count: 2}, top[4])
}

func TestReportServiceTopReferrersTruncatesLongNames(t *testing.T) {
	svc := NewReportService()

	records := []entity.CaseRecord{
		{Referrer: "DR. MEENAKSHI SINHA"},
		{Referrer: "DR. A K JHA"},
	}

	top := svc.TopReferrers(records)
	require.Len(t, top, 2)
	assert.Equal(t, "DR. MEENAKSHI S...", top[0].Name)
	assert.Equal(t, "DR. A K JHA", top[1].Name)
}

func TestReportServiceCaseTypeDistribution(t *testing.T) {
	svc := NewReportService()

	records := []entity.CaseRecord{
		{CaseType: "USG"},
		{CaseType: "CT"},
		{CaseType: "USG"},
		{CaseType: "X-RAY"},
		{CaseType: "USG"},
	}

	dist := svc.CaseTypeDistribution(records)
	require.Len(t, dist, 3)
	assert.Equal(t, CaseTypeCount{Name: "USG", Value: 3}, dist[0])
	assert.Equal(t, CaseTypeCount{Name: "CT", Value: 1}, dist[1])
	assert.Equal(t, CaseTypeCount{Name: "X-RAY", Value: 1}, dist[2])
}

func TestReportServiceDashboard(t *testing.T) {
	svc := NewReportService()

	records := []entity.CaseRecord{
		{PatientName: "A 1 YRS", Referrer: "DR. A", CaseType: "USG", FeePaid: 100, DCAmount: 30},
		{PatientName: "B 2 YRS", Referrer: "DR. A", CaseType: "CT", FeePaid: 200, DCAmount: 60},
	}

	data := svc.Dashboard(records)
	assert.Equal(t, 2, data.RecordCount)
	require.NotNil(t, data.Metrics)
	assert.Equal(t, 300.0, data.Metrics.TotalCollection)
	require.Len(t, data.TopReferrers, 1)
	assert.Equal(t, 2, data.TopReferrers[0].Count)
	assert.Len(t, data.CaseTypes, 2)
}
