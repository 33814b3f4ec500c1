// file: services/report_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-skate-track/models"
)

func newTestReportService() *ReportService {
	svc := NewReportService()
	svc.now = func() time.Time {
		return time.Date(2023, 6, 14, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGroupByDate(t *testing.T) {
	svc := newTestReportService()
	grouped := svc.GroupByDate(models.SeedSessionRecords())

	assert.Len(t, grouped["2023-06-14"], 2)
	assert.Len(t, grouped["2023-06-13"], 2)
	assert.Len(t, grouped["2023-06-11"], 1)
	assert.Empty(t, grouped["2023-01-01"])
}

func TestSummarizeDay(t *testing.T) {
	svc := newTestReportService()

	records := []models.SessionRecord{
		{Date: "2023-06-14", Revenue: 500, Participants: 1, Duration: "1h"},
		{Date: "2023-06-14", Revenue: 500, Participants: 1, Duration: "1h"},
	}
	sum := svc.SummarizeDay("2023-06-14", records)

	assert.Equal(t, "2023-06-14", sum.Date)
	assert.Equal(t, 1000, sum.TotalRevenue)
	assert.Equal(t, 2, sum.TotalSkaters)
	assert.Equal(t, 2, sum.SessionCount)
	assert.Equal(t, "1h", sum.AverageSessionDuration)
	assert.Empty(t, sum.Notes)
}

func TestSummarizeDay_PlaceholderAverage(t *testing.T) {
	svc := newTestReportService()

	// the documented heuristic: any 2h-class session bumps the "average"
	sum := svc.SummarizeDay("2023-06-13", []models.SessionRecord{
		{Duration: "1h"},
		{Duration: "2h"},
	})
	assert.Equal(t, "1h 30m", sum.AverageSessionDuration)
}

func TestSummarizeDay_BusyDay(t *testing.T) {
	svc := newTestReportService()

	quiet := svc.SummarizeDay("d", make([]models.SessionRecord, 3))
	assert.Empty(t, quiet.Notes)

	busy := svc.SummarizeDay("d", make([]models.SessionRecord, 4))
	assert.Equal(t, "Busy day", busy.Notes)
}

func TestDailySummaries_SortedDescending(t *testing.T) {
	svc := newTestReportService()
	summaries := svc.DailySummaries(models.SeedSessionRecords())

	require.NotEmpty(t, summaries)
	for i := 1; i < len(summaries); i++ {
		assert.True(t, summaries[i-1].Date > summaries[i].Date, "summaries must be newest first")
	}
}

func TestFilterByRange_Today(t *testing.T) {
	svc := newTestReportService()

	records := []models.SessionRecord{
		{ID: 1, Date: "2023-06-14"},
		{ID: 2, Date: "2023-06-13"},
	}
	got := svc.FilterByRange(records, RangeToday, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// nothing dated today means an empty result
	assert.Empty(t, svc.FilterByRange([]models.SessionRecord{{Date: "2020-01-01"}}, RangeToday, nil))
}

func TestFilterByRange_Week(t *testing.T) {
	svc := newTestReportService()

	records := []models.SessionRecord{
		{ID: 1, Date: "2023-06-14"},
		{ID: 2, Date: "2023-06-07"}, // exactly 7 days back, inclusive
		{ID: 3, Date: "2023-06-06"},
	}
	got := svc.FilterByRange(records, RangeWeek, nil)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

func TestFilterByRange_Custom(t *testing.T) {
	svc := newTestReportService()
	records := models.SeedSessionRecords()

	// from only: exact date match
	exact := svc.FilterByRange(records, RangeCustom, &models.DateRange{From: "2023-06-07"})
	assert.Len(t, exact, 2)

	// from..to inclusive
	span := svc.FilterByRange(records, RangeCustom, &models.DateRange{From: "2023-06-10", To: "2023-06-13"})
	assert.Len(t, span, 6)

	// missing from yields nothing
	assert.Empty(t, svc.FilterByRange(records, RangeCustom, nil))
	assert.Empty(t, svc.FilterByRange(records, RangeCustom, &models.DateRange{}))
}

func TestFilterByRange_UnknownKind(t *testing.T) {
	svc := newTestReportService()
	assert.Empty(t, svc.FilterByRange(models.SeedSessionRecords(), "fortnight", nil))
}

func TestTotals(t *testing.T) {
	svc := newTestReportService()

	totals := svc.Totals([]models.SessionRecord{
		{Participants: 1, Revenue: 500},
		{Participants: 3, Revenue: 1200},
	})
	assert.Equal(t, models.PeriodTotals{TotalSessions: 2, TotalSkaters: 4, TotalRevenue: 1700}, totals)

	assert.Equal(t, models.PeriodTotals{}, svc.Totals(nil))
}
