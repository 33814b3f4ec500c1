// file: services/export_service_test.go
package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-skate-track/models"
)

var exportNow = time.Date(2023, 6, 14, 10, 30, 0, 0, time.UTC)

func TestDelimitedText(t *testing.T) {
	svc := NewExportService()

	got := svc.DelimitedText(
		[]string{"ID", "Name"},
		[][]string{{"1", "Alex Smith"}, {"2", "Maya Johnson"}},
	)
	assert.Equal(t, "ID,Name\n1,Alex Smith\n2,Maya Johnson", got)
}

func TestDelimitedText_NoEscaping(t *testing.T) {
	svc := NewExportService()

	// embedded commas pass straight through, the accepted limitation
	got := svc.DelimitedText([]string{"Sizes"}, [][]string{{"45, 38, 43"}})
	assert.Equal(t, "Sizes\n45, 38, 43", got)
	assert.NotContains(t, got, `"`)
}

func TestExportFileName(t *testing.T) {
	svc := NewExportService()

	assert.Equal(t, "analytics_report_week_2023-06-14.csv",
		svc.ExportFileName("analytics_report", "week", "csv", exportNow))
	assert.Equal(t, "sessions_2023-06-14.xlsx",
		svc.ExportFileName("sessions", "", "xlsx", exportNow))
}

func TestSessionRows(t *testing.T) {
	svc := NewExportService()

	rows := svc.SessionRows(models.SeedSessions()[:1])
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"1", "Alex Smith", "No", "Alex Smith", "42", "10:30 AM", "11:30 AM", "1h", "active", "", "Admin User"}, rows[0])
	assert.Len(t, rows[0], len(SessionHeaders))
}

func TestSessionRows_Group(t *testing.T) {
	svc := NewExportService()

	// Skate Club: three participants joined into single cells
	rows := svc.SessionRows([]models.Session{models.SeedSessions()[6]})
	require.Len(t, rows, 1)
	assert.Equal(t, "Yes", rows[0][2])
	assert.Equal(t, "Michael Brown, Jessica Taylor, David Wilson", rows[0][3])
	assert.Equal(t, "45, 38, 43", rows[0][4])
}

func TestSummaryAndDetailRows(t *testing.T) {
	svc := NewExportService()

	sums := svc.SummaryRows([]models.DailySummary{{
		Date: "2023-06-14", SessionCount: 2, TotalSkaters: 2,
		TotalRevenue: 1000, AverageSessionDuration: "1h",
	}})
	require.Len(t, sums, 1)
	assert.Equal(t, []string{"Jun 14, 2023", "2", "2", "NPR 1,000", "1h", ""}, sums[0])

	details := svc.DetailRows(models.SeedSessionRecords()[:1])
	require.Len(t, details, 1)
	assert.Equal(t, []string{"Jun 14, 2023", "Alex Smith", "individual", "1", "10:30 AM", "11:30 AM", "1h", "NPR 500"}, details[0])
}

func TestDashboardReportRows_Layout(t *testing.T) {
	svc := NewExportService()

	rows := svc.DashboardReportRows(DashboardStats{
		ActiveSessions: 12,
		TodaysVisitors: "78",
		Revenue:        "NPR 4,231",
		AvailableShoes: 28,
		TotalShoes:     50,
	}, exportNow)

	require.Len(t, rows, 8)
	assert.Equal(t, []string{"Dashboard Report", "6/14/2023, 10:30:00 AM"}, rows[0])
	assert.Equal(t, []string{""}, rows[1])
	assert.Equal(t, DashboardHeaders, rows[2])
	assert.Equal(t, []string{"Active Sessions", "12"}, rows[3])
	assert.Equal(t, []string{"Today's Visitors", "78"}, rows[4])
	assert.Equal(t, []string{"Revenue", "NPR 4,231"}, rows[5])
	assert.Equal(t, []string{"Available Shoes", "28/50"}, rows[6])
	assert.Equal(t, []string{""}, rows[7])

	// the same rows render straight into the delimited download
	csv := svc.DelimitedText(nil, rows)
	assert.True(t, strings.HasPrefix(csv, "Dashboard Report,"))
	assert.Contains(t, csv, "Metric,Value")
}

func TestAnalyticsCSV_Layout(t *testing.T) {
	svc := NewExportService()
	report := NewReportService()

	records := models.SeedSessionRecords()[:2]
	csv := svc.AnalyticsCSV("week", report.DailySummaries(records), records, exportNow)

	lines := strings.Split(csv, "\n")
	require.Greater(t, len(lines), 6)
	assert.True(t, strings.HasPrefix(lines[0], "Analytics Report - week,"))
	assert.Contains(t, csv, "SUMMARY")
	assert.Contains(t, csv, "DETAILS")
	assert.Contains(t, csv, strings.Join(SummaryHeaders, ","))
	assert.Contains(t, csv, strings.Join(DetailHeaders, ","))
}

func TestWorkbook_MultiSheet(t *testing.T) {
	svc := NewExportService()

	blob, err := svc.Workbook([]Sheet{
		{Name: "Summary", Rows: [][]string{SummaryHeaders, {"Jun 14, 2023", "2", "2", "NPR 1,000", "1h", ""}}},
		{Name: "Details", Rows: [][]string{DetailHeaders}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	f, err := excelize.OpenReader(strings.NewReader(string(blob)))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Summary", "Details"}, f.GetSheetList())

	cell, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jun 14, 2023", cell)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "NPR 500", FormatCurrency(500))
	assert.Equal(t, "NPR 1,200", FormatCurrency(1200))
	assert.Equal(t, "NPR 48,000", FormatCurrency(48000))
	assert.Equal(t, "NPR 1,234,567", FormatCurrency(1234567))
	assert.Equal(t, "NPR 0", FormatCurrency(0))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Jun 05, 2023", DisplayDate("2023-06-05"))
	assert.Equal(t, "not-a-date", DisplayDate("not-a-date"))
}
