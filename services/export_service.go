// Package services: services/export_service.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"go-skate-track/logger"
	"go-skate-track/models"
)

// Sheet is one named row-set of a workbook. Sheets are a slice, not a map,
// so the workbook preserves the order the caller built them in.
type Sheet struct {
	Name string
	Rows [][]string
}

// ExportService turns tabular data into downloadable artifacts.
type ExportService struct{}

// NewExportService returns an ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// DelimitedText renders a header row plus one line per record, fields joined
// by commas and rows by newlines. Fields are not quoted or escaped; values
// containing commas shift columns, exactly as the original exports did.
func (e *ExportService) DelimitedText(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, strings.Join(headers, ","))
	}
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

// Workbook builds a multi-sheet XLSX file and returns its bytes.
func (e *ExportService) Workbook(sheets []Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn.Printf("Workbook: close failed: %v", err)
		}
	}()

	for i, sheet := range sheets {
		if i == 0 {
			// reuse the default sheet for the first row-set
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, err
		}

		for rowIdx, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			values := make([]interface{}, len(row))
			for c, v := range row {
				values[c] = v
			}
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFileName builds `<kind>_<range>_<iso-date>.<ext>`. An empty range
// label collapses to `<kind>_<iso-date>.<ext>`.
func (e *ExportService) ExportFileName(kind, rangeLabel, ext string, now time.Time) string {
	date := now.Format("2006-01-02")
	if rangeLabel == "" {
		return fmt.Sprintf("%s_%s.%s", kind, date, ext)
	}
	return fmt.Sprintf("%s_%s_%s.%s", kind, rangeLabel, date, ext)
}

// ----------------------- row builders -----------------------

// SessionHeaders are the columns of the sessions-page export.
var SessionHeaders = []string{"ID", "Name", "Group", "Participants", "Shoe Sizes", "Start Time", "End Time", "Duration", "Status", "Notes", "Created By"}

// SessionRows flattens sessions into the export column layout.
func (e *ExportService) SessionRows(sessions []models.Session) [][]string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		group := "No"
		if s.IsGroup {
			group = "Yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.Name,
			group,
			s.ParticipantNames(),
			s.ShoeSizes(),
			s.StartTime,
			s.EndTime,
			s.Duration,
			s.Status,
			s.Notes,
			s.CreatedBy,
		})
	}
	return rows
}

// SummaryHeaders are the columns of the daily-summary export.
var SummaryHeaders = []string{"Date", "Sessions", "Total Skaters", "Total Revenue", "Avg. Duration", "Notes"}

// SummaryRows renders daily summaries with display dates and currency.
func (e *ExportService) SummaryRows(summaries []models.DailySummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			DisplayDate(s.Date),
			strconv.Itoa(s.SessionCount),
			strconv.Itoa(s.TotalSkaters),
			FormatCurrency(s.TotalRevenue),
			s.AverageSessionDuration,
			s.Notes,
		})
	}
	return rows
}

// DetailHeaders are the columns of the session-details export.
var DetailHeaders = []string{"Date", "Name", "Type", "Participants", "Start Time", "End Time", "Duration", "Revenue"}

// DetailRows renders individual analytics records.
func (e *ExportService) DetailRows(records []models.SessionRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			DisplayDate(rec.Date),
			rec.Name,
			rec.Type,
			strconv.Itoa(rec.Participants),
			rec.StartTime,
			rec.EndTime,
			rec.Duration,
			FormatCurrency(rec.Revenue),
		})
	}
	return rows
}

// InventoryHeaders are the columns of the inventory export.
var InventoryHeaders = []string{"ID", "Size", "Total", "Available", "In Use", "Status"}

// InventoryRows flattens stock lines.
func (e *ExportService) InventoryRows(items []models.InventoryItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			item.Size,
			strconv.Itoa(item.Total),
			strconv.Itoa(item.Available),
			strconv.Itoa(item.InUse()),
			item.Status,
		})
	}
	return rows
}

// DashboardStats are the headline figures the dashboard report exports.
type DashboardStats struct {
	ActiveSessions int
	TodaysVisitors string
	Revenue        string
	AvailableShoes int
	TotalShoes     int
}

// DashboardHeaders are the columns of the dashboard report's metric block.
var DashboardHeaders = []string{"Metric", "Value"}

// DashboardReportRows assembles the dashboard report: a title line, then a
// Metric/Value block, closed by a blank line. The same rows feed both the
// delimited and the workbook download.
func (e *ExportService) DashboardReportRows(stats DashboardStats, now time.Time) [][]string {
	return [][]string{
		{"Dashboard Report", now.Format("1/2/2006, 3:04:05 PM")},
		{""},
		DashboardHeaders,
		{"Active Sessions", strconv.Itoa(stats.ActiveSessions)},
		{"Today's Visitors", stats.TodaysVisitors},
		{"Revenue", stats.Revenue},
		{"Available Shoes", fmt.Sprintf("%d/%d", stats.AvailableShoes, stats.TotalShoes)},
		{""},
	}
}

// AnalyticsCSV assembles the analytics export: a title line, a SUMMARY block
// and a DETAILS block in one delimited document.
func (e *ExportService) AnalyticsCSV(rangeLabel string, summaries []models.DailySummary, records []models.SessionRecord, now time.Time) string {
	var sections [][]string
	sections = append(sections, []string{"Analytics Report - " + rangeLabel, now.Format("1/2/2006, 3:04:05 PM")})
	sections = append(sections, []string{""})
	sections = append(sections, []string{"SUMMARY"})
	sections = append(sections, SummaryHeaders)
	sections = append(sections, e.SummaryRows(summaries)...)
	sections = append(sections, []string{""})
	sections = append(sections, []string{"DETAILS"})
	sections = append(sections, DetailHeaders)
	sections = append(sections, e.DetailRows(records)...)
	return e.DelimitedText(nil, sections)
}

// ----------------------- display helpers -----------------------

// DisplayDate converts "2023-06-14" to "Jun 14, 2023"; unparseable input is
// passed through unchanged.
func DisplayDate(iso string) string {
	t, err := time.Parse(dateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 02, 2006")
}

// FormatCurrency renders revenue the way the dashboard shows it, thousands
// separated: "NPR 1,200".
func FormatCurrency(value int) string {
	s := strconv.Itoa(value)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return "NPR " + s
}
