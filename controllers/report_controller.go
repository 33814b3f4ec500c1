// Package controllers file: controllers/report_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go-skate-track/logger"
	"go-skate-track/models"
	"go-skate-track/services"
)

// ReportController serves the analytics and reports endpoints over the
// historical session records.
type ReportController struct {
	ReportService *services.ReportService
	ExportService *services.ExportService
	Records       []models.SessionRecord
}

// NewReportController creates an instance of ReportController
func NewReportController(reports *services.ReportService, exports *services.ExportService, records []models.SessionRecord) *ReportController {
	logger.Debug.Println("NewReportController: Initializing ReportController")
	return &ReportController{ReportService: reports, ExportService: exports, Records: records}
}

// rangeFromQuery picks the range filter out of ?range=&from=&to=. An absent
// range defaults to week, matching the dashboard's initial view.
func rangeFromQuery(c *gin.Context) (string, *models.DateRange) {
	kind := c.DefaultQuery("range", services.RangeWeek)
	if kind != services.RangeCustom {
		return kind, nil
	}
	return kind, &models.DateRange{From: c.Query("from"), To: c.Query("to")}
}

// GetAnalytics returns the range-filtered daily summaries plus period totals.
func (rc *ReportController) GetAnalytics(c *gin.Context) {
	kind, custom := rangeFromQuery(c)
	if kind == services.RangeCustom && (custom == nil || custom.From == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "custom range requires a from date"})
		return
	}

	filtered := rc.ReportService.FilterByRange(rc.Records, kind, custom)
	logger.Debug.Printf("GetAnalytics: range=%s matched %d records", kind, len(filtered))
	c.JSON(http.StatusOK, gin.H{
		"range":     kind,
		"summaries": rc.ReportService.DailySummaries(filtered),
		"totals":    rc.ReportService.Totals(filtered),
	})
}

// GetAnalyticsDetails returns the raw records behind the summaries.
func (rc *ReportController) GetAnalyticsDetails(c *gin.Context) {
	kind, custom := rangeFromQuery(c)
	filtered := rc.ReportService.FilterByRange(rc.Records, kind, custom)
	c.JSON(http.StatusOK, gin.H{"range": kind, "records": filtered})
}

// ExportAnalyticsCSV downloads the analytics report with SUMMARY and DETAILS
// blocks in one delimited document.
func (rc *ReportController) ExportAnalyticsCSV(c *gin.Context) {
	kind, custom := rangeFromQuery(c)
	filtered := rc.ReportService.FilterByRange(rc.Records, kind, custom)
	summaries := rc.ReportService.DailySummaries(filtered)

	now := time.Now()
	body := rc.ExportService.AnalyticsCSV(kind, summaries, filtered, now)
	name := rc.ExportService.ExportFileName("analytics", kind, "csv", now)

	logger.Info.Printf("ExportAnalyticsCSV: range=%s, %d days, %d records as %s", kind, len(summaries), len(filtered), name)
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "text/csv", []byte(body))
}

// ExportAnalyticsXLSX downloads the analytics report as a two-sheet workbook.
func (rc *ReportController) ExportAnalyticsXLSX(c *gin.Context) {
	kind, custom := rangeFromQuery(c)
	filtered := rc.ReportService.FilterByRange(rc.Records, kind, custom)
	summaries := rc.ReportService.DailySummaries(filtered)

	sheets := []services.Sheet{
		{Name: "Summary", Rows: append([][]string{services.SummaryHeaders}, rc.ExportService.SummaryRows(summaries)...)},
		{Name: "Details", Rows: append([][]string{services.DetailHeaders}, rc.ExportService.DetailRows(filtered)...)},
	}

	data, err := rc.ExportService.Workbook(sheets)
	if err != nil {
		logger.Error.Printf("ExportAnalyticsXLSX: Workbook build failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	name := rc.ExportService.ExportFileName("analytics", kind, "xlsx", time.Now())
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportReportCSV downloads the reports page table, one row per day.
func (rc *ReportController) ExportReportCSV(c *gin.Context) {
	kind, custom := rangeFromQuery(c)
	filtered := rc.ReportService.FilterByRange(rc.Records, kind, custom)
	summaries := rc.ReportService.DailySummaries(filtered)

	now := time.Now()
	body := rc.ExportService.DelimitedText(services.SummaryHeaders, rc.ExportService.SummaryRows(summaries))
	name := rc.ExportService.ExportFileName("report", kind, "csv", now)

	logger.Info.Printf("ExportReportCSV: range=%s, %d days as %s", kind, len(summaries), name)
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "text/csv", []byte(body))
}
