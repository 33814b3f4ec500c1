// Package services: services/report_service.go
package services

import (
	"sort"
	"strings"
	"time"

	"go-skate-track/logger"
	"go-skate-track/models"
)

// Range kinds accepted by FilterByRange.
const (
	RangeToday  = "today"
	RangeWeek   = "week"
	RangeMonth  = "month"
	RangeYear   = "year"
	RangeCustom = "custom"
)

const dateLayout = "2006-01-02"

// ReportService groups dated, revenue-bearing records by day and derives the
// summary rows for the analytics and reports pages. It holds no state of its
// own; callers hand it whatever record list is currently materialized.
type ReportService struct {
	// now is swappable so tests can pin "today".
	now func() time.Time
}

// NewReportService returns a ReportService on the real clock.
func NewReportService() *ReportService {
	return &ReportService{now: time.Now}
}

// GroupByDate buckets records by exact date-string equality. No timezone
// normalization happens beyond the date's own string form.
func (r *ReportService) GroupByDate(records []models.SessionRecord) map[string][]models.SessionRecord {
	grouped := make(map[string][]models.SessionRecord)
	for _, rec := range records {
		grouped[rec.Date] = append(grouped[rec.Date], rec)
	}
	return grouped
}

// SummarizeDay folds one day's records into a DailySummary. The average
// duration is the source's placeholder rule, not a true average: "1h 30m"
// when any session that day runs a 2-hour class, "1h" otherwise.
func (r *ReportService) SummarizeDay(date string, records []models.SessionRecord) models.DailySummary {
	summary := models.DailySummary{
		Date:                   date,
		SessionCount:           len(records),
		AverageSessionDuration: "1h",
	}

	hasLonger := false
	for _, rec := range records {
		summary.TotalRevenue += rec.Revenue
		summary.TotalSkaters += rec.Participants
		if strings.Contains(rec.Duration, "2h") {
			hasLonger = true
		}
	}
	if hasLonger {
		summary.AverageSessionDuration = "1h 30m"
	}
	if summary.SessionCount > 3 {
		summary.Notes = "Busy day"
	}
	return summary
}

// DailySummaries produces one summary per day, newest date first.
func (r *ReportService) DailySummaries(records []models.SessionRecord) []models.DailySummary {
	grouped := r.GroupByDate(records)

	out := make([]models.DailySummary, 0, len(grouped))
	for date, recs := range grouped {
		out = append(out, r.SummarizeDay(date, recs))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// FilterByRange keeps records whose date falls in the requested window.
// today matches the current calendar day only; week/month/year reach back
// 7/30/365 days, inclusive at both ends by calendar date. custom takes a
// {from[,to]} pair; with no to, only from's exact date matches.
func (r *ReportService) FilterByRange(records []models.SessionRecord, kind string, custom *models.DateRange) []models.SessionRecord {
	today := r.now().Format(dateLayout)

	var from, to string
	switch kind {
	case RangeToday:
		from, to = today, today
	case RangeWeek:
		from, to = r.now().AddDate(0, 0, -7).Format(dateLayout), today
	case RangeMonth:
		from, to = r.now().AddDate(0, 0, -30).Format(dateLayout), today
	case RangeYear:
		from, to = r.now().AddDate(0, 0, -365).Format(dateLayout), today
	case RangeCustom:
		if custom == nil || custom.From == "" {
			logger.Warn.Println("FilterByRange: custom range requested without a from date")
			return nil
		}
		from = custom.From
		to = custom.To
		if to == "" {
			to = from
		}
	default:
		logger.Warn.Printf("FilterByRange: unknown range kind %q", kind)
		return nil
	}

	var out []models.SessionRecord
	for _, rec := range records {
		// ISO dates compare correctly as strings
		if rec.Date >= from && rec.Date <= to {
			out = append(out, rec)
		}
	}
	return out
}

// Totals folds a filtered range into the three summary-card numbers.
func (r *ReportService) Totals(records []models.SessionRecord) models.PeriodTotals {
	totals := models.PeriodTotals{TotalSessions: len(records)}
	for _, rec := range records {
		totals.TotalSkaters += rec.Participants
		totals.TotalRevenue += rec.Revenue
	}
	return totals
}
