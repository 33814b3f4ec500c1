// File: models/report.go
package models

// ----------------------- analytics record -----------------------

// SessionRecord is a dated, revenue-bearing row as the analytics page sees it.
// Any revenue-bearing entity can be summarised through this shape.
type SessionRecord struct {
	ID           int    `json:"id"`
	Date         string `json:"date"` // "yyyy-MM-dd"
	Name         string `json:"name"`
	Type         string `json:"type"` // "individual" or "group"
	Participants int    `json:"participants"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Duration     string `json:"duration"`
	ShoeSizes    string `json:"shoeSizes"`
	Revenue      int    `json:"revenue"`
}

// ----------------------- derived summaries -----------------------

// DailySummary aggregates all records of one calendar day. Recomputed on
// every query; never persisted.
type DailySummary struct {
	Date                   string `json:"date"`
	TotalRevenue           int    `json:"totalRevenue"`
	TotalSkaters           int    `json:"totalSkaters"`
	SessionCount           int    `json:"sessionCount"`
	AverageSessionDuration string `json:"averageSessionDuration"`
	Notes                  string `json:"notes"`
}

// PeriodTotals aggregates the whole filtered range for the summary cards.
type PeriodTotals struct {
	TotalSessions int `json:"totalSessions"`
	TotalSkaters  int `json:"totalSkaters"`
	TotalRevenue  int `json:"totalRevenue"`
}

// DateRange is an inclusive custom range; To may be empty, which narrows the
// filter to From's exact date.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to,omitempty"`
}
