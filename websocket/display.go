// Package websocket - websocket/display.go
package websocket

import (
	"time"

	"go-skate-track/logger"
	"go-skate-track/models"
)

// SessionProvider is the slice of the session service the display loop needs.
type SessionProvider interface {
	EndedSessions() []models.Session
}

// refreshRequests wakes the display loop ahead of its minute tick when a
// screen explicitly asks for fresh data.
var refreshRequests = make(chan struct{}, 1)

// RequestRefresh wakes the display loop so the board re-renders before the
// next scheduled refresh. Safe to call from any goroutine.
func RequestRefresh() {
	requestRefresh()
}

func requestRefresh() {
	select {
	case refreshRequests <- struct{}{}:
	default:
	}
}

// displayRow is what the ended-sessions board renders per line.
type displayRow struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
}

// RunDisplayLoop drives the two display timers: a clock frame every second
// and an ended-sessions refresh every minute, plus on-demand refreshes.
// These are independent repeating timers; they only share the provider.
// The loop stops when stop is closed so an owning test can tear it down.
func RunDisplayLoop(provider SessionProvider, stop <-chan struct{}) {
	clockTicker := time.NewTicker(time.Second)
	refreshTicker := time.NewTicker(time.Minute)
	defer clockTicker.Stop()
	defer refreshTicker.Stop()

	// first frame right away so a fresh screen is never blank
	BroadcastMessage(refreshFrame(provider, time.Now()))

	for {
		select {
		case t := <-clockTicker.C:
			BroadcastMessage(clockFrame(t))
		case t := <-refreshTicker.C:
			BroadcastMessage(refreshFrame(provider, t))
		case <-refreshRequests:
			BroadcastMessage(refreshFrame(provider, time.Now()))
		case <-stop:
			logger.Info.Println("[RunDisplayLoop] stopping display timers")
			return
		}
	}
}

// clockFrame is the once-per-second header update.
func clockFrame(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"action": "clock",
		"time":   now.Format("3:04:05 PM"),
		"date":   now.Format("Monday, January 2, 2006"),
	}
}

// refreshFrame carries the ended-sessions board plus its refresh stamp.
func refreshFrame(provider SessionProvider, now time.Time) map[string]interface{} {
	ended := provider.EndedSessions()
	rows := make([]displayRow, 0, len(ended))
	for _, s := range ended {
		rows = append(rows, displayRow{
			ID:        s.ID,
			Name:      s.Name,
			Type:      s.TypeLabel(),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Duration:  s.Duration,
		})
	}
	return map[string]interface{}{
		"action":        "refreshEnded",
		"sessions":      rows,
		"lastRefreshed": now.Format("3:04:05 PM"),
	}
}

// NotifySweep pushes a completion notice after the expiry sweep transitions
// sessions, so the board and any open dashboards update immediately.
func NotifySweep(completed []models.Session) {
	if len(completed) == 0 {
		return
	}

	rows := make([]displayRow, 0, len(completed))
	for _, s := range completed {
		rows = append(rows, displayRow{
			ID:        s.ID,
			Name:      s.Name,
			Type:      s.TypeLabel(),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Duration:  s.Duration,
		})
	}

	BroadcastMessage(map[string]interface{}{
		"action":   "sessionsCompleted",
		"count":    len(completed),
		"sessions": rows,
	})
	PublishSweepTransitions(len(completed))
	logger.Info.Printf("[NotifySweep] announced %d completed session(s)", len(completed))
}
