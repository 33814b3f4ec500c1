// file: heartbeat.go
package main

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"go-skate-track/logger"
)

var (
	screenSessions = make(map[string]time.Time)
	screenLock     = sync.Mutex{}
)

// HeartbeatHandler updates the last seen timestamp of a display screen
func HeartbeatHandler(w http.ResponseWriter, r *http.Request) {
	screenID := r.URL.Query().Get("screen_id")
	if screenID == "" {
		logger.Warn.Println("[HeartbeatHandler] Missing screen ID in query params")
		http.Error(w, "Missing screen ID", http.StatusBadRequest)
		return
	}

	screenLock.Lock()
	screenSessions[screenID] = time.Now()
	screenLock.Unlock()

	logger.Debug.Printf("[HeartbeatHandler] Updated heartbeat for screen=%s at %v", screenID, time.Now())

	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintln(w, "Heartbeat received"); err != nil {
		logger.Warn.Printf("[HeartbeatHandler] Error writing response for screen=%s: %v", screenID, err)
	}
}

// ActiveScreens lists the screens seen within the given window.
func ActiveScreens(window time.Duration) []string {
	screenLock.Lock()
	defer screenLock.Unlock()

	var out []string
	for id, lastSeen := range screenSessions {
		if time.Since(lastSeen) <= window {
			out = append(out, id)
		}
	}
	return out
}

// CleanupRoutine removes screens that have stopped pinging
func CleanupRoutine() {
	ticker := time.NewTicker(10 * time.Second)
	for range ticker.C {
		screenLock.Lock()
		for id, lastSeen := range screenSessions {
			if time.Since(lastSeen) > 1800*time.Second { // 30 minutes, a wall screen that dark is off
				logger.Info.Printf("[CleanupRoutine] Removing inactive screen=%s (30 minutes)", id)
				delete(screenSessions, id)
			}
		}
		screenLock.Unlock()
	}
}
