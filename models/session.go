// Package models defines data structures used across the application.
// File: models/session.go
package models

// ----------------------- session status -----------------------

// Stored session states. "time-out" is display-only and never stored; it is
// derived from (status, endTime, now) at render time.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusTimeOut   = "time-out"
)

// Session types offered at the front desk, each mapping to a fixed duration.
const (
	TypeStandard = "standard" // 1 hour
	TypeExtended = "extended" // 2 hours
	TypeHalfDay  = "half-day" // 4 hours
	TypeFullDay  = "full-day" // 8 hours
)

// ----------------------- participant model -----------------------

// Participant is one skater inside a session. It has no identity of its own
// and lives and dies with the session's participant list.
type Participant struct {
	Name     string `json:"name"`
	ShoeSize string `json:"shoeSize"`
}

// ----------------------- session model -----------------------

// Session is a timed rental record for one individual or group.
type Session struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`      // display label, individual or group
	IsGroup      bool          `json:"isGroup"`   // true when flagged or >1 participant
	Participants []Participant `json:"participants"`
	StartTime    string        `json:"startTime"` // "hh:mm AM", fixed at creation
	EndTime      string        `json:"endTime"`   // derived from StartTime + Duration
	Duration     string        `json:"duration"`  // symbolic token, e.g. "1h 15m"
	Status       string        `json:"status"`
	Notes        string        `json:"notes"`
	CreatedBy    string        `json:"createdBy"`
}

// ShoeSizes joins the participants' shoe sizes the way the tables render them.
func (s Session) ShoeSizes() string {
	out := ""
	for i, p := range s.Participants {
		if i > 0 {
			out += ", "
		}
		out += p.ShoeSize
	}
	return out
}

// ParticipantNames joins the participants' names for the export columns.
func (s Session) ParticipantNames() string {
	out := ""
	for i, p := range s.Participants {
		if i > 0 {
			out += ", "
		}
		out += p.Name
	}
	return out
}

// TypeLabel is the "Individual" / "Group" column shown on the TV display.
func (s Session) TypeLabel() string {
	if s.IsGroup {
		return "Group"
	}
	return "Individual"
}

// ----------------------- session patch -----------------------

// SessionPatch carries the editable fields of a session. StartTime and Status
// are deliberately absent; they cannot change through the edit path.
type SessionPatch struct {
	Name         string        `json:"name"`
	IsGroup      bool          `json:"isGroup"`
	Participants []Participant `json:"participants"`
	Duration     string        `json:"duration"`
	Notes        string        `json:"notes"`
}
