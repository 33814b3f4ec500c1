// Package services: services/session_service.go
package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go-skate-track/logger"
	"go-skate-track/models"
	"go-skate-track/timeutil"
)

// ----------------------- errors -----------------------

var (
	// ErrNoValidParticipants means every submitted participant was missing a
	// name or shoe size.
	ErrNoValidParticipants = errors.New("please add at least one participant with name and shoe size")
	// ErrSessionNotFound means the id refers to no known session (stale row).
	ErrSessionNotFound = errors.New("session not found")
)

// durationByType maps a session type to its fixed duration token.
var durationByType = map[string]string{
	models.TypeStandard: "1h",
	models.TypeExtended: "2h",
	models.TypeHalfDay:  "4h",
	models.TypeFullDay:  "8h",
}

// ----------------------- service -----------------------

// SessionServiceInterface is what the controllers and the sweep loop consume.
type SessionServiceInterface interface {
	List() []models.Session
	Get(id int) (models.Session, error)
	Search(query string) []models.Session
	Create(name string, isGroup bool, participants []models.Participant, sessionType, notes, createdBy string) (models.Session, error)
	Edit(id int, patch models.SessionPatch) (models.Session, error)
	End(id int) (models.Session, error)
	UndoLastEnd() (models.Session, bool)
	SweepExpired(now time.Time) []models.Session
	ActiveCount(now time.Time) int
	EndedSessions() []models.Session
}

// undoSlot remembers the single most recent explicit End for reversal. Each
// End overwrites it; a successful undo clears it.
type undoSlot struct {
	id             int
	previousStatus string
}

// SessionService owns the authoritative in-memory session collection.
type SessionService struct {
	mu       sync.Mutex
	sessions []models.Session
	nextID   int
	lastEnd  *undoSlot

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

// NewSessionService seeds the collection and primes the id counter past the
// highest seeded id. Ids must stay unique for the collection's whole
// lifetime, so the counter never derives from the current length.
func NewSessionService(seed []models.Session) *SessionService {
	maxID := 0
	for _, s := range seed {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return &SessionService{
		sessions: append([]models.Session(nil), seed...),
		nextID:   maxID + 1,
		now:      time.Now,
	}
}

// List returns a copy of every session, newest first.
func (s *SessionService) List() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Session(nil), s.sessions...)
}

// Get returns the session with the given id.
func (s *SessionService) Get(id int) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx == -1 {
		return models.Session{}, ErrSessionNotFound
	}
	return s.sessions[idx], nil
}

// Search filters sessions by name, participant name or shoe size.
func (s *SessionService) Search(query string) []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		return append([]models.Session(nil), s.sessions...)
	}

	var out []models.Session
	for _, sess := range s.sessions {
		if matchesQuery(sess, query) {
			out = append(out, sess)
		}
	}
	return out
}

// Create starts a new session. Participants missing a name or shoe size are
// discarded; if none survive, the collection is left untouched and
// ErrNoValidParticipants is returned. StartTime is the wall clock at call
// time and EndTime follows from the type's duration token.
func (s *SessionService) Create(name string, isGroup bool, participants []models.Participant, sessionType, notes, createdBy string) (models.Session, error) {
	valid := filterParticipants(participants)
	if len(valid) == 0 {
		logger.Warn.Printf("Create rejected for %q: no valid participants", name)
		return models.Session{}, ErrNoValidParticipants
	}

	duration, ok := durationByType[sessionType]
	if !ok {
		duration = "1h"
	}

	startTime := timeutil.FormatTimeOfDay(s.now())
	endTime, err := timeutil.ComputeEndTime(startTime, duration)
	if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.Session{
		ID:           s.nextID,
		Name:         name,
		IsGroup:      isGroup || len(valid) > 1,
		Participants: valid,
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		Status:       models.StatusActive,
		Notes:        notes,
		CreatedBy:    createdBy,
	}
	s.nextID++

	// newest sessions sit at the top of the table
	s.sessions = append([]models.Session{session}, s.sessions...)

	logger.Info.Printf("Session %d (%q) started at %s, ends %s", session.ID, session.Name, session.StartTime, session.EndTime)
	return session, nil
}

// Edit applies name, participant, duration and notes changes. StartTime and
// Status are not editable here. A duration change recomputes EndTime from
// the stored StartTime.
func (s *SessionService) Edit(id int, patch models.SessionPatch) (models.Session, error) {
	valid := filterParticipants(patch.Participants)
	if len(valid) == 0 {
		logger.Warn.Printf("Edit rejected for session %d: no valid participants", id)
		return models.Session{}, ErrNoValidParticipants
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		logger.Warn.Printf("Edit: session %d not found", id)
		return models.Session{}, ErrSessionNotFound
	}

	sess := s.sessions[idx]
	if patch.Duration != "" && patch.Duration != sess.Duration {
		endTime, err := timeutil.ComputeEndTime(sess.StartTime, patch.Duration)
		if err != nil {
			return models.Session{}, err
		}
		sess.Duration = patch.Duration
		sess.EndTime = endTime
	}
	sess.Name = patch.Name
	sess.Participants = valid
	sess.IsGroup = patch.IsGroup || len(valid) > 1
	sess.Notes = patch.Notes

	s.sessions[idx] = sess
	logger.Info.Printf("Session %d updated (duration=%s, endTime=%s)", id, sess.Duration, sess.EndTime)
	return sess, nil
}

// End marks a session completed and stores the undo slot.
func (s *SessionService) End(id int) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		logger.Warn.Printf("End: session %d not found", id)
		return models.Session{}, ErrSessionNotFound
	}

	s.lastEnd = &undoSlot{id: id, previousStatus: s.sessions[idx].Status}
	s.sessions[idx].Status = models.StatusCompleted

	logger.Info.Printf("Session %d (%q) marked completed", id, s.sessions[idx].Name)
	return s.sessions[idx], nil
}

// UndoLastEnd reverts the single most recently ended session to its prior
// status and clears the slot. With an empty slot, or if the session has
// vanished, it reports false and changes nothing.
func (s *SessionService) UndoLastEnd() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastEnd == nil {
		logger.Debug.Println("UndoLastEnd: empty undo slot, nothing to do")
		return models.Session{}, false
	}

	idx := s.indexOf(s.lastEnd.id)
	if idx == -1 {
		s.lastEnd = nil
		return models.Session{}, false
	}

	s.sessions[idx].Status = s.lastEnd.previousStatus
	logger.Info.Printf("Session %d restored to %q", s.lastEnd.id, s.lastEnd.previousStatus)
	s.lastEnd = nil
	return s.sessions[idx], true
}

// SweepExpired completes every active session whose end time has elapsed and
// returns the sessions just transitioned. A second sweep with the same now
// finds nothing left to do. The sweep never touches the undo slot; only the
// explicit End action is undoable.
func (s *SessionService) SweepExpired(now time.Time) []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var completed []models.Session
	for i, sess := range s.sessions {
		if sess.Status == models.StatusActive && timeutil.HasElapsed(sess.EndTime, now) {
			s.sessions[i].Status = models.StatusCompleted
			completed = append(completed, s.sessions[i])
		}
	}

	if len(completed) > 0 {
		logger.Info.Printf("Sweep completed %d expired session(s)", len(completed))
	}
	return completed
}

// ActiveCount counts sessions that are active and not yet past their end
// time, for the dashboard overview card.
func (s *SessionService) ActiveCount(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, sess := range s.sessions {
		if sess.Status == models.StatusActive && !timeutil.HasElapsed(sess.EndTime, now) {
			count++
		}
	}
	return count
}

// EndedSessions returns completed sessions for the TV display board.
func (s *SessionService) EndedSessions() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Session
	for _, sess := range s.sessions {
		if sess.Status == models.StatusCompleted {
			out = append(out, sess)
		}
	}
	return out
}

// DisplayStatus derives the badge state shown in tables: an active session
// past its end time renders as "time-out" without any stored transition.
func DisplayStatus(sess models.Session, now time.Time) string {
	if sess.Status == models.StatusActive && timeutil.HasElapsed(sess.EndTime, now) {
		return models.StatusTimeOut
	}
	return sess.Status
}

// ----------------------- helpers -----------------------

func (s *SessionService) indexOf(id int) int {
	for i, sess := range s.sessions {
		if sess.ID == id {
			return i
		}
	}
	return -1
}

// filterParticipants drops entries with an empty name or shoe size.
func filterParticipants(in []models.Participant) []models.Participant {
	var out []models.Participant
	for _, p := range in {
		if strings.TrimSpace(p.Name) != "" && p.ShoeSize != "" {
			out = append(out, models.Participant{Name: p.Name, ShoeSize: p.ShoeSize})
		}
	}
	return out
}

func matchesQuery(sess models.Session, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(sess.Name), q) {
		return true
	}
	for _, p := range sess.Participants {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(p.ShoeSize, query) {
			return true
		}
	}
	return false
}
