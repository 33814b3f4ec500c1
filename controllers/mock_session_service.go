package controllers

import (
	"time"

	"github.com/stretchr/testify/mock"
	"go-skate-track/models"
)

// MockSessionService implements the SessionServiceInterface for testing.
type MockSessionService struct {
	mock.Mock
}

// List returns every session.
func (m *MockSessionService) List() []models.Session {
	args := m.Called()
	return args.Get(0).([]models.Session)
}

// Get returns a single session by id.
func (m *MockSessionService) Get(id int) (models.Session, error) {
	args := m.Called(id)
	return args.Get(0).(models.Session), args.Error(1)
}

// Search returns the sessions matching a query.
func (m *MockSessionService) Search(query string) []models.Session {
	args := m.Called(query)
	return args.Get(0).([]models.Session)
}

// Create starts a new session.
func (m *MockSessionService) Create(name string, isGroup bool, participants []models.Participant, sessionType, notes, createdBy string) (models.Session, error) {
	args := m.Called(name, isGroup, participants, sessionType, notes, createdBy)
	return args.Get(0).(models.Session), args.Error(1)
}

// Edit updates a session's editable fields.
func (m *MockSessionService) Edit(id int, patch models.SessionPatch) (models.Session, error) {
	args := m.Called(id, patch)
	return args.Get(0).(models.Session), args.Error(1)
}

// End marks a session completed.
func (m *MockSessionService) End(id int) (models.Session, error) {
	args := m.Called(id)
	return args.Get(0).(models.Session), args.Error(1)
}

// UndoLastEnd reverses the most recent explicit end.
func (m *MockSessionService) UndoLastEnd() (models.Session, bool) {
	args := m.Called()
	return args.Get(0).(models.Session), args.Bool(1)
}

// SweepExpired transitions elapsed sessions to completed.
func (m *MockSessionService) SweepExpired(now time.Time) []models.Session {
	args := m.Called(now)
	return args.Get(0).([]models.Session)
}

// ActiveCount counts sessions still inside their window.
func (m *MockSessionService) ActiveCount(now time.Time) int {
	args := m.Called(now)
	return args.Int(0)
}

// EndedSessions returns recently completed sessions, newest first.
func (m *MockSessionService) EndedSessions() []models.Session {
	args := m.Called()
	return args.Get(0).([]models.Session)
}
