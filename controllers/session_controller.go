// Package controllers file: controllers/session_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go-skate-track/logger"
	"go-skate-track/models"
	"go-skate-track/services"
	"go-skate-track/websocket"
)

// SessionController struct with service dependency injection
type SessionController struct {
	SessionService services.SessionServiceInterface
	ExportService  *services.ExportService
}

// NewSessionController creates an instance of SessionController
func NewSessionController(service services.SessionServiceInterface, exports *services.ExportService) *SessionController {
	logger.Debug.Println("NewSessionController: Initializing SessionController")
	return &SessionController{SessionService: service, ExportService: exports}
}

// createSessionRequest is the JSON body for POST /api/sessions.
type createSessionRequest struct {
	Name         string               `json:"name"`
	IsGroup      bool                 `json:"isGroup"`
	Participants []models.Participant `json:"participants"`
	SessionType  string               `json:"sessionType"`
	Notes        string               `json:"notes"`
}

// ListSessions returns every session, optionally narrowed by ?q=.
func (sc *SessionController) ListSessions(c *gin.Context) {
	query := c.Query("q")
	var out []models.Session
	if query != "" {
		out = sc.SessionService.Search(query)
	} else {
		out = sc.SessionService.List()
	}
	logger.Debug.Printf("ListSessions: q=%q returned %d sessions", query, len(out))
	c.JSON(http.StatusOK, gin.H{"sessions": out})
}

// GetSession returns a single session by id.
func (sc *SessionController) GetSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	sess, err := sc.SessionService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// CreateSession starts a new rental session for the operator at the desk.
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn.Printf("CreateSession: Malformed body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	createdBy := operatorName(c)
	sess, err := sc.SessionService.Create(req.Name, req.IsGroup, req.Participants, req.SessionType, req.Notes, createdBy)
	if err != nil {
		logger.Warn.Printf("CreateSession: Rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info.Printf("CreateSession: Session %d (%s) started by %s, ends %s", sess.ID, sess.Name, createdBy, sess.EndTime)
	websocket.RequestRefresh()
	c.JSON(http.StatusCreated, sess)
}

// EditSession updates an active session's editable fields.
func (sc *SessionController) EditSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var patch models.SessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn.Printf("EditSession: Malformed body for session %d: %v", id, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := sc.SessionService.Edit(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info.Printf("EditSession: Session %d updated, now ends %s", sess.ID, sess.EndTime)
	websocket.RequestRefresh()
	c.JSON(http.StatusOK, sess)
}

// EndSession marks a session completed and arms the undo slot.
func (sc *SessionController) EndSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	sess, err := sc.SessionService.End(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	logger.Info.Printf("EndSession: Session %d (%s) ended by %s", sess.ID, sess.Name, operatorName(c))
	websocket.RequestRefresh()
	c.JSON(http.StatusOK, sess)
}

// UndoEnd reverses the most recent explicit end, if one is reversible.
func (sc *SessionController) UndoEnd(c *gin.Context) {
	sess, ok := sc.SessionService.UndoLastEnd()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to undo"})
		return
	}

	logger.Info.Printf("UndoEnd: Session %d restored to %s", sess.ID, sess.Status)
	websocket.RequestRefresh()
	c.JSON(http.StatusOK, sess)
}

// ExportSessionsCSV downloads the current session table as delimited text.
func (sc *SessionController) ExportSessionsCSV(c *gin.Context) {
	sessions := sc.SessionService.List()
	body := sc.ExportService.DelimitedText(services.SessionHeaders, sc.ExportService.SessionRows(sessions))
	name := sc.ExportService.ExportFileName("sessions", "", "csv", time.Now())

	logger.Info.Printf("ExportSessionsCSV: Exporting %d sessions as %s", len(sessions), name)
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "text/csv", []byte(body))
}

// ExportSessionsXLSX downloads the current session table as a workbook.
func (sc *SessionController) ExportSessionsXLSX(c *gin.Context) {
	sessions := sc.SessionService.List()
	sheet := services.Sheet{Name: "Sessions", Rows: append([][]string{services.SessionHeaders}, sc.ExportService.SessionRows(sessions)...)}

	data, err := sc.ExportService.Workbook([]services.Sheet{sheet})
	if err != nil {
		logger.Error.Printf("ExportSessionsXLSX: Workbook build failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	name := sc.ExportService.ExportFileName("sessions", "", "xlsx", time.Now())
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// operatorName reads the desk operator's name from the cookie session; new
// browsers that never visited settings fall back to the front desk default.
func operatorName(c *gin.Context) string {
	session := sessions.Default(c)
	if name, ok := session.Get("operator").(string); ok && name != "" {
		return name
	}
	return "Front Desk"
}
