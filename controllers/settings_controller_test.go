// file: controllers/settings_controller_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-skate-track/models"
	"go-skate-track/services"
)

// setup router for SettingsController tests
func setupSettingsTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	branding := services.NewBrandingService(&services.FileBrandingStore{
		Path: filepath.Join(t.TempDir(), "branding.json"),
	})
	sc := NewSettingsController(branding)
	router.GET("/api/settings", sc.GetSettings)
	router.PUT("/api/settings", sc.UpdateSettings)
	return router
}

func TestGetSettings_Defaults(t *testing.T) {
	router := setupSettingsTestRouter(t)

	req, _ := http.NewRequest("GET", "/api/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Branding   models.Branding `json:"branding"`
		LightShade string          `json:"lightShade"`
		DarkShade  string          `json:"darkShade"`
		Operator   string          `json:"operator"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.DefaultBrandName, resp.Branding.BrandName)
	assert.Equal(t, models.DefaultBrandColor, resp.Branding.BrandColor)
	assert.NotEmpty(t, resp.LightShade)
	assert.NotEmpty(t, resp.DarkShade)
	assert.Equal(t, "Front Desk", resp.Operator)
}

func TestUpdateSettings_Success(t *testing.T) {
	router := setupSettingsTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"brandName":  "Ramp House",
		"brandColor": "#ff8800",
		"operator":   "Nina",
	})
	req, _ := http.NewRequest("PUT", "/api/settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Branding models.Branding `json:"branding"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ramp House", resp.Branding.BrandName)
	assert.Equal(t, "#ff8800", resp.Branding.BrandColor)
	assert.NotEmpty(t, w.Result().Cookies(), "operator name lands in the cookie session")
}

func TestUpdateSettings_InvalidColor(t *testing.T) {
	router := setupSettingsTestRouter(t)

	body, _ := json.Marshal(map[string]string{"brandColor": "orange"})
	req, _ := http.NewRequest("PUT", "/api/settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSettings_EmptyFieldsKeepPrevious(t *testing.T) {
	router := setupSettingsTestRouter(t)

	body, _ := json.Marshal(map[string]string{"brandName": "", "brandColor": ""})
	req, _ := http.NewRequest("PUT", "/api/settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Branding models.Branding `json:"branding"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.DefaultBrandName, resp.Branding.BrandName)
	assert.Equal(t, models.DefaultBrandColor, resp.Branding.BrandColor)
}

// operator attribution flows from the settings update into session creation
func TestOperatorNameFlowsIntoSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	branding := services.NewBrandingService(&services.FileBrandingStore{
		Path: filepath.Join(t.TempDir(), "branding.json"),
	})
	settings := NewSettingsController(branding)
	sessionsCtrl := NewSessionController(services.NewSessionService(nil), services.NewExportService())
	router.PUT("/api/settings", settings.UpdateSettings)
	router.POST("/api/sessions", sessionsCtrl.CreateSession)

	// set the operator name
	body, _ := json.Marshal(map[string]string{"operator": "Nina"})
	req, _ := http.NewRequest("PUT", "/api/settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "testsession" {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)

	// create a session with the cookie attached
	body, _ = json.Marshal(map[string]interface{}{
		"name":         "Walk In",
		"participants": []models.Participant{{Name: "Walk In", ShoeSize: "41"}},
	})
	req, _ = http.NewRequest("POST", "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var sess models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.Equal(t, "Nina", sess.CreatedBy)
}
