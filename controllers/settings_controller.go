// Package controllers file: controllers/settings_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go-skate-track/logger"
	"go-skate-track/models"
	"go-skate-track/services"
)

// SettingsController serves the branding preferences and the operator name.
type SettingsController struct {
	BrandingService *services.BrandingService
}

// NewSettingsController creates an instance of SettingsController
func NewSettingsController(branding *services.BrandingService) *SettingsController {
	logger.Debug.Println("NewSettingsController: Initializing SettingsController")
	return &SettingsController{BrandingService: branding}
}

// updateSettingsRequest is the JSON body for PUT /api/settings. The operator
// name rides alongside the branding fields and lands in the cookie session.
type updateSettingsRequest struct {
	BrandName  string `json:"brandName"`
	BrandColor string `json:"brandColor"`
	LogoURL    string `json:"logoUrl"`
	Operator   string `json:"operator"`
}

// GetSettings returns the active branding plus its derived shades.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	branding := sc.BrandingService.Get()
	c.JSON(http.StatusOK, gin.H{
		"branding":   branding,
		"lightShade": services.Shade(branding.BrandColor, 40),
		"darkShade":  services.Shade(branding.BrandColor, -40),
		"operator":   operatorName(c),
	})
}

// UpdateSettings persists branding changes and remembers the operator name in
// the cookie session for session attribution.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn.Printf("UpdateSettings: Malformed body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	branding, err := sc.BrandingService.Update(models.Branding{
		BrandName:  req.BrandName,
		BrandColor: req.BrandColor,
		LogoURL:    req.LogoURL,
	})
	if err != nil {
		logger.Warn.Printf("UpdateSettings: Rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Operator != "" {
		session := sessions.Default(c)
		session.Set("operator", req.Operator)
		if err := session.Save(); err != nil {
			logger.Error.Printf("UpdateSettings: Error saving session for operator %s: %v", req.Operator, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving session"})
			return
		}
		logger.Info.Printf("UpdateSettings: Operator set to %s", req.Operator)
	}

	logger.Info.Printf("UpdateSettings: Branding now %q / %s", branding.BrandName, branding.BrandColor)
	c.JSON(http.StatusOK, gin.H{"branding": branding})
}
