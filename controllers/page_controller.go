// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go-skate-track/logger"
	"go-skate-track/models"
	"go-skate-track/services"
	"go-skate-track/websocket"
)

var (
	ApplicationURL string
	WebsocketURL   string
)

// SetConfig sets global application and WebSocket URLs
func SetConfig(appURL, wsURL string) {
	ApplicationURL = appURL
	WebsocketURL = wsURL
	logger.Info.Printf("SetConfig: Global config updated: ApplicationURL=%s, WebsocketURL=%s", appURL, wsURL)
}

// Health reports process liveness.
func Health(c *gin.Context) {
	logger.Info.Println("Health: Health check requested")
	c.String(http.StatusOK, "OK")
}

// OverviewController serves the dashboard's headline figures and report
// downloads.
type OverviewController struct {
	SessionService   services.SessionServiceInterface
	InventoryService *services.InventoryService
	BrandingService  *services.BrandingService
	ExportService    *services.ExportService
}

// NewOverviewController creates an instance of OverviewController
func NewOverviewController(sessions services.SessionServiceInterface, inventory *services.InventoryService, branding *services.BrandingService, exports *services.ExportService) *OverviewController {
	logger.Debug.Println("NewOverviewController: Initializing OverviewController")
	return &OverviewController{
		SessionService:   sessions,
		InventoryService: inventory,
		BrandingService:  branding,
		ExportService:    exports,
	}
}

// GetOverview returns the numbers the dashboard header renders.
func (oc *OverviewController) GetOverview(c *gin.Context) {
	now := time.Now()
	inventory := oc.InventoryService.Summary()
	c.JSON(http.StatusOK, gin.H{
		"activeSessions": oc.SessionService.ActiveCount(now),
		"endedSessions":  len(oc.SessionService.EndedSessions()),
		"todaysVisitors": models.SeedTodaysVisitors,
		"revenue":        models.SeedTodaysRevenue,
		"inventory":      inventory,
		"branding":       oc.BrandingService.Get(),
		"displayScreens": websocket.ConnectionCount(),
		"websocketUrl":   WebsocketURL,
	})
}

// dashboardStats snapshots the figures the report rows render.
func (oc *OverviewController) dashboardStats(now time.Time) services.DashboardStats {
	inventory := oc.InventoryService.Summary()
	return services.DashboardStats{
		ActiveSessions: oc.SessionService.ActiveCount(now),
		TodaysVisitors: models.SeedTodaysVisitors,
		Revenue:        models.SeedTodaysRevenue,
		AvailableShoes: inventory.AvailableShoes,
		TotalShoes:     inventory.TotalShoes,
	}
}

// ExportDashboardCSV downloads the dashboard report as delimited text.
func (oc *OverviewController) ExportDashboardCSV(c *gin.Context) {
	now := time.Now()
	rows := oc.ExportService.DashboardReportRows(oc.dashboardStats(now), now)
	body := oc.ExportService.DelimitedText(nil, rows)
	name := oc.ExportService.ExportFileName("dashboard_report", "", "csv", now)

	logger.Info.Printf("ExportDashboardCSV: Exporting dashboard report as %s", name)
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "text/csv", []byte(body))
}

// ExportDashboardXLSX downloads the dashboard report as a workbook.
func (oc *OverviewController) ExportDashboardXLSX(c *gin.Context) {
	now := time.Now()
	rows := oc.ExportService.DashboardReportRows(oc.dashboardStats(now), now)

	data, err := oc.ExportService.Workbook([]services.Sheet{{Name: "Dashboard Report", Rows: rows}})
	if err != nil {
		logger.Error.Printf("ExportDashboardXLSX: Workbook build failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	name := oc.ExportService.ExportFileName("dashboard_report", "", "xlsx", now)
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// GetQRCode serves a PNG QR code linking to the TV display.
func GetQRCode(c *gin.Context) {
	logger.Info.Println("GetQRCode: Generating QR code")

	qrBytes, err := services.GenerateDisplayQRCode(300)
	if err != nil {
		logger.Error.Printf("GetQRCode: Error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"qrcode.png\"")
	if _, err := c.Writer.Write(qrBytes); err != nil {
		logger.Error.Printf("GetQRCode: Error writing QR code bytes: %v", err)
	}
}
