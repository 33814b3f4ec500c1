// main.go
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go-skate-track/controllers"
	"go-skate-track/logger"
	"go-skate-track/middleware"
	"go-skate-track/models"
	"go-skate-track/services"
	"go-skate-track/websocket"
)

// sweepInterval is how often active sessions are checked for expiry.
const sweepInterval = 60 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("main: No .env file found, using process environment")
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()
	router.Use(middleware.RequestLogger())

	// Read configuration from environment variables
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080" // Default to localhost for local testing
	}

	websocketURL := os.Getenv("WEBSOCKET_URL")
	if websocketURL == "" {
		websocketURL = "ws://localhost:8080/display-updates" // Default to localhost for local testing
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	brandingFile := os.Getenv("BRANDING_FILE")
	if brandingFile == "" {
		brandingFile = "branding.json"
	}

	controllers.SetConfig(applicationURL, websocketURL)

	// Initialize session store
	store := cookie.NewStore([]byte("secret"))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("skatesession", store))

	// Wire services over the seed data
	sessionService := services.NewSessionService(models.SeedSessions())
	reportService := services.NewReportService()
	exportService := services.NewExportService()
	inventoryService := services.NewInventoryService(models.SeedInventory())
	brandingService := services.NewBrandingService(&services.FileBrandingStore{Path: brandingFile})

	sessionController := controllers.NewSessionController(sessionService, exportService)
	reportController := controllers.NewReportController(reportService, exportService, models.SeedSessionRecords())
	inventoryController := controllers.NewInventoryController(inventoryService, exportService)
	settingsController := controllers.NewSettingsController(brandingService)
	overviewController := controllers.NewOverviewController(sessionService, inventoryService, brandingService, exportService)

	router.GET("/health", controllers.Health)
	router.GET("/qrcode", controllers.GetQRCode)
	router.GET("/display-heartbeat", gin.WrapF(HeartbeatHandler))
	router.GET("/display-updates", func(c *gin.Context) {
		websocket.ServeWs(c.Writer, c.Request)
	})

	api := router.Group("/api")
	{
		api.GET("/overview", overviewController.GetOverview)
		api.GET("/overview/export/csv", overviewController.ExportDashboardCSV)
		api.GET("/overview/export/xlsx", overviewController.ExportDashboardXLSX)

		api.GET("/sessions", sessionController.ListSessions)
		api.POST("/sessions", sessionController.CreateSession)
		api.GET("/sessions/:id", sessionController.GetSession)
		api.PUT("/sessions/:id", sessionController.EditSession)
		api.POST("/sessions/:id/end", sessionController.EndSession)
		api.POST("/sessions/undo", sessionController.UndoEnd)
		api.GET("/sessions/export/csv", sessionController.ExportSessionsCSV)
		api.GET("/sessions/export/xlsx", sessionController.ExportSessionsXLSX)

		api.GET("/analytics", reportController.GetAnalytics)
		api.GET("/analytics/details", reportController.GetAnalyticsDetails)
		api.GET("/analytics/export/csv", reportController.ExportAnalyticsCSV)
		api.GET("/analytics/export/xlsx", reportController.ExportAnalyticsXLSX)
		api.GET("/reports/export/csv", reportController.ExportReportCSV)

		api.GET("/inventory", inventoryController.ListInventory)
		api.POST("/inventory/restock", inventoryController.Restock)
		api.GET("/inventory/export/csv", inventoryController.ExportInventoryCSV)
		api.GET("/inventory/export/xlsx", inventoryController.ExportInventoryXLSX)

		api.GET("/settings", settingsController.GetSettings)
		api.PUT("/settings", settingsController.UpdateSettings)
	}

	// Start the WebSocket fan-out and the TV display loop
	stop := make(chan struct{})
	go websocket.HandleMessages()
	go websocket.RunDisplayLoop(sessionService, stop)
	go CleanupRoutine()

	// Sweep expired sessions once a minute so the board never shows a stale
	// active session for long
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			completed := sessionService.SweepExpired(time.Now())
			if len(completed) > 0 {
				logger.Info.Printf("main: Expiry sweep completed %d sessions", len(completed))
				websocket.NotifySweep(completed)
			}
		}
	}()

	logger.Info.Printf("main: Listening on :%s (application=%s)", port, applicationURL)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
