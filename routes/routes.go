package routes

import (
	"log"

	"github.com/jaseerashabeer/smart-habit-tracker/config"
	"github.com/jaseerashabeer/smart-habit-tracker/controllers"
	"github.com/jaseerashabeer/smart-habit-tracker/middlewares"
	"github.com/jaseerashabeer/smart-habit-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	entrySvc := services.NewEntryService(config.DB)
	analyticsSvc := services.NewAnalyticsService(config.DB, entrySvc)
	customSvc := services.NewCustomHabitService(config.DB)
	exportSvc := services.NewExportService(entrySvc)
	reportSvc := services.NewReportService(config.DB, analyticsSvc)

	rt := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, push)

	entryCtl := controllers.NewEntryController(entrySvc)
	analyticsCtl := controllers.NewAnalyticsController(analyticsSvc)
	customCtl := controllers.NewCustomHabitController(customSvc)
	exportCtl := controllers.NewExportController(exportSvc)
	reportCtl := controllers.NewReportController(reportSvc)
	deviceCtl := controllers.NewDeviceController(push)
	rtCtl := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/entries", entryCtl.AddEntry)
		protected.POST("/entries/bulk", entryCtl.BulkImport)
		protected.GET("/entries", entryCtl.ListEntries)
		protected.DELETE("/entries", entryCtl.ClearEntries)

		protected.GET("/entries/export", exportCtl.ExportCSV)
		protected.POST("/entries/import", exportCtl.ImportCSV)
		protected.POST("/entries/backup", exportCtl.BackupToS3)

		protected.GET("/analytics/summary", analyticsCtl.GetSummary)
		protected.POST("/analytics/alerts/evaluate", analyticsCtl.EvaluateAlerts)
		protected.POST("/analytics/report/email", reportCtl.SendWeeklyReport)

		protected.POST("/habits/custom", customCtl.Upsert)
		protected.GET("/habits/custom", customCtl.List)

		protected.GET("/alerts", controllers.ListAlerts)
		protected.POST("/user/notifications/toggle", controllers.ToggleNotifications)
		protected.POST("/user/devices", deviceCtl.RegisterDevice)

		protected.GET("/ws/alerts", rtCtl.AlertsWS)
	}

	return r
}
