package router

import (
	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/handler"
)

// RegisterUserRoutes registers the routes every authenticated user can reach:
// their own device controls, their own telemetry and the read-only content
// views. The group passed in already carries the bearer-token gate.
func RegisterUserRoutes(g *echo.Group, devices *handler.DeviceHandler, health *handler.HealthMonitoringHandler, content *handler.ContentHandler) {
	// Device controls. The four boolean devices share one parametric route
	// set; temp-tank and led-color carry different value types and get their
	// own. Echo resolves the static segments ahead of the :device param.
	dc := g.Group("/device-controls")

	dc.POST("/temp-tank", devices.CreateTempTank)
	dc.GET("/temp-tank", devices.ListTempTanks)
	dc.GET("/temp-tank/:id", devices.GetTempTank)
	dc.PUT("/temp-tank/:id", devices.UpdateTempTank)
	dc.DELETE("/temp-tank/:id", devices.DeleteTempTank)

	dc.POST("/led-color", devices.CreateLedColor)
	dc.GET("/led-color", devices.ListLedColors)
	dc.GET("/led-color/:id", devices.GetLedColor)
	dc.PUT("/led-color/:id", devices.UpdateLedColor)
	dc.DELETE("/led-color/:id", devices.DeleteLedColor)

	dc.POST("/:device", devices.CreateSwitch)
	dc.GET("/:device", devices.ListSwitch)
	dc.GET("/:device/:id", devices.GetSwitch)
	dc.PUT("/:device/:id", devices.UpdateSwitch)
	dc.DELETE("/:device/:id", devices.DeleteSwitch)

	// Health monitoring.
	hm := g.Group("/health-monitoring")

	hm.POST("/biofeedback", health.CreateBiofeedback)
	hm.GET("/biofeedback", health.ListBiofeedback)
	hm.GET("/biofeedback/:id", health.GetBiofeedback)
	hm.PUT("/biofeedback/:id", health.UpdateBiofeedback)
	hm.DELETE("/biofeedback/:id", health.DeleteBiofeedback)

	hm.POST("/burn-progress", health.CreateBurnProgress)
	hm.GET("/burn-progress", health.ListBurnProgress)
	hm.GET("/burn-progress/:id", health.GetBurnProgress)
	hm.PUT("/burn-progress/:id", health.UpdateBurnProgress)
	hm.DELETE("/burn-progress/:id", health.DeleteBurnProgress)

	hm.POST("/brain-monitoring", health.CreateBrainMonitoring)
	hm.GET("/brain-monitoring", health.ListBrainMonitoring)
	hm.GET("/brain-monitoring/:id", health.GetBrainMonitoring)
	hm.PUT("/brain-monitoring/:id", health.UpdateBrainMonitoring)
	hm.DELETE("/brain-monitoring/:id", health.DeleteBrainMonitoring)

	hm.POST("/heart-brain-synchronicity", health.CreateHeartBrain)
	hm.GET("/heart-brain-synchronicity", health.ListHeartBrain)
	hm.GET("/heart-brain-synchronicity/:id", health.GetHeartBrain)
	hm.PUT("/heart-brain-synchronicity/:id", health.UpdateHeartBrain)
	hm.DELETE("/heart-brain-synchronicity/:id", health.DeleteHeartBrain)

	// Read-only content views for signed-in users.
	g.GET("/users/news", content.ListNews)
	g.GET("/users/news/:id", content.GetNews)
	g.GET("/users/live-sessions", content.ListLiveSessions)
	g.GET("/users/live-sessions/:id", content.GetLiveSession)
}
