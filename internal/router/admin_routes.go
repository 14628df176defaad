package router

import (
	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/handler"
	"github.com/drvince/womb-backend/internal/middleware"
	"github.com/drvince/womb-backend/internal/model"
)

// RegisterAdminRoutes registers everything under /admin. The group passed in
// already authenticates; the role check stacks on top of it.
func RegisterAdminRoutes(g *echo.Group, users *handler.UserAdminHandler, devices *handler.DeviceHandler, health *handler.HealthMonitoringHandler, content *handler.ContentHandler) {
	adm := g.Group("/admin", middleware.RequireRole(model.RoleAdmin))

	// User management.
	adm.GET("/users", users.List)
	adm.GET("/users/:id", users.Get)
	adm.PUT("/users/:id", users.Update)
	adm.DELETE("/users/:id", users.Delete)

	// Device controls across all users.
	dc := adm.Group("/device-controls")

	dc.GET("/temp-tank", devices.AdminListTempTanks)
	dc.GET("/temp-tank/:id", devices.AdminGetTempTank)
	dc.PUT("/temp-tank/:id", devices.AdminUpdateTempTank)
	dc.DELETE("/temp-tank/:id", devices.AdminDeleteTempTank)

	dc.GET("/led-color", devices.AdminListLedColors)
	dc.GET("/led-color/:id", devices.AdminGetLedColor)
	dc.PUT("/led-color/:id", devices.AdminUpdateLedColor)
	dc.DELETE("/led-color/:id", devices.AdminDeleteLedColor)

	dc.GET("/:device", devices.AdminListSwitch)
	dc.GET("/:device/:id", devices.AdminGetSwitch)
	dc.PUT("/:device/:id", devices.AdminUpdateSwitch)
	dc.DELETE("/:device/:id", devices.AdminDeleteSwitch)

	// Telemetry across all users.
	hm := adm.Group("/health-monitoring")

	hm.GET("/biofeedback", health.AdminListBiofeedback)
	hm.GET("/biofeedback/:id", health.AdminGetBiofeedback)
	hm.PUT("/biofeedback/:id", health.AdminUpdateBiofeedback)
	hm.DELETE("/biofeedback/:id", health.AdminDeleteBiofeedback)

	hm.GET("/burn-progress", health.AdminListBurnProgress)
	hm.GET("/burn-progress/:id", health.AdminGetBurnProgress)
	hm.PUT("/burn-progress/:id", health.AdminUpdateBurnProgress)
	hm.DELETE("/burn-progress/:id", health.AdminDeleteBurnProgress)

	hm.GET("/brain-monitoring", health.AdminListBrainMonitoring)
	hm.GET("/brain-monitoring/:id", health.AdminGetBrainMonitoring)
	hm.PUT("/brain-monitoring/:id", health.AdminUpdateBrainMonitoring)
	hm.DELETE("/brain-monitoring/:id", health.AdminDeleteBrainMonitoring)

	hm.GET("/heart-brain-synchronicity", health.AdminListHeartBrain)
	hm.GET("/heart-brain-synchronicity/:id", health.AdminGetHeartBrain)
	hm.PUT("/heart-brain-synchronicity/:id", health.AdminUpdateHeartBrain)
	hm.DELETE("/heart-brain-synchronicity/:id", health.AdminDeleteHeartBrain)

	// Site content.
	adm.POST("/news", content.CreateNews)
	adm.GET("/news", content.ListNews)
	adm.GET("/news/:id", content.GetNews)
	adm.PUT("/news/:id", content.UpdateNews)
	adm.DELETE("/news/:id", content.DeleteNews)

	adm.POST("/live-sessions", content.CreateLiveSession)
	adm.GET("/live-sessions", content.ListLiveSessions)
	adm.GET("/live-sessions/:id", content.GetLiveSession)
	adm.PUT("/live-sessions/:id", content.UpdateLiveSession)
	adm.DELETE("/live-sessions/:id", content.DeleteLiveSession)

	adm.POST("/contact", content.CreateContact)
	adm.GET("/contact/:id", content.GetContact)
	adm.PUT("/contact/:id", content.UpdateContact)
	adm.DELETE("/contact/:id", content.DeleteContact)

	adm.POST("/about", content.CreateAbout)
	adm.GET("/about/:id", content.GetAbout)
	adm.PUT("/about/:id", content.UpdateAbout)
	adm.DELETE("/about/:id", content.DeleteAbout)
}
