// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/drvince/womb-backend/internal/config"
	"github.com/drvince/womb-backend/internal/handler"
	"github.com/drvince/womb-backend/internal/middleware"
)

// RegisterPublic registers the unauthenticated routes: the health check and
// the landing-page content endpoints. The content endpoints sit behind the
// Redis response cache; with no Redis client the cache is a no-op.
func RegisterPublic(e *echo.Echo, db *sql.DB, pub *handler.PublicHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Healthz(db))

	g := e.Group("/public", middleware.CacheGET(cacheCfg, rdb))
	g.GET("/latest-news", pub.LatestNews)
	g.GET("/latest-live-session", pub.LatestLiveSession)
	g.GET("/contact", pub.Contact)
	g.GET("/about", pub.About)
}

// RegisterAuth registers the credential endpoints and the authenticated
// self-service routes. The credential endpoints are rate limited per client
// IP; everything else runs behind the bearer-token gate, which re-checks the
// account status on every request.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, loader middleware.UserLoader, rlCfg config.RateLimitConfig, rdb *redis.Client) *echo.Group {
	creds := e.Group("/auth", middleware.RateLimit(rlCfg, rdb))
	creds.POST("/signup", a.Signup)
	creds.POST("/login", a.Login)
	creds.POST("/admin-login", a.AdminLogin)
	creds.POST("/refresh", a.Refresh)

	authed := e.Group("", middleware.Authenticate(a.Issuer, loader))
	authed.POST("/auth/logout", a.Logout)
	authed.GET("/users/me", a.Me)
	return authed
}
