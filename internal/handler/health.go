package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Healthz reports process liveness and database reachability.
func Healthz(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := timeoutCtx(c)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded", "database": "down"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}
