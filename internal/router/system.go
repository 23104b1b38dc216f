package router

import (
	"github.com/campushub/items-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of business logic.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health endpoint (used by container orchestrators and monitors).
	r.GET("/health", h.Health.CheckHealth)

	// Machine-readable API document, generated from the handler types.
	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPISpec)

	// Docs UI endpoint (serves openapi.html).
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	// Static assets, including the minimal browser frontend at /.
	r.Static("/static", "static")
	r.File("/", "static/index.html")
}
