// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/campushub/items-api/internal/handler"
	"github.com/campushub/items-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: global error handler, middleware chain,
// then the route groups.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()

	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Global.CORS())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.Recover())

	registerSystemRoutes(r, h)
	registerItemRoutes(r, h)

	return r
}
