package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/zbd-node-docs/internal/middleware"
	"github.com/nfrund/zbd-node-docs/web"
	"github.com/nfrund/zbd-node-docs/web/src/templates/components"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS("/static", web.Static())

	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET(components.MethodsFragmentPath, s.homeHandler.MethodsFragmentGet)

	api := s.E.Group("/api", middleware.RateLimiter(s.Cfg.APIRateLimit))
	api.GET("/methods", s.methodsHandler.ListMethods)
	api.GET("/methods/:name", s.methodsHandler.GetMethod)
	api.GET("/entities", s.methodsHandler.ListEntities)

	if s.reloadHandler != nil {
		s.E.GET("/ws/reload", s.reloadHandler.ServeWS)
	}

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
