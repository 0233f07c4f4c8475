package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/config"
	"github.com/nfrund/zbd-node-docs/internal/handlers"
	"github.com/nfrund/zbd-node-docs/internal/hub"
	"github.com/nfrund/zbd-node-docs/internal/livereload"
	"github.com/nfrund/zbd-node-docs/internal/middleware"
	"github.com/nfrund/zbd-node-docs/internal/rendering"
)

// Dependencies are the services the HTTP server is built from.
type Dependencies struct {
	Config   *config.Config
	Store    *catalog.Store
	Renderer *rendering.UniversalRenderer
	Cache    *rendering.PageCache
	// ReloadHub enables /ws/reload when non-nil.
	ReloadHub *hub.Hub
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg *config.Config

	homeHandler    *handlers.HomeHandler
	methodsHandler *handlers.MethodsHandler
	reloadHandler  *livereload.Handler
}

// New creates a new Server instance with its middleware chain in place.
// Call RegisterRoutes before serving.
func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(echomw.Secure())
	setupErrorHandling(e)

	s := &Server{
		E:   e,
		Cfg: deps.Config,
		homeHandler: handlers.NewHomeHandler(deps.Store, deps.Renderer, deps.Cache, handlers.HomeOptions{
			PlaygroundURL: deps.Config.PlaygroundURL,
			LiveReload:    deps.ReloadHub != nil,
		}),
		methodsHandler: handlers.NewMethodsHandler(deps.Store),
	}
	if deps.ReloadHub != nil {
		s.reloadHandler = livereload.NewHandler(deps.ReloadHub)
	}
	return s
}
