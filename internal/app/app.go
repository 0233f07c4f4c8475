// Package app wires the documentation site's services together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/config"
	"github.com/nfrund/zbd-node-docs/internal/hub"
	"github.com/nfrund/zbd-node-docs/internal/livereload"
	"github.com/nfrund/zbd-node-docs/internal/pubsub"
	"github.com/nfrund/zbd-node-docs/internal/rendering"
	"github.com/nfrund/zbd-node-docs/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// App owns the dependency container for one process.
type App struct {
	injector *do.RootScope
	cfg      *config.Config
}

// New registers every service provider. Nothing is constructed until it is
// first invoked.
func New(cfg *config.Config, fsys afero.Fs) *App {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fsys)
	do.Provide(i, provideBus)
	do.Provide(i, provideStore)
	do.Provide(i, func(do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, func(do.Injector) (*rendering.PageCache, error) {
		return rendering.NewPageCache(), nil
	})
	do.Provide(i, func(do.Injector) (*hub.Hub, error) {
		return hub.NewHub(), nil
	})
	do.Provide(i, provideServer)

	return &App{injector: i, cfg: cfg}
}

func provideBus(do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func provideStore(i do.Injector) (*catalog.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)

	initial, err := LoadCatalog(do.MustInvoke[afero.Fs](i), cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(initial, bus), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	store, err := do.Invoke[*catalog.Store](i)
	if err != nil {
		return nil, err
	}

	deps := server.Dependencies{
		Config:   cfg,
		Store:    store,
		Renderer: do.MustInvoke[*rendering.UniversalRenderer](i),
		Cache:    do.MustInvoke[*rendering.PageCache](i),
	}
	if cfg.IsDevelopment() {
		deps.ReloadHub = do.MustInvoke[*hub.Hub](i)
	}

	s := server.New(deps)
	s.RegisterRoutes()
	return s, nil
}

// LoadCatalog returns the built-in catalog when path is empty, otherwise the
// catalog file at path.
func LoadCatalog(fsys afero.Fs, path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog override: %w", err)
	}
	return c, nil
}

// Store returns the catalog store, building it on first use.
func (a *App) Store() (*catalog.Store, error) {
	return do.Invoke[*catalog.Store](a.injector)
}

// Renderer returns the shared renderer.
func (a *App) Renderer() *rendering.UniversalRenderer {
	return do.MustInvoke[*rendering.UniversalRenderer](a.injector)
}

// Run starts the background services and serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	srv, err := do.Invoke[*server.Server](a.injector)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	if err := a.startBackground(ctx); err != nil {
		return err
	}

	cat := do.MustInvoke[*catalog.Store](a.injector).Current()
	slog.Info("Serving SDK documentation",
		"env", a.cfg.Env,
		"base_url", a.cfg.AppBaseURL,
		"catalog_source", cat.Source(),
		"catalog_version", cat.Version(),
		"methods", cat.Len(),
	)
	return srv.Start(ctx, a.cfg.Addr)
}

func (a *App) startBackground(ctx context.Context) error {
	bus := do.MustInvoke[*pubsub.WatermillBridge](a.injector)

	cache := do.MustInvoke[*rendering.PageCache](a.injector)
	if err := cache.InvalidateOnReload(ctx, bus); err != nil {
		return fmt.Errorf("failed to subscribe page cache: %w", err)
	}

	if a.cfg.IsDevelopment() {
		h := do.MustInvoke[*hub.Hub](a.injector)
		go h.Run(ctx)
		if err := livereload.Forward(ctx, bus, h); err != nil {
			return fmt.Errorf("failed to subscribe live reload: %w", err)
		}
	}

	if a.cfg.CatalogWatch {
		store := do.MustInvoke[*catalog.Store](a.injector)
		fsys := do.MustInvoke[afero.Fs](a.injector)
		if err := catalog.NewWatcher(fsys, a.cfg.CatalogPath, store).Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown closes every service that was built.
func (a *App) Shutdown() {
	if report := a.injector.Shutdown(); report != nil && !report.Succeed {
		slog.Error("Shutdown finished with errors", "report", report.Error())
	}
}

// Serve builds an App from cfg and runs it until ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config) error {
	a := New(cfg, afero.NewOsFs())
	defer a.Shutdown()
	return a.Run(ctx)
}
