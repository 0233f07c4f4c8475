package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/middleware"
	"github.com/nfrund/zbd-node-docs/internal/rendering"
	"github.com/nfrund/zbd-node-docs/internal/view"
	"github.com/nfrund/zbd-node-docs/web/src/templates/components"
	"github.com/nfrund/zbd-node-docs/web/src/templates/layouts"
	"github.com/nfrund/zbd-node-docs/web/src/templates/pages"
)

// HomeHandler serves the SDK product page and its table fragment.
type HomeHandler struct {
	store         *catalog.Store
	renderer      rendering.Renderer
	cache         *rendering.PageCache
	playgroundURL string
	liveReload    bool
}

// HomeOptions are the page settings that come from configuration.
type HomeOptions struct {
	PlaygroundURL string
	LiveReload    bool
}

// NewHomeHandler creates a new HomeHandler. cache may be nil to disable caching.
func NewHomeHandler(store *catalog.Store, renderer rendering.Renderer, cache *rendering.PageCache, opts HomeOptions) *HomeHandler {
	return &HomeHandler{
		store:         store,
		renderer:      renderer,
		cache:         cache,
		playgroundURL: opts.PlaygroundURL,
		liveReload:    opts.LiveReload,
	}
}

// HomePage builds the full document for a catalog snapshot. It is shared
// with the static export.
func HomePage(cat *catalog.Catalog, active catalog.Entity, playgroundURL string, layout layouts.Options) any {
	methods := cat.Methods()
	if active != "" {
		methods = cat.Filter(active)
	}
	body := pages.Home(pages.HomeData{
		Methods:       methods,
		ActiveEntity:  active,
		PlaygroundURL: playgroundURL,
		AssetPrefix:   layout.AssetPrefix,
		Static:        layout.Static,
	})
	return layouts.Base(pages.HomeTitle, layout, view.Templ(body))
}

// HomeGet handles GET /. An unknown ?entity= value shows every method.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var active catalog.Entity
	if raw := c.QueryParam("entity"); raw != "" {
		e, err := catalog.ParseEntity(raw)
		if err != nil {
			logger.Debug("Ignoring entity filter", "entity", raw, "error", err)
		} else {
			active = e
		}
	}

	cat := h.store.Current()
	key := "home:" + active.Slug()
	if h.cache != nil {
		if page, ok := h.cache.Get(cat.Version(), key); ok {
			return c.HTMLBlob(http.StatusOK, page)
		}
	}

	page := HomePage(cat, active, h.playgroundURL, layouts.Options{
		Description: pages.HomeDescription,
		LiveReload:  h.liveReload,
	})
	body, err := h.renderer.RenderComponent(ctx, page)
	if err != nil {
		return err
	}
	if h.cache != nil {
		h.cache.Put(cat.Version(), key, body)
	}

	logger.Debug("Rendered home page", "version", cat.Version(), "entity", active)
	return c.HTMLBlob(http.StatusOK, body)
}

// MethodsFragmentGet handles GET /partials/methods, the htmx swap target of
// the entity filter.
func (h *HomeHandler) MethodsFragmentGet(c echo.Context) error {
	cat := h.store.Current()
	methods := cat.Methods()

	var active catalog.Entity
	if raw := c.QueryParam("entity"); raw != "" {
		e, err := catalog.ParseEntity(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		active = e
		methods = cat.Filter(e)
	}

	return h.renderer.RenderPage(c, http.StatusOK, components.MethodsTable(methods, active))
}
