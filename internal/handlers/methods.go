package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
)

// MethodsHandler serves the method catalog as JSON.
type MethodsHandler struct {
	store *catalog.Store
}

// NewMethodsHandler creates a new MethodsHandler.
func NewMethodsHandler(store *catalog.Store) *MethodsHandler {
	return &MethodsHandler{store: store}
}

// ListMethods handles GET /api/methods with an optional ?entity= filter.
func (h *MethodsHandler) ListMethods(c echo.Context) error {
	cat := h.store.Current()
	methods := cat.Methods()

	if raw := c.QueryParam("entity"); raw != "" {
		e, err := catalog.ParseEntity(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "unknown_entity", Message: err.Error()})
		}
		methods = cat.Filter(e)
	}

	return c.JSON(http.StatusOK, NewMethodListResponse(cat.Version(), methods))
}

// GetMethod handles GET /api/methods/:name.
func (h *MethodsHandler) GetMethod(c echo.Context) error {
	m, err := h.store.Current().Lookup(c.Param("name"))
	if errors.Is(err, catalog.ErrMethodNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Code: "not_found", Message: err.Error()})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, NewMethodResponse(m))
}

// ListEntities handles GET /api/entities.
func (h *MethodsHandler) ListEntities(c echo.Context) error {
	entities := catalog.Entities()
	out := make([]EntityResponse, len(entities))
	for i, e := range entities {
		out[i] = NewEntityResponse(e)
	}
	return c.JSON(http.StatusOK, out)
}
