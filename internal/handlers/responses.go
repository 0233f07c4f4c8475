package handlers

import (
	"github.com/nfrund/zbd-node-docs/internal/catalog"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EntityResponse describes one entity category and its badge color.
type EntityResponse struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Hex   string `json:"hex"`
}

// NewEntityResponse creates an EntityResponse DTO.
func NewEntityResponse(e catalog.Entity) EntityResponse {
	color := catalog.EntityColor(e)
	return EntityResponse{
		Label: string(e),
		Slug:  e.Slug(),
		Color: color.String(),
		Hex:   color.Hex(),
	}
}

// MethodResponse is the DTO for a single method. It carries the resolved
// entity color so clients don't need their own table.
type MethodResponse struct {
	Name        string            `json:"name"`
	Entity      EntityResponse    `json:"entity"`
	Description string            `json:"description"`
	Params      []catalog.Param   `json:"params"`
	Examples    []catalog.Example `json:"examples"`
}

// NewMethodResponse creates a MethodResponse DTO from a catalog.Method.
func NewMethodResponse(m catalog.Method) MethodResponse {
	params := m.Params
	if params == nil {
		params = []catalog.Param{}
	}
	examples := m.Examples
	if examples == nil {
		examples = []catalog.Example{}
	}
	return MethodResponse{
		Name:        m.Name,
		Entity:      NewEntityResponse(m.Entity),
		Description: m.Description,
		Params:      params,
		Examples:    examples,
	}
}

// MethodListResponse wraps a list of methods with the catalog version.
type MethodListResponse struct {
	Version string           `json:"version"`
	Count   int              `json:"count"`
	Methods []MethodResponse `json:"methods"`
}

// NewMethodListResponse creates a MethodListResponse, keeping method order.
func NewMethodListResponse(version string, methods []catalog.Method) MethodListResponse {
	out := make([]MethodResponse, len(methods))
	for i, m := range methods {
		out[i] = NewMethodResponse(m)
	}
	return MethodListResponse{Version: version, Count: len(out), Methods: out}
}
