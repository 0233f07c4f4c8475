package components

import (
	"fmt"
	"net/url"

	"github.com/nfrund/zbd-node-docs/internal/catalog"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// MethodsTableID is the element the entity filter swaps.
const MethodsTableID = "api-methods"

// MethodsFragmentPath serves the table alone, for htmx swaps.
const MethodsFragmentPath = "/partials/methods"

func badgeStyle(e catalog.Entity) string {
	return fmt.Sprintf("background-color: %s; padding: 4px 12px; border-radius: 6px; width: auto; display: inline-block;",
		catalog.EntityColor(e))
}

// EntityBadge renders an entity label on its category color.
func EntityBadge(e catalog.Entity) g.Node {
	return h.Div(
		h.Class("entity-badge"),
		h.Style(badgeStyle(e)),
		h.Span(h.Style("font-size: 12px; color: #fff;"), g.Text(string(e))),
	)
}

// EntityFilterLink renders a badge that narrows the method table to one
// entity. Without JavaScript it falls back to a full page load.
func EntityFilterLink(e catalog.Entity, active bool) g.Node {
	query := url.Values{"entity": {e.Slug()}}.Encode()
	class := "entity-filter"
	if active {
		class += " active"
	}
	return h.A(
		h.Href("/?"+query+"#api"),
		hx.Get(MethodsFragmentPath+"?"+query),
		hx.Target("#"+MethodsTableID),
		hx.Swap("outerHTML"),
		h.Class(class),
		g.If(active, g.Attr("aria-current", "true")),
		EntityBadge(e),
	)
}
