package components

import (
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// MethodsTable renders the API reference: an entity filter bar followed by
// one row per method, in the order given. active is the entity currently
// filtered on, or "" for all.
func MethodsTable(methods []catalog.Method, active catalog.Entity) g.Node {
	return methodsTable(methods, entityFilterBar(active))
}

// StaticMethodsTable renders the table without the filter bar, whose links
// need the server's fragment route.
func StaticMethodsTable(methods []catalog.Method) g.Node {
	return methodsTable(methods, g.Group{})
}

func methodsTable(methods []catalog.Method, filters g.Node) g.Node {
	return h.Div(
		h.ID(MethodsTableID),
		filters,
		h.Div(
			h.Class("table large"),
			h.Table(
				h.Class("api"),
				h.THead(
					h.Tr(
						h.Td(g.Text("Method")),
						h.Td(g.Text("Entity")),
						h.Td(g.Text("Description")),
					),
				),
				h.TBody(
					g.Map(methods, MethodRow),
				),
			),
		),
	)
}

func entityFilterBar(active catalog.Entity) g.Node {
	allClass := "entity-filter all"
	if active == "" {
		allClass += " active"
	}
	return h.Nav(
		h.Class("entity-filters"),
		g.Attr("aria-label", "Filter methods by entity"),
		h.A(
			h.Href("/#api"),
			hx.Get(MethodsFragmentPath),
			hx.Target("#"+MethodsTableID),
			hx.Swap("outerHTML"),
			h.Class(allClass),
			g.Text("All"),
		),
		g.Map(catalog.Entities(), func(e catalog.Entity) g.Node {
			return EntityFilterLink(e, e == active)
		}),
	)
}

// MethodRow renders one method. The Parameters and Resources sections only
// appear when the method has parameters or examples.
func MethodRow(m catalog.Method) g.Node {
	return h.Tr(
		g.Attr("data-method", m.Name),
		h.Td(h.Code(g.Text(m.Name))),
		h.Td(EntityBadge(m.Entity)),
		h.Td(
			h.P(g.Text(m.Description)),
			g.If(m.HasParams(), paramsSection(m.Params)),
			g.If(m.HasExamples(), examplesSection(m.Examples)),
		),
	)
}

func paramsSection(params []catalog.Param) g.Node {
	return g.Group{
		h.P(g.Text("Parameters:")),
		h.Table(
			h.Class("params"),
			h.TBody(
				g.Map(params, func(p catalog.Param) g.Node {
					return h.Tr(
						h.Td(
							h.Code(g.Text(p.Name)),
							g.If(p.Extra != "", h.P(h.Class("extra-param"), g.Text(p.Extra))),
						),
						h.Td(g.Text(p.Description)),
					)
				}),
			),
		),
	}
}

func examplesSection(examples []catalog.Example) g.Node {
	return g.Group{
		h.Br(),
		h.Br(),
		h.P(g.Text("Resources:")),
		h.Table(
			h.Class("params resources"),
			h.TBody(
				g.Map(examples, func(ex catalog.Example) g.Node {
					return h.Tr(
						h.Td(
							h.A(h.Href(ex.URL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(ex.Name)),
						),
					)
				}),
			),
		),
	}
}
