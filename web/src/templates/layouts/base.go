package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// LiveReloadScript is the development reload client, relative to the asset
// root. Static exports leave it out.
const LiveReloadScript = "js/livereload.js"

// Options control the document shell.
type Options struct {
	Description string
	// AssetPrefix is where the static tree is mounted, "/static" when served.
	AssetPrefix string
	// LiveReload adds the development reload script.
	LiveReload bool
	// Static renders for a plain file host: htmx is not loaded.
	Static bool
}

// Base wraps body in the HTML document shell.
func Base(title string, opts Options, body templ.Component) templ.Component {
	if opts.AssetPrefix == "" {
		opts.AssetPrefix = "/static"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := g.NodeFunc(func(w io.Writer) error {
			return body.Render(ctx, w)
		})
		return document(title, opts, content).Render(w)
	})
}

func document(title string, opts Options, content g.Node) g.Node {
	asset := func(path string) string { return opts.AssetPrefix + "/" + path }

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				g.If(opts.Description != "", h.Meta(h.Name("description"), h.Content(opts.Description))),
				h.Link(h.Rel("icon"), h.Href(asset("img/zbd-node-logo.svg"))),
				h.Link(h.Rel("stylesheet"), h.Href(asset("css/site.css"))),
				g.If(!opts.Static, h.Script(h.Src(htmxSrc), h.Defer())),
				h.Script(h.Src(asset("js/copy.js")), h.Defer()),
				g.If(opts.LiveReload, h.Script(h.Src(asset(LiveReloadScript)), h.Defer())),
			),
			h.Body(content),
		),
	)
}
