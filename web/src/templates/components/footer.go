package components

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders the page footer.
func Footer() g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("footer-links"),
			h.A(h.Href("https://zbd.dev"), h.Target("_blank"), g.Text("ZBD Developers")),
			h.A(h.Href("https://github.com/zebedeeio/zbd-node"), h.Target("_blank"), g.Text("GitHub")),
			h.A(h.Href("https://zbd.dev/api-reference/intro"), h.Target("_blank"), g.Text("API Reference")),
		),
		h.P(h.Class("copyright"), g.Textf("© %d ZEBEDEE Inc. All rights reserved.", time.Now().Year())),
	)
}
