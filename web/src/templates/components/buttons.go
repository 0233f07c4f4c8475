package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Button is a call-to-action link.
type Button struct {
	Label string
	URL   string
}

func (b Button) external() bool {
	return strings.HasPrefix(b.URL, "http://") || strings.HasPrefix(b.URL, "https://")
}

// DownloadButtons renders one or two call-to-action buttons side by side.
// The first is the primary action.
func DownloadButtons(buttons ...Button) g.Node {
	return h.Div(
		h.Class("download-buttons"),
		g.Map(indexed(buttons), func(ib indexedButton) g.Node {
			class := "button secondary"
			if ib.i == 0 {
				class = "button primary"
			}
			return h.A(
				h.Class(class),
				h.Href(ib.b.URL),
				g.If(ib.b.external(), h.Target("_blank")),
				g.If(ib.b.external(), h.Rel("noopener noreferrer")),
				g.Text(ib.b.Label),
			)
		}),
	)
}

type indexedButton struct {
	i int
	b Button
}

func indexed(buttons []Button) []indexedButton {
	out := make([]indexedButton, len(buttons))
	for i, b := range buttons {
		out[i] = indexedButton{i: i, b: b}
	}
	return out
}
