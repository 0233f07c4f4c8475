package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ wraps a gomponents node so it can be passed where a templ.Component
// is expected, such as the body of layouts.Base.
func Templ(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return node.Render(w)
	})
}
