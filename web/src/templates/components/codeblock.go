package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CodeBlockProps configures a CodeBlock.
type CodeBlockProps struct {
	ID              string
	Text            string
	Language        string
	ShowLineNumbers bool
	WrapLines       bool
}

// CodeBlock renders a dracula-themed snippet with a copy button. The copy
// behaviour lives in static/js/copy.js and reads the element named by
// data-copy-target.
func CodeBlock(p CodeBlockProps) g.Node {
	lines := strings.Split(strings.Trim(p.Text, "\n"), "\n")
	class := "code-block theme-dracula"
	if p.WrapLines {
		class += " wrap-lines"
	}

	return h.Div(
		h.Class(class),
		g.Attr("data-language", p.Language),
		h.Button(
			h.Type("button"),
			h.Class("copy-button"),
			g.Attr("data-copy-target", p.ID),
			g.Attr("aria-label", "Copy code"),
			g.Text("Copy"),
		),
		h.Pre(
			h.Code(
				h.ID(p.ID),
				h.Class("language-"+p.Language),
				g.Map(numbered(lines), func(l line) g.Node {
					return h.Span(
						h.Class("line"),
						g.If(p.ShowLineNumbers, h.Span(h.Class("line-number"), g.Textf("%d", l.n))),
						g.Text(l.text+"\n"),
					)
				}),
			),
		),
	)
}

type line struct {
	n    int
	text string
}

func numbered(lines []string) []line {
	out := make([]line, len(lines))
	for i, l := range lines {
		out[i] = line{n: i + 1, text: l}
	}
	return out
}
