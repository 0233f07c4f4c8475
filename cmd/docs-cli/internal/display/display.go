// Package display formats catalog data for the terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/handlers"
)

// Output formats accepted by --format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

var (
	colorDim  = lipgloss.Color("240")
	colorCyan = lipgloss.Color("36")

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

// Badge renders an entity label on its badge color.
func Badge(e catalog.Entity) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(catalog.EntityColor(e).Hex())).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1).
		Render(string(e))
}

// Methods writes methods in the given format.
func Methods(w io.Writer, format, version string, methods []catalog.Method) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, handlers.NewMethodListResponse(version, methods))
	case FormatTable:
		t := newTable("NAME", "ENTITY", "PARAMS", "RESOURCES", "DESCRIPTION")
		for _, m := range methods {
			t.Row(m.Name, Badge(m.Entity), strconv.Itoa(len(m.Params)), strconv.Itoa(len(m.Examples)), truncate(m.Description, 60))
		}
		fmt.Fprintln(w, t.Render())
		fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("%d method(s), catalog %s", len(methods), version)))
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, use %q or %q", format, FormatTable, FormatJSON)
	}
}

// Colors writes every known entity with its color.
func Colors(w io.Writer, format string) error {
	entities := catalog.Entities()
	switch format {
	case FormatJSON:
		out := make([]handlers.EntityResponse, len(entities))
		for i, e := range entities {
			out[i] = handlers.NewEntityResponse(e)
		}
		return writeJSON(w, out)
	case FormatTable:
		t := newTable("ENTITY", "SLUG", "RGBA", "HEX")
		for _, e := range entities {
			c := catalog.EntityColor(e)
			t.Row(Badge(e), e.Slug(), c.String(), c.Hex())
		}
		fmt.Fprintln(w, t.Render())
		fmt.Fprintln(w, styleDim.Render("Unlisted labels use "+catalog.DefaultColor.String()))
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, use %q or %q", format, FormatTable, FormatJSON)
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
