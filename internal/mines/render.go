package mines

import (
	"strings"

	"github.com/vancomm/ndmines/internal/ndarray"
)

const HiddenSymbol = "_"

// Render returns the display symbol of every cell: "." for a bomb, " " for
// zero, the count otherwise. Unless xray is set, covered cells show
// HiddenSymbol.
func (g *Game) Render(xray bool) *ndarray.Array[string] {
	out := ndarray.Map(g.board, Cell.Symbol)
	if !xray {
		for i := range out.Len() {
			if g.hidden.At(i) {
				out.SetAt(i, HiddenSymbol)
			}
		}
	}
	return out
}

// RenderText lays the rendered board out for a terminal. The last axis runs
// along a line, the one before it down the lines, and 2-D slices of higher
// dimensional boards are separated by blank lines.
func (g *Game) RenderText(xray bool) string {
	var b strings.Builder
	writeText(&b, g.Render(xray))
	return b.String()
}

func writeText(b *strings.Builder, a *ndarray.Array[string]) {
	switch a.Rank() {
	case 1:
		b.WriteString(strings.Join(a.Values(), ""))
	case 2:
		for i := range a.Shape()[0] {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(strings.Join(a.Sub(i).Values(), ""))
		}
	default:
		for i := range a.Shape()[0] {
			if i > 0 {
				b.WriteString("\n\n")
			}
			writeText(b, a.Sub(i))
		}
	}
}
