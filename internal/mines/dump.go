package mines

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/ndmines/internal/ndarray"
)

// Dump writes the game's fields sorted by name.
func Dump(w io.Writer, g *Game) error {
	_, err := io.WriteString(w, g.String())
	return err
}

func (g *Game) String() string {
	var b strings.Builder
	writeArray(&b, "board", g.board)
	writeArray(&b, "hidden", g.hidden)
	fmt.Fprintf(&b, "shape: %v\n", []int(g.shape))
	fmt.Fprintf(&b, "status: %s\n", g.status)
	return b.String()
}

func writeArray[T any](b *strings.Builder, name string, a *ndarray.Array[T]) {
	if a.Rank() == 1 {
		fmt.Fprintf(b, "%s: %s\n", name, a)
		return
	}
	fmt.Fprintf(b, "%s:\n", name)
	for i := range a.Shape()[0] {
		fmt.Fprintf(b, "    %s\n", a.Sub(i))
	}
}
