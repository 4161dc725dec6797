package render

import (
	"fmt"
	"image/color"
	"strings"

	"quadmatch/internal/core"
)

const ansiReset = "\033[0m"

var colorLetters = [core.NumColors]byte{'G', 'R', 'Y', 'B', 'C', 'P', 'M'}

// rgbToAnsi converts a color to a 24-bit ANSI foreground escape code.
func rgbToAnsi(c color.RGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// ASCII renders the board as text, one row per line with a column header.
// Cubes print as their palette initial, cells emptied by the latest resolve
// pass as '*', and the selection is wrapped in brackets. With ansi set, cubes
// are colored with 24-bit escape codes.
func ASCII(f core.Frame, ansi bool) string {
	var b strings.Builder
	b.WriteString("  ")
	for x := 0; x < f.Size.W; x++ {
		fmt.Fprintf(&b, " %d ", x%10)
	}
	b.WriteByte('\n')

	cleared := make(map[core.Point]bool, len(f.Cleared))
	for _, p := range f.Cleared {
		cleared[p] = true
	}
	sel, hasSel := f.Selection.Get()
	for y := 0; y < f.Size.H; y++ {
		fmt.Fprintf(&b, "%d ", y%10)
		for x := 0; x < f.Size.W; x++ {
			left, right := " ", " "
			if hasSel && sel == (core.Point{X: x, Y: y}) {
				left, right = "[", "]"
			}
			b.WriteString(left)
			col, ok := f.At(x, y).Color()
			switch {
			case !ok && cleared[core.Point{X: x, Y: y}]:
				b.WriteByte('*')
			case !ok:
				b.WriteByte('.')
			case ansi:
				b.WriteString(rgbToAnsi(PaletteRGBA(col)))
				b.WriteByte(letter(col))
				b.WriteString(ansiReset)
			default:
				b.WriteByte(letter(col))
			}
			b.WriteString(right)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func letter(c core.Color) byte {
	if !c.Valid() {
		return '?'
	}
	return colorLetters[c]
}
