package core

import (
	"fmt"
	"strings"
)

// Color enumerates the cube palette.
type Color uint8

const (
	Green Color = iota
	Red
	Yellow
	Blue
	Cyan
	Pink
	Magenta
)

// NumColors is the size of the full palette.
const NumColors = 7

var colorNames = [NumColors]string{"green", "red", "yellow", "blue", "cyan", "pink", "magenta"}

// String returns the lower-case palette name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool { return c < NumColors }

// ParseColor resolves a palette name, ignoring case and surrounding space.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// Palette returns the full palette in declaration order.
func Palette() []Color {
	out := make([]Color, NumColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Cell is one grid position. The zero value is Empty; filled cells store
// their color offset by one.
type Cell uint8

// Empty is the vacant cell.
const Empty Cell = 0

// Filled returns a cell holding c.
func Filled(c Color) Cell { return Cell(c) + 1 }

// Color returns the cube color and true, or false for an empty cell.
func (c Cell) Color() (Color, bool) {
	if c == Empty {
		return 0, false
	}
	return Color(c - 1), true
}

// IsEmpty reports whether the cell holds no cube.
func (c Cell) IsEmpty() bool { return c == Empty }

func (c Cell) String() string {
	if col, ok := c.Color(); ok {
		return col.String()
	}
	return "empty"
}
