// Package display implements the character-cell compositor: a
// double-buffered grid of Cells with per-row damage tracking, so the
// VT writer only has to re-emit the rows that actually changed.
package display

// ColorKind distinguishes the three ways a Cell's foreground or
// background can be specified.
type ColorKind int

const (
	ColorDefault ColorKind = iota
	ColorStandard
	ColorRGB
)

// Color is either the terminal's default color, one of the 16
// standard ANSI colors, or a 24-bit RGB triple.
type Color struct {
	Kind  ColorKind
	Index uint8 // valid when Kind == ColorStandard, 0-15
	R, G, B uint8 // valid when Kind == ColorRGB
}

// DefaultColor is the zero value: the terminal's default fg/bg.
var DefaultColor = Color{Kind: ColorDefault}

// Standard returns a standard (0-15) ANSI color.
func Standard(index uint8) Color {
	return Color{Kind: ColorStandard, Index: index}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Attrs is a set of SGR text attributes.
type Attrs struct {
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	Reverse   bool
}

// Cell is a single character-grid position.
type Cell struct {
	Codepoint rune
	Fg        Color
	Bg        Color
	Attrs     Attrs
}

// emptyCell is what every cell starts as: a space on the default
// background.
var emptyCell = Cell{Codepoint: ' '}
