// Package vt renders a display.Compositor frame as VT100/xterm escape
// sequences. It owns cursor positioning, SGR attribute deltas, the
// alternate screen, and cursor visibility; it writes nothing the
// compositor didn't ask for.
package vt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aesop-editor/aesop/internal/display"
)

const bufSize = 64 * 1024

// Writer buffers escape sequences and emits them in batches via
// Flush, the way a terminal UI wants: build a whole frame, then push
// it in one write syscall.
type Writer struct {
	w        *bufio.Writer
	lastFg   display.Color
	lastBg   display.Color
	lastAttr display.Attrs
	haveAttr bool // false before the first SGR emission, forcing a reset
}

// NewWriter wraps w in a 64KiB buffered VT100 writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, bufSize)}
}

// EnterAltScreen switches to the terminal's alternate screen buffer.
func (vw *Writer) EnterAltScreen() error {
	_, err := vw.w.WriteString("\x1b[?1049h")
	return err
}

// ExitAltScreen restores the primary screen buffer. Callers must call
// this on every exit path, including panics recovered higher up, so
// the user's shell isn't left inside the alt screen.
func (vw *Writer) ExitAltScreen() error {
	_, err := vw.w.WriteString("\x1b[?1049l")
	return err
}

// HideCursor and ShowCursor toggle cursor visibility (DECTCEM).
func (vw *Writer) HideCursor() error {
	_, err := vw.w.WriteString("\x1b[?25l")
	return err
}

func (vw *Writer) ShowCursor() error {
	_, err := vw.w.WriteString("\x1b[?25h")
	return err
}

// Goto moves the cursor to (row, col), 0-indexed on the caller side but
// emitted 1-indexed per VT100 convention.
func (vw *Writer) Goto(row, col int) error {
	_, err := fmt.Fprintf(vw.w, "\x1b[%d;%dH", row+1, col+1)
	return err
}

// Clear erases the whole screen and homes the cursor.
func (vw *Writer) Clear() error {
	_, err := vw.w.WriteString("\x1b[2J\x1b[H")
	return err
}

// Flush pushes any buffered bytes to the underlying writer.
func (vw *Writer) Flush() error {
	return vw.w.Flush()
}

// setColorsAndAttrs emits an SGR sequence only if fg, bg, or attrs
// differ from the last cell written, so a row of uniformly-styled
// text costs one escape sequence instead of one per cell.
func (vw *Writer) setColorsAndAttrs(fg, bg display.Color, attrs display.Attrs) error {
	if vw.haveAttr && fg == vw.lastFg && bg == vw.lastBg && attrs == vw.lastAttr {
		return nil
	}
	vw.lastFg, vw.lastBg, vw.lastAttr, vw.haveAttr = fg, bg, attrs, true

	codes := []string{"0"} // always reset first: deltas only ever grow, never selectively turn off
	if attrs.Bold {
		codes = append(codes, "1")
	}
	if attrs.Dim {
		codes = append(codes, "2")
	}
	if attrs.Italic {
		codes = append(codes, "3")
	}
	if attrs.Underline {
		codes = append(codes, "4")
	}
	if attrs.Reverse {
		codes = append(codes, "7")
	}
	codes = append(codes, colorCodes(fg, true)...)
	codes = append(codes, colorCodes(bg, false)...)

	if _, err := vw.w.WriteString("\x1b["); err != nil {
		return err
	}
	for i, c := range codes {
		if i > 0 {
			if _, err := vw.w.WriteString(";"); err != nil {
				return err
			}
		}
		if _, err := vw.w.WriteString(c); err != nil {
			return err
		}
	}
	_, err := vw.w.WriteString("m")
	return err
}

func colorCodes(c display.Color, foreground bool) []string {
	switch c.Kind {
	case display.ColorStandard:
		base := 30
		if !foreground {
			base = 40
		}
		idx := int(c.Index)
		if idx >= 8 {
			base += 52 // bright range: 90-97 / 100-107
		}
		return []string{fmt.Sprintf("%d", base+idx)}
	case display.ColorRGB:
		prefix := "38"
		if !foreground {
			prefix = "48"
		}
		return []string{prefix, "2", fmt.Sprintf("%d", c.R), fmt.Sprintf("%d", c.G), fmt.Sprintf("%d", c.B)}
	default:
		return nil
	}
}

// writeGlyph writes a single rune's UTF-8 encoding, substituting a
// space for C0 control codes below U+0020 (they would otherwise corrupt
// the terminal's cursor state); other runes are written as they are.
func (vw *Writer) writeGlyph(r rune) error {
	if r == 0 || r < ' ' {
		r = ' '
	}
	_, err := vw.w.WriteRune(r)
	return err
}

// RenderFrame emits the given rows of c, each preceded by a cursor
// goto, coalescing SGR changes within a row. Rows not listed are left
// untouched on the physical terminal.
func (vw *Writer) RenderFrame(c *display.Compositor, rows []int) error {
	for _, row := range rows {
		if err := vw.Goto(row, 0); err != nil {
			return err
		}
		cells := c.RowCells(row)
		for _, cell := range cells {
			if err := vw.setColorsAndAttrs(cell.Fg, cell.Bg, cell.Attrs); err != nil {
				return err
			}
			if err := vw.writeGlyph(cell.Codepoint); err != nil {
				return err
			}
		}
	}
	return nil
}
