package vt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aesop-editor/aesop/internal/display"
)

func TestGotoEmitsOneIndexedCursorPosition(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Goto(0, 0))
	require.NoError(t, w.Flush())
	assert.Equal(t, "\x1b[1;1H", buf.String())
}

func TestEnterAndExitAltScreen(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.EnterAltScreen())
	require.NoError(t, w.ExitAltScreen())
	require.NoError(t, w.Flush())
	assert.Equal(t, "\x1b[?1049h\x1b[?1049l", buf.String())
}

func TestRenderFrameCoalescesRepeatedAttrs(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	c := display.NewCompositor(3, 1)
	c.WriteText(0, 0, "ab", display.Standard(1), display.DefaultColor, display.Attrs{Bold: true})

	require.NoError(t, w.RenderFrame(c, []int{0}))
	require.NoError(t, w.Flush())

	out := buf.String()
	// Exactly one SGR sequence should be emitted for the two same-styled cells.
	assert.Equal(t, 1, strings.Count(out, "\x1b["+"0;1;31m"))
}

func TestRenderFrameEmitsBrightStandardColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	c := display.NewCompositor(1, 1)
	c.SetCell(0, 0, display.Cell{Codepoint: 'x', Fg: display.Standard(8), Bg: display.Standard(15)})

	require.NoError(t, w.RenderFrame(c, []int{0}))
	require.NoError(t, w.Flush())
	assert.Contains(t, buf.String(), "90")
	assert.Contains(t, buf.String(), "107")
}

func TestRenderFrameEmitsRGBColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	c := display.NewCompositor(1, 1)
	c.SetCell(0, 0, display.Cell{Codepoint: 'x', Fg: display.RGB(10, 20, 30)})

	require.NoError(t, w.RenderFrame(c, []int{0}))
	require.NoError(t, w.Flush())
	assert.Contains(t, buf.String(), "38;2;10;20;30")
}

func TestWriteGlyphSubstitutesControlCharsWithSpace(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.writeGlyph('\x07'))
	require.NoError(t, w.Flush())
	assert.Equal(t, " ", buf.String())
}
