package editor

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	var out bytes.Buffer
	ed, err := New(&out, "", false, 24, 80, time.Now())
	require.NoError(t, err)
	return ed
}

func TestNewEmptyBufferStartsInNormalMode(t *testing.T) {
	ed := newTestEditor(t)
	assert.Equal(t, "NORMAL", ed.State.Mode.String())
}

func TestDemoBufferIsPrepopulated(t *testing.T) {
	var out bytes.Buffer
	ed, err := New(&out, "", true, 24, 80, time.Now())
	require.NoError(t, err)
	assert.Contains(t, ed.State.Buf.Rope().String(), "welcome to aesop")
}

func TestHandleInputBytesInsertsTextViaController(t *testing.T) {
	ed := newTestEditor(t)
	now := time.Now()
	ed.HandleInputBytes([]byte("i"), now)
	ed.HandleInputBytes([]byte("hi"), now)
	assert.Equal(t, "hi", ed.State.Buf.Rope().String())
}

func TestHandleInputBytesCtrlCQuits(t *testing.T) {
	ed := newTestEditor(t)
	ed.HandleInputBytes([]byte{0x03}, time.Now())
	assert.True(t, ed.Quit())
}

func TestDemoModeQuitsOnQ(t *testing.T) {
	var out bytes.Buffer
	ed, err := New(&out, "", true, 24, 80, time.Now())
	require.NoError(t, err)
	ed.HandleInputBytes([]byte("q"), time.Now())
	assert.True(t, ed.Quit())
}

func TestRenderEmitsEscapeSequencesAndMovesCursor(t *testing.T) {
	var out bytes.Buffer
	ed, err := New(&out, "", false, 5, 10, time.Now())
	require.NoError(t, err)
	ed.HandleInputBytes([]byte("i"), time.Now())
	ed.HandleInputBytes([]byte("ab"), time.Now())

	require.NoError(t, ed.Render())
	assert.Contains(t, out.String(), "\x1b[")
}

func TestHandleResizeUpdatesViewHeight(t *testing.T) {
	ed := newTestEditor(t)
	ed.HandleResize(40, 100)
	assert.Equal(t, 40, ed.State.ViewHeight)
	assert.Equal(t, 40, ed.Compositor.Height())
	assert.Equal(t, 100, ed.Compositor.Width())
}
