package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aesop-editor/aesop/internal/buffer"
	"github.com/aesop-editor/aesop/internal/config"
	"github.com/aesop-editor/aesop/internal/state"
)

func newTestState(t *testing.T, text string) *state.EditorState {
	t.Helper()
	now := time.Now()
	b := buffer.New(1, now)
	if text != "" {
		require.NoError(t, b.Insert(0, text))
	}
	return state.New(b, config.DefaultSettings(), now)
}

func TestControllerEntersInsertModeAndInsertsRune(t *testing.T) {
	s := newTestState(t, "")
	c := NewController()
	now := time.Now()

	c.HandleEvent(s, runeEvent('i', ModNone), now)
	assert.Equal(t, state.ModeInsert, s.Mode)

	c.HandleEvent(s, runeEvent('x', ModNone), now)
	assert.Equal(t, "x", s.Buf.Rope().String())
}

func TestControllerEscapeReturnsToNormalMode(t *testing.T) {
	s := newTestState(t, "")
	c := NewController()
	now := time.Now()

	c.HandleEvent(s, runeEvent('i', ModNone), now)
	require.Equal(t, state.ModeInsert, s.Mode)

	c.HandleEvent(s, keyEvent(KeyEscape, ModNone), now)
	assert.Equal(t, state.ModeNormal, s.Mode)
}

func TestControllerMultiKeyBindingDD(t *testing.T) {
	s := newTestState(t, "one\ntwo\n")
	s.Selections.SetSingleCursor(0)
	c := NewController()
	now := time.Now()

	c.HandleEvent(s, runeEvent('d', ModNone), now)
	assert.Equal(t, "one\ntwo\n", s.Buf.Rope().String(), "first 'd' should only extend the pending prefix")

	c.HandleEvent(s, runeEvent('d', ModNone), now)
	assert.Equal(t, "two\n", s.Buf.Rope().String())
}

func TestControllerUnboundPrefixDiscardsInNormalMode(t *testing.T) {
	s := newTestState(t, "abc")
	c := NewController()
	now := time.Now()

	// 'z' isn't bound to anything in the default Normal keymap.
	c.HandleEvent(s, runeEvent('z', ModNone), now)
	assert.Equal(t, "abc", s.Buf.Rope().String())
	assert.Equal(t, state.ModeNormal, s.Mode)
}

func TestControllerCommandModeRunsQuit(t *testing.T) {
	s := newTestState(t, "")
	c := NewController()
	now := time.Now()

	c.HandleEvent(s, runeEvent(':', ModNone), now)
	require.Equal(t, state.ModeCommand, s.Mode)

	c.HandleEvent(s, runeEvent('q', ModNone), now)
	c.HandleEvent(s, runeEvent('!', ModNone), now)
	c.HandleEvent(s, keyEvent(KeyEnter, ModNone), now)

	assert.True(t, s.Quit)
	assert.Equal(t, state.ModeNormal, s.Mode)
}

func TestControllerReplaceCharAtCursor(t *testing.T) {
	s := newTestState(t, "abc")
	s.Selections.SetSingleCursor(1)
	c := NewController()
	now := time.Now()

	c.HandleEvent(s, runeEvent('r', ModNone), now)
	assert.True(t, s.PendingReplace)

	c.HandleEvent(s, runeEvent('Z', ModNone), now)
	assert.False(t, s.PendingReplace)
	assert.Equal(t, "aZc", s.Buf.Rope().String())
}

func TestControllerReplaceCharCancelledByEscape(t *testing.T) {
	s := newTestState(t, "abc")
	s.Selections.SetSingleCursor(1)
	c := NewController()
	now := time.Now()

	c.HandleEvent(s, runeEvent('r', ModNone), now)
	c.HandleEvent(s, keyEvent(KeyEscape, ModNone), now)

	assert.False(t, s.PendingReplace)
	assert.Equal(t, "abc", s.Buf.Rope().String())
	assert.Equal(t, state.ModeNormal, s.Mode)
}

func TestControllerBackspaceClearsAutoIndentLevel(t *testing.T) {
	s := newTestState(t, "")
	s.Settings.AutoIndent = true
	s.Settings.TabWidth = 4
	require.NoError(t, s.Buf.Insert(0, "    "))
	s.Selections.SetSingleCursor(4)
	c := NewController()
	now := time.Now()

	c.HandleEvent(s, runeEvent('i', ModNone), now)
	c.HandleEvent(s, keyEvent(KeyBackspace, ModNone), now)

	assert.Equal(t, "", s.Buf.Rope().String())
}

func TestControllerSearchEntryAndNextMatch(t *testing.T) {
	s := newTestState(t, "needle haystack needle")
	s.Settings.SearchCaseSensitive = true
	s.Selections.SetSingleCursor(0)
	c := NewController()
	now := time.Now()

	c.HandleEvent(s, runeEvent('/', ModNone), now)
	require.Equal(t, state.ModeCommand, s.Mode)
	require.True(t, s.SearchActive)

	for _, r := range "needle" {
		c.HandleEvent(s, runeEvent(r, ModNone), now)
	}
	c.HandleEvent(s, keyEvent(KeyEnter, ModNone), now)

	assert.Equal(t, state.ModeNormal, s.Mode)
	assert.Equal(t, uint64(16), s.Selections.Primary().Head)
}
