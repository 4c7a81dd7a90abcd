package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aesop-editor/aesop/internal/buffer"
	"github.com/aesop-editor/aesop/internal/clipboard"
	"github.com/aesop-editor/aesop/internal/config"
	"github.com/aesop-editor/aesop/internal/locate"
	"github.com/aesop-editor/aesop/internal/rope"
	"github.com/aesop-editor/aesop/internal/selection"
)

func newTestState(t *testing.T, text string) *EditorState {
	t.Helper()
	now := time.Now()
	b := buffer.New(1, now)
	if text != "" {
		require.NoError(t, b.Insert(0, text))
	}
	return New(b, config.DefaultSettings(), now)
}

func TestInsertRuneAtCursorAdvancesCursor(t *testing.T) {
	s := newTestState(t, "")
	InsertRune(s, 'a')
	InsertRune(s, 'b')
	assert.Equal(t, "ab", s.Buf.Rope().String())
	assert.Equal(t, uint64(2), s.Selections.Primary().Head)
}

func TestDeleteRunesRemovesPrevChar(t *testing.T) {
	s := newTestState(t, "abc")
	s.Selections.SetSingleCursor(3)
	DeleteRunes(s, func(p LocatorParams) uint64 {
		return locate.PrevCharInLine(p.Rope, 1, false, p.CursorPos)
	})
	assert.Equal(t, "ab", s.Buf.Rope().String())
}

func TestBeginEndCommandCommitsOnlyWhenBufferChanged(t *testing.T) {
	s := newTestState(t, "abc")
	now := time.Now()

	BeginCommand(s)
	EndCommand(s, "no-op", now)
	assert.Equal(t, 0, s.Undo.BranchCount())

	BeginCommand(s)
	InsertRune(s, 'X')
	EndCommand(s, "insert X", now)
	assert.Equal(t, 1, s.Undo.BranchCount())
}

func TestUndoBranchPreservation(t *testing.T) {
	s := newTestState(t, "abc")
	now := time.Now()

	BeginCommand(s)
	s.Selections.SetSingleCursor(3)
	InsertRune(s, 'X')
	EndCommand(s, "insert X", now)
	assert.Equal(t, "abcX", s.Buf.Rope().String())

	require.NoError(t, Undo(s))
	assert.Equal(t, "abc", s.Buf.Rope().String())

	BeginCommand(s)
	s.Selections.SetSingleCursor(3)
	InsertRune(s, 'Y')
	EndCommand(s, "insert Y", now)
	assert.Equal(t, "abcY", s.Buf.Rope().String())

	require.NoError(t, Undo(s))
	assert.Equal(t, 2, s.Undo.BranchCount())
	branches := s.Undo.ListBranches()
	require.Len(t, branches, 2)

	snap, err := s.Undo.SwitchToBranch(0)
	require.NoError(t, err)
	s.Buf.Restore(snap.(*rope.Rope))
	assert.Equal(t, "abcX", s.Buf.Rope().String())
}

func TestJoinLinesReplacesNewlineWithSpace(t *testing.T) {
	s := newTestState(t, "foo\nbar")
	s.Selections.SetSingleCursor(0)
	JoinLines(s)
	assert.Equal(t, "foo bar", s.Buf.Rope().String())
}

func TestReplaceCharSwapsSingleRune(t *testing.T) {
	s := newTestState(t, "abc")
	s.Selections.SetSingleCursor(1)
	ReplaceChar(s, "Z")
	assert.Equal(t, "aZc", s.Buf.Rope().String())
}

func TestCopyAndPasteLineRegister(t *testing.T) {
	s := newTestState(t, "one\ntwo\n")
	s.Selections.SetSingleCursor(0)
	CopyLine(s, clipboard.PageDefault)
	assert.Equal(t, "one\n", s.Registers.Get(clipboard.PageDefault).Text)

	s.Selections.SetSingleCursor(s.Buf.Rope().Len())
	PasteAfterCursor(s, clipboard.PageDefault)
	assert.Equal(t, "one\ntwo\none\n", s.Buf.Rope().String())
}

func TestToggleVisualModeThenDeleteSelection(t *testing.T) {
	s := newTestState(t, "hello world")
	s.Selections.SetSingleCursor(0)
	ToggleVisualMode(s, selection.ModeChar)
	assert.Equal(t, ModeSelect, s.Mode)

	s.Selections.ApplyMotion(func(head uint64) uint64 { return 5 }, false)
	DeleteSelection(s, false)
	assert.Equal(t, " world", s.Buf.Rope().String())
	assert.Equal(t, ModeNormal, s.Mode)
}

func TestToggleCaseAtCursorFlipsLetter(t *testing.T) {
	s := newTestState(t, "aBc")
	s.Selections.SetSingleCursor(0)
	ToggleCaseAtCursor(s)
	assert.Equal(t, "ABc", s.Buf.Rope().String())
}

func TestIndentAndOutdentLineAtCursor(t *testing.T) {
	settings := config.DefaultSettings()
	settings.ExpandTabs = true
	settings.TabWidth = 2
	now := time.Now()
	b := buffer.New(1, now)
	require.NoError(t, b.Insert(0, "x"))
	s := New(b, settings, now)

	IndentLineAtCursor(s)
	assert.Equal(t, "  x", s.Buf.Rope().String())

	OutdentLineAtCursor(s)
	assert.Equal(t, "x", s.Buf.Rope().String())
}

func TestCopyRegionCopiesArbitraryRange(t *testing.T) {
	s := newTestState(t, "hello world")
	s.Selections.SetSingleCursor(0)
	CopyRegion(s, clipboard.PageDefault,
		func(p LocatorParams) uint64 { return p.CursorPos },
		func(p LocatorParams) uint64 { return locate.NextWordStart(p.Rope, p.CursorPos) })
	assert.Equal(t, "hello ", s.Registers.Get(clipboard.PageDefault).Text)
}

func TestClearAutoIndentWhitespaceLineRemovesTrailingIndent(t *testing.T) {
	s := newTestState(t, "foo\n    \nbar")
	s.Selections.SetSingleCursor(8)
	ClearAutoIndentWhitespaceLine(s, func(p LocatorParams) uint64 {
		return locate.PrevLineBoundary(p.Rope, p.CursorPos)
	})
	assert.Equal(t, "foo\n\nbar", s.Buf.Rope().String())
}

func TestClearAutoIndentWhitespaceLineLeavesNonWhitespaceLine(t *testing.T) {
	s := newTestState(t, "foo\nbar")
	s.Selections.SetSingleCursor(5)
	ClearAutoIndentWhitespaceLine(s, func(p LocatorParams) uint64 {
		return locate.PrevLineBoundary(p.Rope, p.CursorPos)
	})
	assert.Equal(t, "foo\nbar", s.Buf.Rope().String())
}

func TestFindNextMatchWrapsAround(t *testing.T) {
	s := newTestState(t, "needle haystack needle")
	s.Settings.SearchCaseSensitive = true
	s.Settings.SearchWrapAround = true
	s.SearchQuery = "needle"
	s.Selections.SetSingleCursor(10)

	FindNextMatch(s, false)
	assert.Equal(t, uint64(16), s.Selections.Primary().Head)

	FindNextMatch(s, false)
	assert.Equal(t, uint64(0), s.Selections.Primary().Head)
}
