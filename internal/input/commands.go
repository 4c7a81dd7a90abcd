package input

import (
	"time"

	"github.com/aesop-editor/aesop/internal/clipboard"
	"github.com/aesop-editor/aesop/internal/locate"
	"github.com/aesop-editor/aesop/internal/selection"
	"github.com/aesop-editor/aesop/internal/state"
)

// Action is a command body: it receives the decoded Event that
// triggered it (so commands like InsertRune can read the Rune field)
// and mutates s. Actions are wrapped by Dispatch with the
// BeginCommand/EndCommand undo boundary, mirroring the teacher's
// Mutator functions in input/actions.go which also close over
// *state.EditorState and nothing else.
type Action func(s *state.EditorState, ev Event)

// Cursor motions. Each wraps a locate.* function with the current
// LocatorParams, per state.MoveCursor's func(LocatorParams) uint64
// contract.
var (
	ActionCursorLeft = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.PrevCharInLine(p.Rope, 1, false, p.CursorPos)
		})
	})
	ActionCursorRight = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.NextCharInLine(p.Rope, 1, false, p.CursorPos)
		})
	})
	ActionCursorUp = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursorToLineAbove(s, 1)
	})
	ActionCursorDown = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursorToLineBelow(s, 1)
	})
	ActionCursorLineStart = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.PrevLineBoundary(p.Rope, p.CursorPos)
		})
	})
	ActionCursorLineEnd = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.NextLineBoundary(p.Rope, false, p.CursorPos)
		})
	})
	ActionCursorNextWordStart = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.NextWordStart(p.Rope, p.CursorPos)
		})
	})
	ActionCursorPrevWordStart = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.PrevWordStart(p.Rope, p.CursorPos)
		})
	})
	ActionCursorNextWordEnd = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.NextWordEnd(p.Rope, p.CursorPos)
		})
	})
	ActionCursorFirstLine = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.StartOfLineNum(p.Rope, 0)
		})
	})
	ActionCursorLastLine = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.StartOfLastLine(p.Rope)
		})
	})
)

// Mode transitions.
var (
	ActionEnterInsertMode = Action(func(s *state.EditorState, _ Event) {
		s.Mode = state.ModeInsert
	})
	ActionEnterInsertModeAtLineEnd = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.NextLineBoundary(p.Rope, false, p.CursorPos)
		})
		s.Mode = state.ModeInsert
	})
	ActionEnterInsertAfterCursor = Action(func(s *state.EditorState, _ Event) {
		state.MoveCursor(s, func(p state.LocatorParams) uint64 {
			return locate.NextCharInLine(p.Rope, 1, true, p.CursorPos)
		})
		s.Mode = state.ModeInsert
	})
	ActionReturnToNormalMode = Action(func(s *state.EditorState, _ Event) {
		if s.Mode == state.ModeInsert {
			state.ClearAutoIndentWhitespaceLine(s, func(p state.LocatorParams) uint64 {
				return locate.PrevLineBoundary(p.Rope, p.CursorPos)
			})
		}
		s.Mode = state.ModeNormal
	})
	ActionEnterSelectCharwise = Action(func(s *state.EditorState, _ Event) {
		state.ToggleVisualMode(s, selection.ModeChar)
	})
	ActionEnterSelectLinewise = Action(func(s *state.EditorState, _ Event) {
		state.ToggleVisualMode(s, selection.ModeLine)
	})
	ActionEnterCommandMode = Action(func(s *state.EditorState, _ Event) {
		s.Mode = state.ModeCommand
		s.CommandLine = ""
	})
)

// Insert-mode editing.
var (
	ActionInsertRune = Action(func(s *state.EditorState, ev Event) {
		state.InsertRune(s, ev.Rune)
	})
	ActionInsertNewline = Action(func(s *state.EditorState, _ Event) {
		state.InsertNewline(s)
	})
	ActionInsertTab = Action(func(s *state.EditorState, _ Event) {
		state.InsertTab(s)
	})
	ActionInsertBackspace = Action(func(s *state.EditorState, _ Event) {
		state.DeleteRunes(s, func(p state.LocatorParams) uint64 {
			if target := locate.PrevAutoIndent(p.Rope, p.AutoIndentEnabled, p.TabSize, p.CursorPos); target != p.CursorPos {
				return target
			}
			return locate.PrevChar(p.Rope, 1, p.CursorPos)
		})
	})
	ActionBeginNewLineAbove = Action(func(s *state.EditorState, _ Event) {
		state.BeginNewLineAbove(s)
		s.Mode = state.ModeInsert
	})
	ActionBeginNewLineBelow = Action(func(s *state.EditorState, _ Event) {
		state.BeginNewLineBelow(s)
		s.Mode = state.ModeInsert
	})
)

// Normal-mode delete/change/copy/paste families.
var (
	ActionDeletePrevCharInLine = Action(func(s *state.EditorState, _ Event) {
		state.DeleteRunes(s, func(p state.LocatorParams) uint64 {
			return locate.PrevCharInLine(p.Rope, 1, false, p.CursorPos)
		})
	})
	ActionDeleteNextCharInLine = Action(func(s *state.EditorState, _ Event) {
		state.DeleteRunes(s, func(p state.LocatorParams) uint64 {
			return locate.NextCharInLine(p.Rope, 1, false, p.CursorPos)
		})
	})
	ActionDeleteLine = Action(func(s *state.EditorState, _ Event) {
		state.DeleteLines(s, state.LineEndInclusive, true, false)
	})
	ActionDeleteToEndOfLine = Action(func(s *state.EditorState, _ Event) {
		state.DeleteRunes(s, func(p state.LocatorParams) uint64 {
			return locate.NextLineBoundary(p.Rope, false, p.CursorPos)
		})
	})
	ActionJoinLines = Action(func(s *state.EditorState, _ Event) {
		state.JoinLines(s)
	})
	ActionCopyLine = Action(func(s *state.EditorState, _ Event) {
		state.CopyLine(s, clipboard.PageDefault)
	})
	ActionCopyWordForward = Action(func(s *state.EditorState, _ Event) {
		state.CopyRegion(s, clipboard.PageDefault,
			func(p state.LocatorParams) uint64 { return p.CursorPos },
			func(p state.LocatorParams) uint64 {
				return locate.NextWordStart(p.Rope, p.CursorPos)
			})
	})
	ActionPasteAfter = Action(func(s *state.EditorState, _ Event) {
		state.PasteAfterCursor(s, clipboard.PageDefault)
	})
	ActionPasteBefore = Action(func(s *state.EditorState, _ Event) {
		state.PasteBeforeCursor(s, clipboard.PageDefault)
	})
	ActionToggleCaseAtCursor = Action(func(s *state.EditorState, _ Event) {
		state.ToggleCaseAtCursor(s)
	})
	ActionAwaitReplaceChar = Action(func(s *state.EditorState, _ Event) {
		s.PendingReplace = true
	})
	ActionApplyReplaceChar = Action(func(s *state.EditorState, ev Event) {
		if ev.Key != KeyRune {
			return
		}
		state.ReplaceChar(s, string(ev.Rune))
	})
	ActionIndentLine = Action(func(s *state.EditorState, _ Event) {
		state.IndentLineAtCursor(s)
	})
	ActionOutdentLine = Action(func(s *state.EditorState, _ Event) {
		state.OutdentLineAtCursor(s)
	})
	ActionUndo = Action(func(s *state.EditorState, _ Event) {
		if err := state.Undo(s); err != nil {
			state.SetMessage(s, state.MessageInfo, "nothing to undo")
		}
	})
	ActionRedo = Action(func(s *state.EditorState, _ Event) {
		if err := state.Redo(s); err != nil {
			state.SetMessage(s, state.MessageInfo, "nothing to redo")
		}
	})
)

// Select-mode operations. Delete, toggle-case, indent, outdent and copy
// return to Normal mode on completion (teacher's
// *AndReturnToNormalMode family); change enters Insert mode; the
// Extend* motions grow the selection and stay in Select mode.
var (
	ActionDeleteSelection = Action(func(s *state.EditorState, _ Event) {
		state.DeleteSelection(s, false)
	})
	ActionChangeSelection = Action(func(s *state.EditorState, _ Event) {
		state.DeleteSelection(s, true)
		s.Mode = state.ModeInsert
	})
	ActionToggleCaseInSelection = Action(func(s *state.EditorState, _ Event) {
		state.ToggleCaseInSelection(s)
		s.Mode = state.ModeNormal
	})
	ActionIndentSelection = Action(func(s *state.EditorState, _ Event) {
		state.IndentSelection(s)
		s.Mode = state.ModeNormal
	})
	ActionOutdentSelection = Action(func(s *state.EditorState, _ Event) {
		state.OutdentSelection(s)
		s.Mode = state.ModeNormal
	})
	ActionCopySelection = Action(func(s *state.EditorState, _ Event) {
		state.CopySelection(s)
		s.Mode = state.ModeNormal
	})
	ActionExtendLeft = Action(func(s *state.EditorState, _ Event) {
		state.ExtendSelection(s, func(p state.LocatorParams) uint64 {
			return locate.PrevCharInLine(p.Rope, 1, false, p.CursorPos)
		})
	})
	ActionExtendRight = Action(func(s *state.EditorState, _ Event) {
		state.ExtendSelection(s, func(p state.LocatorParams) uint64 {
			return locate.NextCharInLine(p.Rope, 1, true, p.CursorPos)
		})
	})
)

// Search.
var (
	ActionStartSearchForward = Action(func(s *state.EditorState, _ Event) {
		state.StartSearch(s, state.ReadDirectionForward)
	})
	ActionStartSearchBackward = Action(func(s *state.EditorState, _ Event) {
		state.StartSearch(s, state.ReadDirectionBackward)
	})
	ActionFindNextMatch = Action(func(s *state.EditorState, _ Event) {
		state.FindNextMatch(s, false)
	})
	ActionFindPrevMatch = Action(func(s *state.EditorState, _ Event) {
		state.FindNextMatch(s, true)
	})
)

// Dispatch runs action against s, wrapping it in the commit-at-return
// undo boundary from spec.md §4.6: "every mutating command ... commits
// an UndoTree snapshot at return."
func Dispatch(s *state.EditorState, action Action, ev Event, now time.Time, label string) {
	state.ClearMessage(s)
	state.BeginCommand(s)
	action(s, ev)
	state.EndCommand(s, label, now)
}
