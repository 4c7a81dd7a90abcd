// Package state glues the editing primitives (Buffer, SelectionSet,
// UndoTree, registers) into the single EditorState commands mutate,
// and implements the commit-at-return undo boundary: any command that
// changes the rope's contents commits a new UndoTree snapshot when it
// returns. A command that only moves or reshapes selections commits
// nothing.
package state

import (
	"time"

	"github.com/aesop-editor/aesop/internal/buffer"
	"github.com/aesop-editor/aesop/internal/clipboard"
	"github.com/aesop-editor/aesop/internal/config"
	"github.com/aesop-editor/aesop/internal/rope"
	"github.com/aesop-editor/aesop/internal/selection"
	"github.com/aesop-editor/aesop/internal/syntax"
	"github.com/aesop-editor/aesop/internal/undo"
)

// Mode is one of the four Mode Controller states.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeSelect
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeSelect:
		return "SELECT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// MessageLevel classifies a user-visible status message.
type MessageLevel int

const (
	MessageInfo MessageLevel = iota
	MessageWarning
	MessageError
	MessageSuccess
)

// Message is shown on the status line in place of the mode indicator
// until the next dispatched command clears it.
type Message struct {
	Level MessageLevel
	Text  string
}

// LocatorParams is the bundle of buffer context a locate function
// needs to compute a new cursor position.
type LocatorParams struct {
	Rope              *rope.Rope
	CursorPos         uint64
	TabSize           uint64
	AutoIndentEnabled bool
}

// EditorState is the full mutable state one command dispatch may
// touch: exactly one open buffer, its selections and undo history,
// the active mode, registers, and the message queue. The core
// supports one buffer at a time (spec.md §2 scopes "Buffer" as the
// unit a command mutates, not a multi-buffer workspace).
type EditorState struct {
	Buf        *buffer.Buffer
	Selections *selection.Set
	Undo       *undo.Tree
	Mode       Mode
	Registers  *clipboard.Store
	Settings   config.Settings
	SyntaxLang syntax.Language
	Provider   syntax.Provider

	CommandLine    string
	SearchQuery    string
	SearchDir      ReadDirection
	SearchActive   bool
	PendingReplace bool

	Message *Message

	ViewTopLine int
	ViewHeight  int

	Quit bool

	preCommandSnapshot *bufferSnapshot
}

// ReadDirection is the direction a search runs.
type ReadDirection int

const (
	ReadDirectionForward ReadDirection = iota
	ReadDirectionBackward
)

type bufferSnapshot struct {
	rope string // buffer.Rope().String(); compared by value, not identity
}

// New constructs an EditorState around buf, starting in Normal mode
// with a single collapsed cursor at position 0.
func New(buf *buffer.Buffer, settings config.Settings, now time.Time) *EditorState {
	return &EditorState{
		Buf:        buf,
		Selections: selection.NewSet(0),
		Undo:       undo.New(buf.Snapshot(), now),
		Mode:       ModeNormal,
		Registers:  clipboard.NewStore(),
		Settings:   settings,
		Provider:   syntax.Stub{},
		ViewHeight: 24,
	}
}

// OpenBuffer replaces s.Buf with the file at path, resetting
// selections, undo history, and mode as a fresh New would, for the
// command-line `e <path>` verb (spec.md §4.6).
func OpenBuffer(s *EditorState, path string, now time.Time) error {
	buf, err := buffer.Open(1, path, now)
	if err != nil {
		return err
	}
	s.Buf = buf
	s.Selections = selection.NewSet(0)
	s.Undo = undo.New(buf.Snapshot(), now)
	s.Mode = ModeNormal
	s.ViewTopLine = 0
	return nil
}

// SetInputMode changes the active mode.
func SetInputMode(s *EditorState, mode Mode) {
	s.Mode = mode
}

// SetMessage replaces the current status message.
func SetMessage(s *EditorState, level MessageLevel, text string) {
	s.Message = &Message{Level: level, Text: text}
}

// ClearMessage dismisses the current status message, called on the
// next input event per spec.md §7.
func ClearMessage(s *EditorState) {
	s.Message = nil
}

// BeginCommand captures the buffer's contents before a command runs,
// so EndCommand can tell whether the command actually mutated it.
func BeginCommand(s *EditorState) {
	s.preCommandSnapshot = &bufferSnapshot{rope: s.Buf.Rope().String()}
}

// EndCommand commits an UndoTree snapshot labeled label if the
// buffer's contents changed since the matching BeginCommand, per the
// "edit boundary" heuristic in spec.md §4.6: every mutating command
// commits at return, not once per keystroke within the command.
func EndCommand(s *EditorState, label string, now time.Time) {
	defer func() { s.preCommandSnapshot = nil }()
	if s.preCommandSnapshot == nil {
		return
	}
	if s.Buf.Rope().String() == s.preCommandSnapshot.rope {
		return
	}
	s.Undo.Commit(s.Buf.Snapshot(), label, now)
}

// Undo reverts the buffer to its parent UndoTree snapshot.
func Undo(s *EditorState) error {
	snap, err := s.Undo.Undo()
	if err != nil {
		return err
	}
	s.Buf.Restore(snap.(*rope.Rope))
	clampSelections(s)
	return nil
}

// Redo reapplies the most recently undone UndoTree snapshot.
func Redo(s *EditorState) error {
	snap, err := s.Undo.Redo()
	if err != nil {
		return err
	}
	s.Buf.Restore(snap.(*rope.Rope))
	clampSelections(s)
	return nil
}

// ScrollViewByNumLines shifts the view's top line by count lines in
// dir, clamped to the buffer's line count.
func ScrollViewByNumLines(s *EditorState, dir ReadDirection, count uint64) {
	delta := int(count)
	if dir == ReadDirectionBackward {
		delta = -delta
	}
	newTop := s.ViewTopLine + delta
	if newTop < 0 {
		newTop = 0
	}
	maxTop := int(s.Buf.Rope().LineCount()) - 1
	if newTop > maxTop {
		newTop = maxTop
	}
	s.ViewTopLine = newTop
}

func clampSelections(s *EditorState) {
	length := s.Buf.Rope().Len()
	sels := s.Selections.All()
	for i := range sels {
		if sels[i].Head > length {
			sels[i].Head = length
		}
		if sels[i].Anchor > length {
			sels[i].Anchor = length
		}
	}
}
