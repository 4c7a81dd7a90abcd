package input

import (
	"time"

	"github.com/aesop-editor/aesop/internal/state"
)

// Controller is the Mode Controller of spec.md §4.6: it owns a
// per-mode Keymap, the pending key-sequence prefix, and the command
// table the keymaps bind into, and drives Dispatch on every resolved
// Event.
type Controller struct {
	Normal  *Keymap
	Select  *Keymap
	Insert  *Keymap
	Actions map[CommandID]Action

	pending []KeyChord
}

// NewController returns a Controller preloaded with
// DefaultNormalKeymap/DefaultSelectKeymap/DefaultInsertKeymap and
// DefaultActions.
func NewController() *Controller {
	return &Controller{
		Normal:  DefaultNormalKeymap(),
		Select:  DefaultSelectKeymap(),
		Insert:  DefaultInsertKeymap(),
		Actions: DefaultActions(),
	}
}

func (c *Controller) keymapFor(mode state.Mode) *Keymap {
	switch mode {
	case state.ModeSelect:
		return c.Select
	case state.ModeInsert:
		return c.Insert
	default:
		return c.Normal
	}
}

// HandleEvent processes one decoded Event against s's current mode.
// It implements the four-step algorithm of spec.md §4.6: extend the
// pending prefix, execute on a terminal match, wait on a strict
// prefix, or discard (falling back to literal insertion in Insert
// mode, and to CommandLine/SearchQuery text entry in Command mode).
func (c *Controller) HandleEvent(s *state.EditorState, ev Event, now time.Time) {
	if ev.Type != EventKey {
		return
	}

	if s.PendingReplace {
		s.PendingReplace = false
		if ev.Key == KeyRune {
			Dispatch(s, ActionApplyReplaceChar, ev, now, "replace")
		}
		return
	}

	if ev.Key == KeyEscape {
		c.pending = nil
		switch s.Mode {
		case state.ModeCommand:
			if s.SearchActive {
				state.CompleteSearch(s, false)
			}
			s.Mode = state.ModeNormal
			s.CommandLine = ""
		default:
			s.Mode = state.ModeNormal
		}
		return
	}

	if s.Mode == state.ModeCommand {
		c.handleCommandMode(s, ev, now)
		return
	}

	c.pending = append(c.pending, ChordFromEvent(ev))
	keymap := c.keymapFor(s.Mode)
	cmdID, result := keymap.Lookup(c.pending)

	switch result {
	case MatchExact, MatchPending:
		c.pending = nil
		if action, ok := c.Actions[cmdID]; ok {
			Dispatch(s, action, ev, now, string(cmdID))
		}
	case MatchPrefix:
		// wait for more input; pending prefix is left for the hint
		// renderer to display.
	case MatchNone:
		c.pending = nil
		if s.Mode == state.ModeInsert && ev.Key == KeyRune {
			Dispatch(s, ActionInsertRune, ev, now, "insert")
		}
	}
}

func (c *Controller) handleCommandMode(s *state.EditorState, ev Event, now time.Time) {
	switch ev.Key {
	case KeyEnter:
		if s.SearchActive {
			state.CompleteSearch(s, true)
			state.FindNextMatch(s, s.SearchDir == state.ReadDirectionBackward)
			return
		}
		line := s.CommandLine
		s.CommandLine = ""
		s.Mode = state.ModeNormal
		RunCommandLine(s, line)
	case KeyBackspace:
		if s.SearchActive {
			state.DeleteRuneFromSearchQuery(s)
			return
		}
		if s.CommandLine != "" {
			r := []rune(s.CommandLine)
			s.CommandLine = string(r[:len(r)-1])
		}
	case KeyRune:
		if s.SearchActive {
			state.AppendRuneToSearchQuery(s, ev.Rune)
			return
		}
		s.CommandLine += string(ev.Rune)
	}
}
