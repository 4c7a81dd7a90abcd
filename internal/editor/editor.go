// Package editor assembles the core engine packages (buffer, state,
// input, display, vt, term) into the single-threaded cooperative
// event loop of spec.md §5: render, poll input, decode, dispatch,
// sleep. It has no teacher equivalent in the retrieved pack (the
// teacher's loop lives behind tcell.Screen.PollEvent/app.NewEditor,
// neither of which is in _examples); its shape is built directly from
// spec.md §5's five numbered steps.
package editor

import (
	"io"
	"time"
	"unicode/utf8"

	"github.com/aesop-editor/aesop/internal/buffer"
	"github.com/aesop-editor/aesop/internal/config"
	"github.com/aesop-editor/aesop/internal/display"
	"github.com/aesop-editor/aesop/internal/input"
	"github.com/aesop-editor/aesop/internal/locate"
	"github.com/aesop-editor/aesop/internal/state"
	"github.com/aesop-editor/aesop/internal/syntax"
	"github.com/aesop-editor/aesop/internal/vt"
)

// TickSleep bounds the loop's CPU usage between polls, per spec.md §5
// step 5 ("~5ms"). The ~300ms poll bound itself lives in the raw tty
// read, governed by internal/term's VMIN=0/VTIME=3 setting rather than
// a Go-level timer.
const TickSleep = 5 * time.Millisecond

// Editor owns every per-session component except the raw terminal
// mode itself, which the caller (cmd/aesop) acquires and releases so
// that teardown runs on every exit path, not just a clean one.
type Editor struct {
	State      *state.EditorState
	Decoder    *input.Decoder
	Controller *input.Controller
	Compositor *display.Compositor
	Writer     *vt.Writer

	demo bool
}

// New constructs an Editor around an empty buffer (path == ""), a
// file opened from path, or the static --demo screen, sized rows x
// cols (the terminal's current ioctl size).
func New(out io.Writer, path string, demo bool, rows, cols int, now time.Time) (*Editor, error) {
	var buf *buffer.Buffer
	var err error
	if demo || path == "" {
		buf = buffer.New(1, now)
		if demo {
			if insErr := buf.Insert(0, demoText); insErr != nil {
				return nil, insErr
			}
		}
	} else {
		buf, err = buffer.Open(1, path, now)
		if err != nil {
			return nil, err
		}
	}

	settings := loadSettings(path)

	ed := &Editor{
		State:      state.New(buf, settings, now),
		Decoder:    input.NewDecoder(),
		Controller: input.NewController(),
		Compositor: display.NewCompositor(cols, rows),
		Writer:     vt.NewWriter(out),
		demo:       demo,
	}
	ed.State.ViewHeight = rows
	return ed, nil
}

// loadSettings resolves the RuleSet-driven config.Config for path
// (falling back to defaults for an empty path or load failure) and
// adapts it into the flat Settings the event loop consults; a missing
// or malformed config file is not fatal, per spec.md §6's silence on
// error handling for an external, core-adjacent concern.
func loadSettings(path string) config.Settings {
	settings := config.DefaultSettings()
	rules, err := config.LoadRuleSet()
	if err != nil || path == "" {
		return settings
	}
	cfg := rules.ConfigForPath(path)
	settings.TabWidth = cfg.TabSize
	settings.ExpandTabs = cfg.TabExpand
	settings.AutoIndent = cfg.AutoIndent
	return settings
}

const demoText = "welcome to aesop\n\npress i to insert, Esc to return to Normal mode, :wq to save and quit\n"

// HandleResize updates the compositor and ViewHeight after a terminal
// resize event, forcing a full-damage redraw on the next Render.
func (e *Editor) HandleResize(rows, cols int) {
	e.Compositor.Resize(cols, rows)
	e.State.ViewHeight = rows
}

// Render composes the buffer's visible lines and a status line into
// the compositor's front buffer, emits only the dirty rows via the VT
// Writer, and positions the terminal cursor at the primary selection's
// head (spec.md §4.7's damage-tracked swap).
func (e *Editor) Render() error {
	e.paintBuffer()
	e.paintStatusLine()

	dirty := e.Compositor.Swap()
	if err := e.Writer.RenderFrame(e.Compositor, dirty); err != nil {
		return err
	}

	row, col := e.cursorScreenPos()
	if err := e.Writer.Goto(row, col); err != nil {
		return err
	}
	return e.Writer.Flush()
}

func (e *Editor) paintBuffer() {
	r := e.State.Buf.Rope()
	height := e.Compositor.Height()
	width := e.Compositor.Width()
	textRows := height - 1
	if textRows < 0 {
		textRows = 0
	}

	for row := 0; row < textRows; row++ {
		e.Compositor.ClearRow(row)
		lineNum := uint64(e.State.ViewTopLine + row)
		if lineNum >= r.LineCount() {
			continue
		}
		start, err := r.LineColToByte(lineNum, 0)
		if err != nil {
			continue
		}
		end := locate.NextLineBoundary(r, false, start)
		text, err := r.Slice(start, end)
		if err != nil {
			continue
		}
		tokens := e.State.Provider.TokensIntersectingRange(r, start, end)
		e.paintLine(row, width, string(text), start, tokens)
	}
}

func (e *Editor) paintLine(row, width int, text string, lineStart uint64, tokens []syntax.Token) {
	if len(tokens) == 0 {
		e.Compositor.WriteText(row, 0, text, display.DefaultColor, display.DefaultColor, display.Attrs{})
		return
	}
	col := 0
	pos := lineStart
	runes := []rune(text)
	for _, r := range runes {
		attrs := display.Attrs{}
		if roleAt(tokens, pos) == syntax.TokenRoleKeyword {
			attrs.Bold = true
		}
		n := e.Compositor.WriteText(row, col, string(r), display.DefaultColor, display.DefaultColor, attrs)
		col += n
		pos += uint64(utf8.RuneLen(r))
	}
}

func roleAt(tokens []syntax.Token, pos uint64) syntax.TokenRole {
	for _, tok := range tokens {
		if pos >= tok.StartPos && pos < tok.EndPos {
			return tok.Role
		}
	}
	return syntax.TokenRoleNone
}

func (e *Editor) paintStatusLine() {
	height := e.Compositor.Height()
	row := height - 1
	if row < 0 {
		return
	}
	e.Compositor.ClearRow(row)

	text := "-- " + e.State.Mode.String() + " --"
	if e.State.Mode == state.ModeCommand {
		prefix := ":"
		if e.State.SearchActive {
			if e.State.SearchDir == state.ReadDirectionBackward {
				prefix = "?"
			} else {
				prefix = "/"
			}
			text = prefix + e.State.SearchQuery
		} else {
			text = prefix + e.State.CommandLine
		}
	} else if e.State.Message != nil {
		text = e.State.Message.Text
	}
	e.Compositor.WriteText(row, 0, text, display.DefaultColor, display.DefaultColor, display.Attrs{Reverse: true})
}

func (e *Editor) cursorScreenPos() (row, col int) {
	r := e.State.Buf.Rope()
	pos := e.State.Selections.Primary().Head
	line, column, err := r.ByteToLineCol(pos)
	if err != nil {
		return 0, 0
	}
	row = int(line) - e.State.ViewTopLine
	col = int(column)
	if row < 0 {
		row = 0
	}
	return row, col
}

// HandleInputBytes decodes a batch of raw tty bytes and dispatches
// every resulting event through the Mode Controller.
func (e *Editor) HandleInputBytes(data []byte, now time.Time) {
	events := e.Decoder.Decode(data)
	for _, ev := range events {
		if ev.Type != input.EventKey {
			continue
		}
		if ev.Key == input.KeyRune && ev.Rune == 'c' && ev.Mods == input.ModCtrl {
			e.State.Quit = true
			return
		}
		if e.demo {
			if ev.Key == input.KeyEscape || (ev.Key == input.KeyRune && ev.Rune == 'q') {
				e.State.Quit = true
			}
			continue
		}
		e.Controller.HandleEvent(e.State, ev, now)
		if e.State.Quit {
			return
		}
	}
}

// Quit reports whether a command has requested the event loop stop.
func (e *Editor) Quit() bool {
	return e.State.Quit
}
