// Package input turns a raw byte stream from the terminal into key
// and mouse events (the decoder, spec.md §4.5), then dispatches those
// events through a Keymap and Mode Controller into Action functions
// that mutate an internal/state.EditorState (spec.md §4.6).
package input

// EventType classifies a decoded terminal event.
type EventType int

const (
	EventKey EventType = iota
	EventMouse
)

// MouseEventType distinguishes press from release.
type MouseEventType int

const (
	MousePress MouseEventType = iota
	MouseRelease
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers int

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Key identifies a non-printable or named key.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Event is a single decoded input event: either a key (Key, with Rune
// set when Key == KeyRune) or a mouse event (MouseType/Button/Col/Row).
type Event struct {
	Type EventType

	Key  Key
	Rune rune
	Mods Modifiers

	MouseType MouseEventType
	Button    int
	Scroll    bool
	Col, Row  int
}

func keyEvent(k Key, mods Modifiers) Event {
	return Event{Type: EventKey, Key: k, Mods: mods}
}

func runeEvent(r rune, mods Modifiers) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r, Mods: mods}
}
