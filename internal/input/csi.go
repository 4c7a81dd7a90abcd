package input

import (
	"strconv"
	"strings"
)

// parseCSI interprets a CSI sequence's parameter bytes plus its
// terminator (the final byte in 0x40..0x7e) per the xterm table in
// spec.md §4.5: arrow keys, Home/End, and "<n>~" sequences for
// Insert/Delete/PgUp/PgDn/F1..F12.
func parseCSI(params []byte, terminator byte) (Event, bool) {
	switch terminator {
	case 'A':
		return keyEvent(KeyUp, ModNone), true
	case 'B':
		return keyEvent(KeyDown, ModNone), true
	case 'C':
		return keyEvent(KeyRight, ModNone), true
	case 'D':
		return keyEvent(KeyLeft, ModNone), true
	case 'H':
		return keyEvent(KeyHome, ModNone), true
	case 'F':
		return keyEvent(KeyEnd, ModNone), true
	case '~':
		n, ok := parseCSINumber(params)
		if !ok {
			return Event{}, false
		}
		key, ok := tildeKey(n)
		if !ok {
			return Event{}, false
		}
		return keyEvent(key, ModNone), true
	default:
		return Event{}, false
	}
}

func parseCSINumber(params []byte) (int, bool) {
	s := string(params)
	if idx := strings.IndexByte(s, ';'); idx >= 0 {
		s = s[:idx]
	}
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func tildeKey(n int) (Key, bool) {
	switch n {
	case 2:
		return KeyInsert, true
	case 3:
		return KeyDelete, true
	case 5:
		return KeyPgUp, true
	case 6:
		return KeyPgDn, true
	case 11:
		return KeyF1, true
	case 12:
		return KeyF2, true
	case 13:
		return KeyF3, true
	case 14:
		return KeyF4, true
	case 15:
		return KeyF5, true
	case 17:
		return KeyF6, true
	case 18:
		return KeyF7, true
	case 19:
		return KeyF8, true
	case 20:
		return KeyF9, true
	case 21:
		return KeyF10, true
	case 23:
		return KeyF11, true
	case 24:
		return KeyF12, true
	default:
		return KeyNone, false
	}
}

const (
	mouseModShift   = 4
	mouseModAlt     = 8
	mouseModCtrl    = 16
	mouseScroll     = 0x40
	mouseButtonMask = 0x03
)

// parseMouseSGR interprets the "button;col;row" body of an SGR mouse
// report (spec.md §4.5): button/modifier bits per the xterm SGR mouse
// protocol, release indicated by the 'm' terminator rather than 'M'.
func parseMouseSGR(body []byte, release bool) (Event, bool) {
	parts := strings.Split(string(body), ";")
	if len(parts) != 3 {
		return Event{}, false
	}
	raw, err1 := strconv.Atoi(parts[0])
	col, err2 := strconv.Atoi(parts[1])
	row, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Event{}, false
	}

	var mods Modifiers
	if raw&mouseModShift != 0 {
		mods |= ModShift
	}
	if raw&mouseModAlt != 0 {
		mods |= ModAlt
	}
	if raw&mouseModCtrl != 0 {
		mods |= ModCtrl
	}

	mtype := MousePress
	if release {
		mtype = MouseRelease
	}

	return Event{
		Type:      EventMouse,
		Mods:      mods,
		MouseType: mtype,
		Button:    raw & mouseButtonMask,
		Scroll:    raw&mouseScroll != 0,
		Col:       col,
		Row:       row,
	}, true
}
