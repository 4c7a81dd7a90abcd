// Package term acquires and releases raw terminal mode, and queries
// the terminal's size, via golang.org/x/sys/unix termios ioctls. It
// owns the raw/cooked mode transition the spec requires the editor to
// hold directly rather than delegate to a screen library.
package term

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ErrNotATerminal is returned when raw mode is requested on a file
// descriptor that isn't backed by a TTY.
var ErrNotATerminal = errors.New("file descriptor is not a terminal")

// State holds the termios settings to restore on Release.
type State struct {
	fd       int
	original unix.Termios
}

// IsTerminal reports whether fd refers to a terminal device.
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}

// MakeRaw puts fd into raw mode: no canonical line buffering, no
// echo, no signal-generating keys, input CR left alone (not mapped to
// NL), output post-processing left enabled so the writer's "\n" still
// advances to column 0 on the physical terminal. VMIN=0/VTIME=3 makes
// reads return after 300ms even with no bytes available, so the event
// loop can poll for resize/redraw without blocking forever.
func MakeRaw(fd int) (*State, error) {
	if !IsTerminal(fd) {
		return nil, ErrNotATerminal
	}
	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, errors.Wrap(err, "IoctlGetTermios")
	}
	state := &State{fd: fd, original: *orig}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 3

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, errors.Wrap(err, "IoctlSetTermios")
	}
	return state, nil
}

// Release restores the termios settings captured by MakeRaw. Callers
// must invoke this on every exit path (normal return, error, and
// recovered panic) so the shell the editor was launched from isn't
// left in raw mode.
func Release(state *State) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(state.fd, unix.TCSETS, &state.original)
}

// Size is a terminal's dimensions in character cells.
type Size struct {
	Rows, Cols int
}

// GetSize queries fd's window size via TIOCGWINSZ.
func GetSize(fd int) (Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, errors.Wrap(err, "IoctlGetWinsize")
	}
	return Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}
