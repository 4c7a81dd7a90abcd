package input

import "unicode/utf8"

type decoderState int

const (
	stateNormal decoderState = iota
	stateEscape
	stateCSI
	stateMouseSGR
)

// Decoder is the byte-stream state machine from spec.md §4.5. It is
// not safe for concurrent use; the event loop owns one per input
// source.
type Decoder struct {
	state decoderState

	csi []byte

	utf8Need int
	utf8Buf  []byte
}

// NewDecoder returns a Decoder starting in the Normal state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode consumes a batch of raw bytes read from the terminal and
// returns the events they produced. If the batch ends with the
// decoder still in the Escape state, a standalone Escape event is
// appended and the decoder resets to Normal (the "dangling Escape"
// policy: a lone ESC with nothing following it in the same read is a
// real Escape keypress, not the start of a sequence still in flight).
func (d *Decoder) Decode(data []byte) []Event {
	var events []Event
	for _, b := range data {
		if ev, ok := d.step(b); ok {
			events = append(events, ev)
		}
	}
	if d.state == stateEscape {
		events = append(events, keyEvent(KeyEscape, ModNone))
		d.state = stateNormal
	}
	return events
}

func (d *Decoder) step(b byte) (Event, bool) {
	if d.utf8Need > 0 {
		return d.stepUTF8Continuation(b)
	}

	switch d.state {
	case stateNormal:
		return d.stepNormal(b)
	case stateEscape:
		return d.stepEscape(b)
	case stateCSI:
		return d.stepCSI(b)
	case stateMouseSGR:
		return d.stepMouseSGR(b)
	}
	return Event{}, false
}

func (d *Decoder) stepNormal(b byte) (Event, bool) {
	switch {
	case b == 0x1b:
		d.state = stateEscape
		return Event{}, false
	case b == 0x7f:
		return keyEvent(KeyBackspace, ModNone), true
	case b == '\r' || b == '\n':
		return keyEvent(KeyEnter, ModNone), true
	case b == '\t':
		return keyEvent(KeyTab, ModNone), true
	case b >= 0x01 && b <= 0x1a:
		return runeEvent(rune(b+0x60), ModCtrl), true
	case b >= 0x20 && b <= 0x7e:
		return runeEvent(rune(b), ModNone), true
	case b >= 0x80:
		return d.startUTF8(b)
	default:
		return Event{}, false
	}
}

func (d *Decoder) stepEscape(b byte) (Event, bool) {
	switch {
	case b == '[':
		d.state = stateCSI
		d.csi = d.csi[:0]
		return Event{}, false
	case b >= 0x20 && b <= 0x7e:
		d.state = stateNormal
		return runeEvent(rune(b), ModAlt), true
	default:
		d.state = stateNormal
		return Event{}, false
	}
}

func (d *Decoder) stepCSI(b byte) (Event, bool) {
	if len(d.csi) == 0 && b == '<' {
		d.state = stateMouseSGR
		d.csi = d.csi[:0]
		return Event{}, false
	}
	if b >= 0x40 && b <= 0x7e {
		d.state = stateNormal
		seq := d.csi
		d.csi = nil
		return parseCSI(seq, b)
	}
	d.csi = append(d.csi, b)
	return Event{}, false
}

func (d *Decoder) stepMouseSGR(b byte) (Event, bool) {
	if b == 'M' || b == 'm' {
		d.state = stateNormal
		seq := d.csi
		d.csi = nil
		return parseMouseSGR(seq, b == 'm')
	}
	d.csi = append(d.csi, b)
	return Event{}, false
}

func (d *Decoder) startUTF8(b byte) (Event, bool) {
	size := utf8SeqLen(b)
	if size <= 1 {
		// invalid lead byte; drop
		return Event{}, false
	}
	d.utf8Need = size - 1
	d.utf8Buf = append(d.utf8Buf[:0], b)
	return Event{}, false
}

func (d *Decoder) stepUTF8Continuation(b byte) (Event, bool) {
	d.utf8Buf = append(d.utf8Buf, b)
	d.utf8Need--
	if d.utf8Need > 0 {
		return Event{}, false
	}
	r, size := utf8.DecodeRune(d.utf8Buf)
	if r == utf8.RuneError && size <= 1 {
		return Event{}, false
	}
	return runeEvent(r, ModNone), true
}

func utf8SeqLen(lead byte) int {
	switch {
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}
