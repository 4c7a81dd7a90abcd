// Package locate implements cursor motions over a rope.Rope: word and
// line boundaries, paragraph boundaries, and the other position
// computations that drive Normal/Insert/Select mode commands.
//
// Every function takes and returns byte offsets into the rope, which
// is the coordinate space selection.Selection and the undo/redo
// machinery operate in; conversion to/from (line, column) happens only
// at the display boundary.
package locate

import (
	"unicode"
	"unicode/utf8"

	"github.com/aesop-editor/aesop/internal/rope"
)

func runeAt(r *rope.Rope, pos uint64) (rune, int, bool) {
	if pos >= r.Len() {
		return 0, 0, false
	}
	b, err := r.Slice(pos, minU64(pos+4, r.Len()))
	if err != nil || len(b) == 0 {
		return 0, 0, false
	}
	rn, size := utf8.DecodeRune(b)
	return rn, size, true
}

func runeBefore(r *rope.Rope, pos uint64) (rune, int, bool) {
	if pos == 0 {
		return 0, 0, false
	}
	lo := pos - 4
	if pos < 4 {
		lo = 0
	}
	b, err := r.Slice(lo, pos)
	if err != nil || len(b) == 0 {
		return 0, 0, false
	}
	rn, size := utf8.DecodeLastRune(b)
	return rn, size, true
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isSpaceOrNewline(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || unicode.IsSpace(r)
}

// PrevCharInLine moves count characters backward, stopping at the
// start of the current line, so it never moves before the line start.
// The bool argument is ignored.
func PrevCharInLine(r *rope.Rope, count uint64, _ bool, pos uint64) uint64 {
	lineStart := PrevLineBoundary(r, pos)
	for i := uint64(0); i < count && pos > lineStart; i++ {
		_, size, ok := runeBefore(r, pos)
		if !ok {
			break
		}
		pos -= uint64(size)
	}
	return pos
}

// NextCharInLine moves count characters forward, stopping at the end
// of the current line: the motion may land one past the last character
// (on the newline or EOF) whatever includeEndOfLineOrFile is, since
// NextLineBoundary returns the same end for either flag value.
func NextCharInLine(r *rope.Rope, count uint64, includeEndOfLineOrFile bool, pos uint64) uint64 {
	lineEnd := NextLineBoundary(r, includeEndOfLineOrFile, pos)
	for i := uint64(0); i < count && pos < lineEnd; i++ {
		_, size, ok := runeAt(r, pos)
		if !ok {
			break
		}
		pos += uint64(size)
	}
	if pos > lineEnd {
		pos = lineEnd
	}
	return pos
}

// PrevChar moves count characters backward without regard to line
// boundaries.
func PrevChar(r *rope.Rope, count uint64, pos uint64) uint64 {
	for i := uint64(0); i < count; i++ {
		_, size, ok := runeBefore(r, pos)
		if !ok {
			break
		}
		pos -= uint64(size)
	}
	return pos
}

// NextChar moves count characters forward without regard to line
// boundaries.
func NextChar(r *rope.Rope, count uint64, pos uint64) uint64 {
	for i := uint64(0); i < count; i++ {
		_, size, ok := runeAt(r, pos)
		if !ok {
			break
		}
		pos += uint64(size)
	}
	return pos
}

// PrevLineBoundary returns the byte offset of the start of the line
// containing pos.
func PrevLineBoundary(r *rope.Rope, pos uint64) uint64 {
	for pos > 0 {
		rn, size, ok := runeBefore(r, pos)
		if !ok || rn == '\n' {
			break
		}
		pos -= uint64(size)
	}
	return pos
}

// NextLineBoundary returns the byte offset of the end of the line
// containing pos: the position of its trailing '\n', or the rope's
// length on the last line. includeNewlineOrEOF does not change the
// result.
func NextLineBoundary(r *rope.Rope, includeNewlineOrEOF bool, pos uint64) uint64 {
	for pos < r.Len() {
		rn, size, ok := runeAt(r, pos)
		if !ok {
			break
		}
		if rn == '\n' {
			if includeNewlineOrEOF {
				return pos
			}
			return pos
		}
		pos += uint64(size)
	}
	return pos
}

// NextNonWhitespaceOrNewline advances past spaces and tabs (but not
// newlines) starting at pos.
func NextNonWhitespaceOrNewline(r *rope.Rope, pos uint64) uint64 {
	for pos < r.Len() {
		rn, size, ok := runeAt(r, pos)
		if !ok || rn == '\n' || !unicode.IsSpace(rn) {
			break
		}
		pos += uint64(size)
	}
	return pos
}

// StartOfLineAbove returns the start of the line `count` lines above
// the line containing pos, clamped to the first line.
func StartOfLineAbove(r *rope.Rope, count uint64, pos uint64) uint64 {
	lineStart := PrevLineBoundary(r, pos)
	for i := uint64(0); i < count && lineStart > 0; i++ {
		lineStart = PrevLineBoundary(r, lineStart-1)
	}
	return lineStart
}

// StartOfLineBelow returns the start of the line `count` lines below
// the line containing pos, clamped to the last line.
func StartOfLineBelow(r *rope.Rope, count uint64, pos uint64) uint64 {
	lineEnd := NextLineBoundary(r, true, pos)
	for i := uint64(1); i < count && lineEnd < r.Len(); i++ {
		lineEnd += 1 // skip the newline itself
		lineEnd = NextLineBoundary(r, true, lineEnd)
	}
	if lineEnd >= r.Len() {
		return StartOfLastLine(r)
	}
	return lineEnd + 1
}

// StartOfLineNum returns the byte offset of the start of 0-indexed
// line lineNum, clamped to the last line.
func StartOfLineNum(r *rope.Rope, lineNum uint64) uint64 {
	if lineNum >= r.LineCount() {
		lineNum = r.LineCount() - 1
	}
	b, err := r.LineColToByte(lineNum, 0)
	if err != nil {
		return 0
	}
	return b
}

// StartOfLastLine returns the byte offset of the start of the rope's
// last line.
func StartOfLastLine(r *rope.Rope) uint64 {
	return StartOfLineNum(r, r.LineCount()-1)
}

// ClosestCharOnLine clamps pos to the last valid cursor position on
// its line (used after a delete shortens the line).
func ClosestCharOnLine(r *rope.Rope, pos uint64) uint64 {
	lineEnd := NextLineBoundary(r, false, pos)
	if pos > lineEnd {
		return lineEnd
	}
	return pos
}

// NextWordStart returns the byte offset of the start of the next word
// after pos (vim's `w` motion).
func NextWordStart(r *rope.Rope, pos uint64) uint64 {
	rn, size, ok := runeAt(r, pos)
	if !ok {
		return pos
	}
	if isWordRune(rn) {
		for {
			rn, size, ok = runeAt(r, pos)
			if !ok || !isWordRune(rn) {
				break
			}
			pos += uint64(size)
		}
	} else if !isSpaceOrNewline(rn) {
		for {
			rn, size, ok = runeAt(r, pos)
			if !ok || isWordRune(rn) || isSpaceOrNewline(rn) {
				break
			}
			pos += uint64(size)
		}
	}
	for {
		rn, size, ok = runeAt(r, pos)
		if !ok || !unicode.IsSpace(rn) {
			break
		}
		pos += uint64(size)
	}
	return pos
}

// NextWordStartInLine is like NextWordStart but never crosses a
// newline (used by change/delete-to-next-word commands).
func NextWordStartInLine(r *rope.Rope, pos uint64) uint64 {
	lineEnd := NextLineBoundary(r, true, pos)
	next := NextWordStart(r, pos)
	if next > lineEnd {
		return lineEnd
	}
	return next
}

// PrevWordStart returns the byte offset of the start of the word
// before pos (vim's `b` motion).
func PrevWordStart(r *rope.Rope, pos uint64) uint64 {
	for pos > 0 {
		rn, size, ok := runeBefore(r, pos)
		if !ok || !unicode.IsSpace(rn) {
			break
		}
		pos -= uint64(size)
	}
	if pos == 0 {
		return 0
	}
	rn, size, ok := runeBefore(r, pos)
	if !ok {
		return pos
	}
	if isWordRune(rn) {
		for pos > 0 {
			rn, size, ok = runeBefore(r, pos)
			if !ok || !isWordRune(rn) {
				break
			}
			pos -= uint64(size)
		}
	} else {
		for pos > 0 {
			rn, size, ok = runeBefore(r, pos)
			if !ok || isWordRune(rn) || unicode.IsSpace(rn) {
				break
			}
			pos -= uint64(size)
		}
	}
	return pos
}

// NextWordEnd returns the byte offset of the end of the current or
// next word (vim's `e` motion): the position of the word's last
// character.
func NextWordEnd(r *rope.Rope, pos uint64) uint64 {
	rn, size, ok := runeAt(r, pos)
	if ok && (isWordRune(rn) || !isSpaceOrNewline(rn)) {
		pos += uint64(size)
	}
	for {
		rn, size, ok = runeAt(r, pos)
		if !ok || !unicode.IsSpace(rn) {
			break
		}
		pos += uint64(size)
	}
	rn, _, ok = runeAt(r, pos)
	if !ok {
		return pos
	}
	classify := isWordRune(rn)
	for {
		rn, size, ok = runeAt(r, pos)
		if !ok {
			break
		}
		cur := isWordRune(rn)
		if isSpaceOrNewline(rn) || cur != classify {
			break
		}
		pos += uint64(size)
	}
	if pos > 0 {
		_, lastSize, _ := runeBefore(r, pos)
		return pos - uint64(lastSize)
	}
	return pos
}

// CurrentWordStart returns the byte offset of the start of the word
// containing pos (or the word at/after pos if pos is on whitespace).
func CurrentWordStart(r *rope.Rope, pos uint64) uint64 {
	for pos > 0 {
		rn, size, ok := runeBefore(r, pos)
		if !ok {
			break
		}
		if rn == '\n' {
			break
		}
		atPos, _, okAt := runeAt(r, pos)
		if okAt {
			if isWordRune(atPos) != isWordRune(rn) {
				break
			}
		}
		pos -= uint64(size)
	}
	return pos
}

// CurrentWordEnd returns the byte offset just past the end of the
// word containing pos.
func CurrentWordEnd(r *rope.Rope, pos uint64) uint64 {
	rn, _, ok := runeAt(r, pos)
	if !ok {
		return pos
	}
	word := isWordRune(rn)
	for {
		cur, size, ok := runeAt(r, pos)
		if !ok || cur == '\n' || isWordRune(cur) != word {
			break
		}
		pos += uint64(size)
	}
	return pos
}

// CurrentWordEndWithTrailingWhitespace is CurrentWordEnd extended to
// also consume any run of spaces/tabs immediately following the word
// (used by dw/daw-style delete commands).
func CurrentWordEndWithTrailingWhitespace(r *rope.Rope, pos uint64) uint64 {
	end := CurrentWordEnd(r, pos)
	for {
		rn, size, ok := runeAt(r, end)
		if !ok || rn == '\n' || !unicode.IsSpace(rn) {
			break
		}
		end += uint64(size)
	}
	return end
}

// PrevParagraph returns the byte offset of the start of the blank
// line preceding the current paragraph, or 0.
func PrevParagraph(r *rope.Rope, pos uint64) uint64 {
	lineStart := PrevLineBoundary(r, pos)
	for lineStart > 0 {
		prevStart := PrevLineBoundary(r, lineStart-1)
		if isBlankLine(r, prevStart) {
			return prevStart
		}
		lineStart = prevStart
	}
	return 0
}

// NextParagraph returns the byte offset of the start of the next
// blank line, or the end of the rope.
func NextParagraph(r *rope.Rope, pos uint64) uint64 {
	lineStart := NextLineBoundaryStart(r, pos)
	for lineStart < r.Len() {
		if isBlankLine(r, lineStart) {
			return lineStart
		}
		lineStart = NextLineBoundaryStart(r, lineStart)
	}
	return r.Len()
}

// NextLineBoundaryStart returns the start of the line after the one
// containing pos.
func NextLineBoundaryStart(r *rope.Rope, pos uint64) uint64 {
	end := NextLineBoundary(r, true, pos)
	if end >= r.Len() {
		return r.Len()
	}
	return end + 1
}

func isBlankLine(r *rope.Rope, lineStart uint64) bool {
	end := NextLineBoundary(r, false, lineStart)
	return end == lineStart
}

// PrevAutoIndent returns how far backward from pos the auto-indent
// whitespace on the current line extends, used so backspace can
// delete a full indent level at once. tabSize controls how many
// spaces one indent level represents when autoIndentEnabled is false
// it simply returns pos (no special handling).
func PrevAutoIndent(r *rope.Rope, autoIndentEnabled bool, tabSize uint64, pos uint64) uint64 {
	if !autoIndentEnabled || tabSize == 0 {
		return pos
	}
	lineStart := PrevLineBoundary(r, pos)
	if pos == lineStart {
		return pos
	}
	b, err := r.Slice(lineStart, pos)
	if err != nil {
		return pos
	}
	for _, c := range b {
		if c != ' ' && c != '\t' {
			return pos
		}
	}
	back := tabSize
	if uint64(len(b)) < back {
		back = uint64(len(b))
	}
	return pos - back
}
