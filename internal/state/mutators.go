package state

import (
	"strings"

	"github.com/aesop-editor/aesop/internal/clipboard"
	"github.com/aesop-editor/aesop/internal/locate"
	"github.com/aesop-editor/aesop/internal/rope"
	"github.com/aesop-editor/aesop/internal/selection"
)

func (s *EditorState) locatorParams(pos uint64) LocatorParams {
	return LocatorParams{
		Rope:              s.Buf.Rope(),
		CursorPos:         pos,
		TabSize:           uint64(s.Settings.TabWidth),
		AutoIndentEnabled: s.Settings.AutoIndent,
	}
}

// MoveCursor moves every selection's head (and, if collapsed, its
// anchor too) to locatorFn's result.
func MoveCursor(s *EditorState, locatorFn func(LocatorParams) uint64) {
	s.Selections.ApplyMotion(func(head uint64) uint64 {
		return locatorFn(s.locatorParams(head))
	}, true)
}

// ExtendSelection is like MoveCursor but leaves each selection's
// anchor in place, growing the selection (Select mode).
func ExtendSelection(s *EditorState, locatorFn func(LocatorParams) uint64) {
	s.Selections.ApplyMotion(func(head uint64) uint64 {
		return locatorFn(s.locatorParams(head))
	}, false)
}

// MoveCursorToLineAbove/Below move every cursor up/down count visual
// lines, preserving column where possible.
func MoveCursorToLineAbove(s *EditorState, count uint64) {
	MoveCursor(s, func(p LocatorParams) uint64 {
		return sameColumnOnLine(p.Rope, p.CursorPos, locate.StartOfLineAbove(p.Rope, count, p.CursorPos))
	})
}

func MoveCursorToLineBelow(s *EditorState, count uint64) {
	MoveCursor(s, func(p LocatorParams) uint64 {
		return sameColumnOnLine(p.Rope, p.CursorPos, locate.StartOfLineBelow(p.Rope, count, p.CursorPos))
	})
}

// sameColumnOnLine returns the position on the line starting at
// lineStart with pos's character column, clamped to that line's end.
func sameColumnOnLine(r *rope.Rope, pos, lineStart uint64) uint64 {
	_, col, err := r.ByteToLineCol(pos)
	if err != nil {
		return lineStart
	}
	return locate.NextCharInLine(r, col, false, lineStart)
}

// InsertRune inserts r at every cursor, highest offset first so
// earlier offsets stay valid as later insertions shift the rope.
func InsertRune(s *EditorState, r rune) {
	insertAtEachCursor(s, string(r))
}

// InsertNewline inserts a line break at every cursor.
func InsertNewline(s *EditorState) {
	insertAtEachCursor(s, "\n")
}

// InsertTab inserts a tab, or TabWidth spaces if ExpandTabs is set.
func InsertTab(s *EditorState) {
	if s.Settings.ExpandTabs {
		insertAtEachCursor(s, strings.Repeat(" ", s.Settings.TabWidth))
	} else {
		insertAtEachCursor(s, "\t")
	}
}

func insertAtEachCursor(s *EditorState, text string) {
	sels := s.Selections.All()
	order := sortedCursorIndexesDescending(sels)
	for _, i := range order {
		pos := sels[i].Head
		if err := s.Buf.Insert(pos, text); err != nil {
			SetMessage(s, MessageError, err.Error())
			return
		}
		shift := uint64(len([]rune(text)))
		for j := range sels {
			// positions are byte offsets; text here is ASCII control
			// (newline/tab/space) or a single rune, so byte and rune
			// counts coincide for the shift computed above... except
			// non-ASCII runes, handled via len(text) in bytes instead.
			_ = shift
			if sels[j].Head >= pos {
				sels[j].Head += uint64(len(text))
				if sels[j].Anchor >= pos {
					sels[j].Anchor += uint64(len(text))
				}
			}
		}
	}
}

// sortedCursorIndexesDescending returns selection indexes ordered by
// descending Head position, so inserts/deletes apply back-to-front
// and don't invalidate not-yet-processed offsets.
func sortedCursorIndexesDescending(sels []selection.Selection) []int {
	idx := make([]int, len(sels))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && sels[idx[j-1]].Head < sels[idx[j]].Head; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
	return idx
}

// DeleteRunes deletes from each cursor's position to locatorFn's
// result (in either direction), leaving the cursor at the lower
// offset.
func DeleteRunes(s *EditorState, locatorFn func(LocatorParams) uint64) {
	sels := s.Selections.All()
	order := sortedCursorIndexesDescending(sels)
	for _, i := range order {
		pos := sels[i].Head
		target := locatorFn(s.locatorParams(pos))
		start, end := pos, target
		if start > end {
			start, end = end, start
		}
		if start == end {
			continue
		}
		if err := s.Buf.Delete(start, end); err != nil {
			SetMessage(s, MessageError, err.Error())
			return
		}
		shiftSelectionsAfterDelete(s.Selections.All(), start, end)
	}
}

func shiftSelectionsAfterDelete(sels []selection.Selection, start, end uint64) {
	n := end - start
	for j := range sels {
		sels[j].Head = clampAfterDelete(sels[j].Head, start, end, n)
		sels[j].Anchor = clampAfterDelete(sels[j].Anchor, start, end, n)
	}
}

func clampAfterDelete(pos, start, end, n uint64) uint64 {
	switch {
	case pos <= start:
		return pos
	case pos >= end:
		return pos - n
	default:
		return start
	}
}

// lineEndInclusive returns the byte offset just past the line
// containing pos's trailing newline (or the rope's length, at EOF).
// locate.NextLineBoundary stops at the newline itself regardless of
// its includeNewlineOrEOF flag, so callers that want the newline
// folded into a linewise range add it back here.
func lineEndInclusive(r *rope.Rope, pos uint64) uint64 {
	end := locate.NextLineBoundary(r, true, pos)
	if end < r.Len() {
		end++
	}
	return end
}

// LineEndInclusive is lineEndInclusive exposed as a LocatorParams
// function, for callers outside this package that need "one line,
// including its trailing newline" as a locator (e.g. input's `dd`
// binding targeting DeleteLines).
func LineEndInclusive(p LocatorParams) uint64 {
	return lineEndInclusive(p.Rope, p.CursorPos)
}

// JoinLines replaces the newline at the end of the cursor's line (and
// any following whitespace) with a single space.
func JoinLines(s *EditorState) {
	pos := s.Selections.Primary().Head
	r := s.Buf.Rope()
	lineEnd := locate.NextLineBoundary(r, false, pos)
	if lineEnd >= r.Len() {
		return
	}
	next := locate.NextNonWhitespaceOrNewline(r, lineEnd+1)
	if err := s.Buf.Delete(lineEnd, next); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
	if err := s.Buf.Insert(lineEnd, " "); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
	s.Selections.SetSingleCursor(lineEnd)
}

// ReplaceChar replaces the rune under the primary cursor with text.
func ReplaceChar(s *EditorState, text string) {
	pos := s.Selections.Primary().Head
	r := s.Buf.Rope()
	next := locate.NextCharInLine(r, 1, true, pos)
	if next == pos {
		return
	}
	if err := s.Buf.Delete(pos, next); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
	if err := s.Buf.Insert(pos, text); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
}

// CopyRegion copies [startLoc(pos), endLoc(pos)) of the primary
// cursor into page.
func CopyRegion(s *EditorState, page clipboard.PageID, startLoc, endLoc func(LocatorParams) uint64) {
	pos := s.Selections.Primary().Head
	start := startLoc(s.locatorParams(pos))
	end := endLoc(s.locatorParams(pos))
	if start > end {
		start, end = end, start
	}
	text, err := s.Buf.Rope().Slice(start, end)
	if err != nil {
		return
	}
	s.Registers.Set(page, clipboard.PageContent{Text: string(text)})
}

// CopyLine copies the cursor's current line, including its trailing
// newline, into page.
func CopyLine(s *EditorState, page clipboard.PageID) {
	pos := s.Selections.Primary().Head
	r := s.Buf.Rope()
	start := locate.PrevLineBoundary(r, pos)
	end := lineEndInclusive(r, pos)
	text, err := r.Slice(start, end)
	if err != nil {
		return
	}
	s.Registers.Set(page, clipboard.PageContent{Text: string(text), Linewise: true})
}

// PasteAfterCursor/BeforeCursor insert page's contents relative to
// the primary cursor, honoring the Linewise flag.
func PasteAfterCursor(s *EditorState, page clipboard.PageID) {
	paste(s, page, true)
}

func PasteBeforeCursor(s *EditorState, page clipboard.PageID) {
	paste(s, page, false)
}

func paste(s *EditorState, page clipboard.PageID, after bool) {
	content := s.Registers.Get(page)
	if content.Text == "" {
		return
	}
	pos := s.Selections.Primary().Head
	r := s.Buf.Rope()
	insertPos := pos
	if content.Linewise {
		if after {
			insertPos = lineEndInclusive(r, pos)
		} else {
			insertPos = locate.PrevLineBoundary(r, pos)
		}
	} else if after {
		insertPos = locate.NextCharInLine(r, 1, true, pos)
	}
	if err := s.Buf.Insert(insertPos, content.Text); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
	s.Selections.SetSingleCursor(insertPos)
}

// ToggleVisualMode enters Select mode anchored at the current cursor,
// or, if already in Select mode (charwise or linewise, whatever mode
// is passed), collapses the selection and returns to Normal mode.
func ToggleVisualMode(s *EditorState, mode selection.Mode) {
	if s.Mode == ModeSelect {
		s.Mode = ModeNormal
		s.Selections.SetSingleCursor(s.Selections.Primary().Head)
		return
	}
	head := s.Selections.Primary().Head
	s.Selections.SetSingleSelection(selection.Selection{Anchor: head, Head: head, Mode: mode})
	s.Mode = ModeSelect
}

// DeleteSelection deletes the primary selection's range into the
// default register and collapses to a single cursor at its start;
// other selections are dropped. Unless forChange is set it returns to
// Normal mode; with forChange the mode is left for the caller to set.
func DeleteSelection(s *EditorState, forChange bool) {
	sel := s.Selections.Primary()
	start, end := sel.Range()
	if start == end {
		return
	}
	text, _ := s.Buf.Rope().Slice(start, end)
	s.Registers.Set(clipboard.PageDefault, clipboard.PageContent{Text: string(text), Linewise: sel.Mode == selection.ModeLine})
	if err := s.Buf.Delete(start, end); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
	s.Selections.SetSingleCursor(start)
	if !forChange {
		s.Mode = ModeNormal
	}
}

// CopySelection copies the primary selection's range into the default
// register without mutating the buffer.
func CopySelection(s *EditorState) {
	sel := s.Selections.Primary()
	start, end := sel.Range()
	text, err := s.Buf.Rope().Slice(start, end)
	if err != nil {
		return
	}
	s.Registers.Set(clipboard.PageDefault, clipboard.PageContent{Text: string(text), Linewise: sel.Mode == selection.ModeLine})
	s.Selections.SetSingleCursor(start)
}

func indentWidth(s *EditorState) string {
	if s.Settings.ExpandTabs {
		return strings.Repeat(" ", s.Settings.TabWidth)
	}
	return "\t"
}

// IndentLineAtCursor prepends one indent unit to the cursor's line.
func IndentLineAtCursor(s *EditorState) {
	pos := s.Selections.Primary().Head
	lineStart := locate.PrevLineBoundary(s.Buf.Rope(), pos)
	_ = s.Buf.Insert(lineStart, indentWidth(s))
}

// OutdentLineAtCursor removes up to one indent unit's worth of
// leading whitespace from the cursor's line.
func OutdentLineAtCursor(s *EditorState) {
	outdentLine(s, s.Selections.Primary().Head)
}

func outdentLine(s *EditorState, pos uint64) {
	r := s.Buf.Rope()
	lineStart := locate.PrevLineBoundary(r, pos)
	nonWS := locate.NextNonWhitespaceOrNewline(r, lineStart)
	width := uint64(len(indentWidth(s)))
	end := lineStart + width
	if end > nonWS {
		end = nonWS
	}
	if end > lineStart {
		_ = s.Buf.Delete(lineStart, end)
	}
}

// IndentSelection/OutdentSelection apply Indent/OutdentLineAtCursor to
// every line the primary selection's range touches.
func IndentSelection(s *EditorState) {
	forEachSelectedLine(s, func(pos uint64) {
		lineStart := locate.PrevLineBoundary(s.Buf.Rope(), pos)
		_ = s.Buf.Insert(lineStart, indentWidth(s))
	})
}

func OutdentSelection(s *EditorState) {
	forEachSelectedLine(s, outdentLine)
}

func forEachSelectedLine(s *EditorState, fn func(pos uint64)) {
	sel := s.Selections.Primary()
	start, end := sel.Range()
	r := s.Buf.Rope()
	lineStarts := []uint64{}
	pos := locate.PrevLineBoundary(r, start)
	for pos <= end {
		lineStarts = append(lineStarts, pos)
		next := locate.NextLineBoundary(r, true, pos)
		if next >= r.Len() {
			break
		}
		pos = next + 1
	}
	for i := len(lineStarts) - 1; i >= 0; i-- {
		fn(lineStarts[i])
	}
}

// ToggleCaseAtCursor flips the case of the rune under the primary
// cursor.
func ToggleCaseAtCursor(s *EditorState) {
	toggleCaseRange(s, s.Selections.Primary().Head, locate.NextCharInLine(s.Buf.Rope(), 1, true, s.Selections.Primary().Head))
}

// ToggleCaseInSelection flips the case of every rune in the primary
// selection's range.
func ToggleCaseInSelection(s *EditorState) {
	start, end := s.Selections.Primary().Range()
	toggleCaseRange(s, start, end)
}

func toggleCaseRange(s *EditorState, start, end uint64) {
	if start >= end {
		return
	}
	text, err := s.Buf.Rope().Slice(start, end)
	if err != nil {
		return
	}
	toggled := toggleCaseUTF8(text)
	if err := s.Buf.Delete(start, end); err != nil {
		return
	}
	_ = s.Buf.Insert(start, toggled)
}

// BeginNewLineAbove inserts an empty line above the cursor's line and
// positions the cursor at its start.
func BeginNewLineAbove(s *EditorState) {
	pos := s.Selections.Primary().Head
	lineStart := locate.PrevLineBoundary(s.Buf.Rope(), pos)
	if err := s.Buf.Insert(lineStart, "\n"); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
	s.Selections.SetSingleCursor(lineStart)
}

// BeginNewLineBelow inserts an empty line below the cursor's line and
// positions the cursor at its start.
func BeginNewLineBelow(s *EditorState) {
	pos := s.Selections.Primary().Head
	r := s.Buf.Rope()
	lineEnd := lineEndInclusive(r, pos)
	if err := s.Buf.Insert(lineEnd, "\n"); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
	s.Selections.SetSingleCursor(lineEnd)
}

// DeleteLines deletes whole lines from the cursor's line up to (but
// not including) targetLoc's line, matching the teacher's dd/dj/dk
// shape.
func DeleteLines(s *EditorState, targetLoc func(LocatorParams) uint64, includeCursorLine, _ bool) {
	pos := s.Selections.Primary().Head
	r := s.Buf.Rope()
	start := locate.PrevLineBoundary(r, pos)
	if !includeCursorLine {
		start = lineEndInclusive(r, pos)
	}
	end := targetLoc(s.locatorParams(pos))
	if end < start {
		start, end = end, start
	}
	if start == end {
		return
	}
	text, _ := r.Slice(start, end)
	s.Registers.Set(clipboard.PageDefault, clipboard.PageContent{Text: string(text), Linewise: true})
	if err := s.Buf.Delete(start, end); err != nil {
		SetMessage(s, MessageError, err.Error())
		return
	}
	s.Selections.SetSingleCursor(minU64(start, r.Len()))
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// ClearAutoIndentWhitespaceLine deletes the whitespace-only contents
// of the line at lineLoc's result, matching the teacher's
// post-newline/post-Escape indent cleanup.
func ClearAutoIndentWhitespaceLine(s *EditorState, lineLoc func(LocatorParams) uint64) {
	pos := s.Selections.Primary().Head
	lineStart := lineLoc(s.locatorParams(pos))
	r := s.Buf.Rope()
	nonWS := locate.NextNonWhitespaceOrNewline(r, lineStart)
	if nonWS <= lineStart {
		return
	}
	if nonWS < r.Len() {
		end := nonWS + 1
		b, err := r.Slice(nonWS, minU64(end, r.Len()))
		if err == nil && string(b) != "\n" {
			return
		}
	}
	_ = s.Buf.Delete(lineStart, nonWS)
}
