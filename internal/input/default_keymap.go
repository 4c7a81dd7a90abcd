package input

// Command IDs bound by the default keymaps. Grouped by the mode(s)
// that bind them, mirroring the grouping of Action vars in
// commands.go.
const (
	CmdCursorLeft          CommandID = "cursor-left"
	CmdCursorRight         CommandID = "cursor-right"
	CmdCursorUp            CommandID = "cursor-up"
	CmdCursorDown          CommandID = "cursor-down"
	CmdCursorLineStart     CommandID = "cursor-line-start"
	CmdCursorLineEnd       CommandID = "cursor-line-end"
	CmdCursorNextWordStart CommandID = "cursor-next-word-start"
	CmdCursorPrevWordStart CommandID = "cursor-prev-word-start"
	CmdCursorNextWordEnd   CommandID = "cursor-next-word-end"
	CmdCursorFirstLine     CommandID = "cursor-first-line"
	CmdCursorLastLine      CommandID = "cursor-last-line"

	CmdEnterInsert          CommandID = "enter-insert"
	CmdEnterInsertAfter     CommandID = "enter-insert-after"
	CmdEnterInsertLineEnd  CommandID = "enter-insert-line-end"
	CmdEnterSelectCharwise CommandID = "enter-select-charwise"
	CmdEnterSelectLinewise CommandID = "enter-select-linewise"
	CmdEnterCommand        CommandID = "enter-command"
	CmdStartSearchForward  CommandID = "start-search-forward"
	CmdStartSearchBackward CommandID = "start-search-backward"
	CmdFindNextMatch       CommandID = "find-next-match"
	CmdFindPrevMatch       CommandID = "find-prev-match"

	CmdDeletePrevCharInLine CommandID = "delete-prev-char-in-line"
	CmdDeleteNextCharInLine CommandID = "delete-next-char-in-line"
	CmdDeleteLine           CommandID = "delete-line"
	CmdDeleteToEndOfLine    CommandID = "delete-to-end-of-line"
	CmdJoinLines            CommandID = "join-lines"
	CmdCopyLine             CommandID = "copy-line"
	CmdCopyWordForward      CommandID = "copy-word-forward"
	CmdPasteAfter           CommandID = "paste-after"
	CmdPasteBefore          CommandID = "paste-before"
	CmdToggleCaseAtCursor   CommandID = "toggle-case-at-cursor"
	CmdIndentLine           CommandID = "indent-line"
	CmdOutdentLine          CommandID = "outdent-line"
	CmdUndo                 CommandID = "undo"
	CmdRedo                 CommandID = "redo"
	CmdBeginNewLineAbove    CommandID = "begin-new-line-above"
	CmdBeginNewLineBelow    CommandID = "begin-new-line-below"
	CmdAwaitReplaceChar     CommandID = "await-replace-char"

	CmdDeleteSelection      CommandID = "delete-selection"
	CmdChangeSelection      CommandID = "change-selection"
	CmdToggleCaseSelection  CommandID = "toggle-case-selection"
	CmdIndentSelection      CommandID = "indent-selection"
	CmdOutdentSelection     CommandID = "outdent-selection"
	CmdCopySelection        CommandID = "copy-selection"
	CmdExtendLeft           CommandID = "extend-left"
	CmdExtendRight          CommandID = "extend-right"

	CmdReturnToNormal CommandID = "return-to-normal"
)

func chord(k Key) KeyChord             { return KeyChord{Key: k} }
func runeChord(r rune) KeyChord         { return KeyChord{Key: KeyRune, Rune: r} }
func seq(chords ...KeyChord) []KeyChord { return chords }

// DefaultActions wires every CommandID above to its Action, so
// Controller.Actions is ready to Dispatch on a keymap match.
func DefaultActions() map[CommandID]Action {
	return map[CommandID]Action{
		CmdCursorLeft:          ActionCursorLeft,
		CmdCursorRight:         ActionCursorRight,
		CmdCursorUp:            ActionCursorUp,
		CmdCursorDown:          ActionCursorDown,
		CmdCursorLineStart:     ActionCursorLineStart,
		CmdCursorLineEnd:       ActionCursorLineEnd,
		CmdCursorNextWordStart: ActionCursorNextWordStart,
		CmdCursorPrevWordStart: ActionCursorPrevWordStart,
		CmdCursorNextWordEnd:   ActionCursorNextWordEnd,
		CmdCursorFirstLine:     ActionCursorFirstLine,
		CmdCursorLastLine:      ActionCursorLastLine,

		CmdEnterInsert:         ActionEnterInsertMode,
		CmdEnterInsertAfter:    ActionEnterInsertAfterCursor,
		CmdEnterInsertLineEnd:  ActionEnterInsertModeAtLineEnd,
		CmdEnterSelectCharwise: ActionEnterSelectCharwise,
		CmdEnterSelectLinewise: ActionEnterSelectLinewise,
		CmdEnterCommand:        ActionEnterCommandMode,
		CmdStartSearchForward:  ActionStartSearchForward,
		CmdStartSearchBackward: ActionStartSearchBackward,
		CmdFindNextMatch:       ActionFindNextMatch,
		CmdFindPrevMatch:       ActionFindPrevMatch,

		CmdDeletePrevCharInLine: ActionDeletePrevCharInLine,
		CmdDeleteNextCharInLine: ActionDeleteNextCharInLine,
		CmdDeleteLine:           ActionDeleteLine,
		CmdDeleteToEndOfLine:    ActionDeleteToEndOfLine,
		CmdJoinLines:            ActionJoinLines,
		CmdCopyLine:             ActionCopyLine,
		CmdCopyWordForward:      ActionCopyWordForward,
		CmdPasteAfter:           ActionPasteAfter,
		CmdPasteBefore:          ActionPasteBefore,
		CmdToggleCaseAtCursor:   ActionToggleCaseAtCursor,
		CmdIndentLine:           ActionIndentLine,
		CmdOutdentLine:          ActionOutdentLine,
		CmdUndo:                 ActionUndo,
		CmdRedo:                 ActionRedo,
		CmdBeginNewLineAbove:    ActionBeginNewLineAbove,
		CmdBeginNewLineBelow:    ActionBeginNewLineBelow,
		CmdAwaitReplaceChar:     ActionAwaitReplaceChar,

		CmdDeleteSelection:     ActionDeleteSelection,
		CmdChangeSelection:     ActionChangeSelection,
		CmdToggleCaseSelection: ActionToggleCaseInSelection,
		CmdIndentSelection:     ActionIndentSelection,
		CmdOutdentSelection:    ActionOutdentSelection,
		CmdCopySelection:       ActionCopySelection,
		CmdExtendLeft:          ActionExtendLeft,
		CmdExtendRight:         ActionExtendRight,

		CmdReturnToNormal: ActionReturnToNormalMode,

		CmdInsertTab:       ActionInsertTab,
		CmdInsertNewline:   ActionInsertNewline,
		CmdInsertBackspace: ActionInsertBackspace,
	}
}

// DefaultNormalKeymap binds the vim-like Normal-mode chords the
// teacher's input/actions.go names its Mutators after (CursorLeft,
// DeletePrevChar, ToggleVisualModeCharwise, ...), adapted to this
// repo's CommandID/Action split.
func DefaultNormalKeymap() *Keymap {
	k := NewKeymap()
	k.Bind(seq(runeChord('h')), CmdCursorLeft)
	k.Bind(seq(chord(KeyLeft)), CmdCursorLeft)
	k.Bind(seq(runeChord('l')), CmdCursorRight)
	k.Bind(seq(chord(KeyRight)), CmdCursorRight)
	k.Bind(seq(runeChord('k')), CmdCursorUp)
	k.Bind(seq(chord(KeyUp)), CmdCursorUp)
	k.Bind(seq(runeChord('j')), CmdCursorDown)
	k.Bind(seq(chord(KeyDown)), CmdCursorDown)
	k.Bind(seq(runeChord('0')), CmdCursorLineStart)
	k.Bind(seq(chord(KeyHome)), CmdCursorLineStart)
	k.Bind(seq(runeChord('$')), CmdCursorLineEnd)
	k.Bind(seq(chord(KeyEnd)), CmdCursorLineEnd)
	k.Bind(seq(runeChord('w')), CmdCursorNextWordStart)
	k.Bind(seq(runeChord('b')), CmdCursorPrevWordStart)
	k.Bind(seq(runeChord('e')), CmdCursorNextWordEnd)
	k.Bind(seq(runeChord('g'), runeChord('g')), CmdCursorFirstLine)
	k.Bind(seq(runeChord('G')), CmdCursorLastLine)

	k.Bind(seq(runeChord('i')), CmdEnterInsert)
	k.Bind(seq(runeChord('a')), CmdEnterInsertAfter)
	k.Bind(seq(runeChord('A')), CmdEnterInsertLineEnd)
	k.Bind(seq(runeChord('o')), CmdBeginNewLineBelow)
	k.Bind(seq(runeChord('O')), CmdBeginNewLineAbove)
	k.Bind(seq(runeChord('v')), CmdEnterSelectCharwise)
	k.Bind(seq(runeChord('V')), CmdEnterSelectLinewise)
	k.Bind(seq(runeChord(':')), CmdEnterCommand)
	k.Bind(seq(runeChord('/')), CmdStartSearchForward)
	k.Bind(seq(runeChord('?')), CmdStartSearchBackward)
	k.Bind(seq(runeChord('n')), CmdFindNextMatch)
	k.Bind(seq(runeChord('N')), CmdFindPrevMatch)

	k.Bind(seq(runeChord('x')), CmdDeleteNextCharInLine)
	k.Bind(seq(chord(KeyDelete)), CmdDeleteNextCharInLine)
	k.Bind(seq(runeChord('X')), CmdDeletePrevCharInLine)
	k.Bind(seq(runeChord('d'), runeChord('d')), CmdDeleteLine)
	k.Bind(seq(runeChord('D')), CmdDeleteToEndOfLine)
	k.Bind(seq(runeChord('J')), CmdJoinLines)
	k.Bind(seq(runeChord('y'), runeChord('y')), CmdCopyLine)
	k.Bind(seq(runeChord('y'), runeChord('w')), CmdCopyWordForward)
	k.Bind(seq(runeChord('p')), CmdPasteAfter)
	k.Bind(seq(runeChord('P')), CmdPasteBefore)
	k.Bind(seq(runeChord('r')), CmdAwaitReplaceChar)
	k.Bind(seq(runeChord('~')), CmdToggleCaseAtCursor)
	k.Bind(seq(runeChord('>'), runeChord('>')), CmdIndentLine)
	k.Bind(seq(runeChord('<'), runeChord('<')), CmdOutdentLine)
	k.Bind(seq(runeChord('u')), CmdUndo)
	k.Bind(seq(KeyChord{Key: KeyRune, Rune: 'r', Mods: ModCtrl}), CmdRedo)
	return k
}

// DefaultSelectKeymap binds Select-mode chords: the same motions
// extend the selection instead of moving a collapsed cursor, plus the
// teacher's *AndReturnToNormalMode operations.
func DefaultSelectKeymap() *Keymap {
	k := NewKeymap()
	k.Bind(seq(runeChord('h')), CmdExtendLeft)
	k.Bind(seq(chord(KeyLeft)), CmdExtendLeft)
	k.Bind(seq(runeChord('l')), CmdExtendRight)
	k.Bind(seq(chord(KeyRight)), CmdExtendRight)
	k.Bind(seq(runeChord('d')), CmdDeleteSelection)
	k.Bind(seq(runeChord('x')), CmdDeleteSelection)
	k.Bind(seq(runeChord('c')), CmdChangeSelection)
	k.Bind(seq(runeChord('~')), CmdToggleCaseSelection)
	k.Bind(seq(runeChord('>')), CmdIndentSelection)
	k.Bind(seq(runeChord('<')), CmdOutdentSelection)
	k.Bind(seq(runeChord('y')), CmdCopySelection)
	k.Bind(seq(runeChord('v')), CmdReturnToNormal)
	return k
}

// DefaultInsertKeymap binds the handful of Insert-mode chords that
// aren't plain literal-rune insertion (Tab, Enter, Backspace);
// unmatched KeyRune events fall through Controller.HandleEvent's
// MatchNone branch to ActionInsertRune.
func DefaultInsertKeymap() *Keymap {
	k := NewKeymap()
	k.Bind(seq(chord(KeyTab)), CmdInsertTab)
	k.Bind(seq(chord(KeyEnter)), CmdInsertNewline)
	k.Bind(seq(chord(KeyBackspace)), CmdInsertBackspace)
	return k
}

const (
	CmdInsertTab       CommandID = "insert-tab"
	CmdInsertNewline   CommandID = "insert-newline"
	CmdInsertBackspace CommandID = "insert-backspace"
)
