package input

// CommandID names a bound command in a Keymap.
type CommandID string

// KeyChord is one key press in a KeySeq: a decoded Event stripped down
// to the fields that distinguish bindings.
type KeyChord struct {
	Key  Key
	Rune rune
	Mods Modifiers
}

// ChordFromEvent extracts the KeyChord a keymap binds against from a
// decoded key Event. Mouse events have no chord.
func ChordFromEvent(ev Event) KeyChord {
	return KeyChord{Key: ev.Key, Rune: ev.Rune, Mods: ev.Mods}
}

type keymapNode struct {
	children map[KeyChord]*keymapNode
	command  CommandID
	terminal bool
}

func newKeymapNode() *keymapNode {
	return &keymapNode{children: make(map[KeyChord]*keymapNode)}
}

// Keymap is a prefix trie mapping a KeySeq to a CommandID, per
// spec.md §4.6.
type Keymap struct {
	root *keymapNode
}

// NewKeymap returns an empty Keymap.
func NewKeymap() *Keymap {
	return &Keymap{root: newKeymapNode()}
}

// Bind registers seq as triggering cmd. A later Bind of a seq that is
// a prefix of an earlier one (or vice versa) is permitted; the trie
// simply marks both nodes reachable, matching the Normal-mode
// vim-style case where e.g. "d" alone is not bound but "dd" is.
func (k *Keymap) Bind(seq []KeyChord, cmd CommandID) {
	node := k.root
	for _, chord := range seq {
		next, ok := node.children[chord]
		if !ok {
			next = newKeymapNode()
			node.children[chord] = next
		}
		node = next
	}
	node.command = cmd
	node.terminal = true
}

// MatchResult is the outcome of looking up a pending prefix.
type MatchResult int

const (
	// MatchNone: the prefix matches no binding; discard it.
	MatchNone MatchResult = iota
	// MatchExact: the prefix matches a bound command exactly and is
	// not itself a prefix of any longer binding.
	MatchExact
	// MatchPending: the prefix matches a bound command AND is a
	// strict prefix of at least one longer binding (ambiguous
	// — spec.md doesn't require resolving this case eagerly, so
	// Keymap reports it and leaves the choice to the caller).
	MatchPending
	// MatchPrefix: the prefix is a strict prefix of some binding but
	// is not itself bound; wait for more input.
	MatchPrefix
)

// Lookup walks seq from the root and reports whether it is a terminal
// match, a strict prefix of a longer binding, both, or neither.
func (k *Keymap) Lookup(seq []KeyChord) (CommandID, MatchResult) {
	node := k.root
	for _, chord := range seq {
		next, ok := node.children[chord]
		if !ok {
			return "", MatchNone
		}
		node = next
	}
	hasChildren := len(node.children) > 0
	switch {
	case node.terminal && hasChildren:
		return node.command, MatchPending
	case node.terminal:
		return node.command, MatchExact
	case hasChildren:
		return "", MatchPrefix
	default:
		return "", MatchNone
	}
}
