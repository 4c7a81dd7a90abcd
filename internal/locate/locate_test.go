package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aesop-editor/aesop/internal/rope"
)

func mustRope(t *testing.T, s string) *rope.Rope {
	t.Helper()
	r, err := rope.NewFromString(s)
	require.NoError(t, err)
	return r
}

func TestNextWordStart(t *testing.T) {
	testCases := []struct {
		name        string
		inputString string
		pos         uint64
		expectedPos uint64
	}{
		{name: "empty", inputString: "", pos: 0, expectedPos: 0},
		{name: "next word from current word, same line", inputString: "abc   defg   hij", pos: 1, expectedPos: 6},
		{name: "next word from whitespace, same line", inputString: "abc   defg   hij", pos: 4, expectedPos: 6},
		{name: "next word from different line", inputString: "abc\n   123", pos: 1, expectedPos: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRope(t, tc.inputString)
			assert.Equal(t, tc.expectedPos, NextWordStart(r, tc.pos))
		})
	}
}

func TestPrevWordStart(t *testing.T) {
	testCases := []struct {
		name        string
		inputString string
		pos         uint64
		expectedPos uint64
	}{
		{name: "from middle of word", inputString: "abc def", pos: 5, expectedPos: 4},
		{name: "from start of word to prev word", inputString: "abc def", pos: 4, expectedPos: 0},
		{name: "at start of text", inputString: "abc def", pos: 0, expectedPos: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRope(t, tc.inputString)
			assert.Equal(t, tc.expectedPos, PrevWordStart(r, tc.pos))
		})
	}
}

func TestLineBoundaries(t *testing.T) {
	r := mustRope(t, "abc\ndefgh\nij")
	assert.Equal(t, uint64(4), PrevLineBoundary(r, 6))
	assert.Equal(t, uint64(9), NextLineBoundary(r, false, 6))
	assert.Equal(t, uint64(9), NextLineBoundary(r, true, 6))
}

func TestStartOfLineAboveBelow(t *testing.T) {
	r := mustRope(t, "aaa\nbbb\nccc\nddd")
	pos, err := r.LineColToByte(2, 1) // line "ccc", col 1
	require.NoError(t, err)

	above := StartOfLineAbove(r, 1, pos)
	assert.Equal(t, uint64(4), above) // start of "bbb"

	below := StartOfLineBelow(r, 1, pos)
	assert.Equal(t, uint64(12), below) // start of "ddd"
}

func TestCurrentWordStartEnd(t *testing.T) {
	r := mustRope(t, "foo barbaz qux")
	start := CurrentWordStart(r, 6) // inside "barbaz"
	end := CurrentWordEnd(r, 6)
	assert.Equal(t, uint64(4), start)
	assert.Equal(t, uint64(10), end)
}

func TestParagraphMotions(t *testing.T) {
	r := mustRope(t, "a\nb\n\nc\nd")
	assert.Equal(t, uint64(4), NextParagraph(r, 0))
	assert.Equal(t, uint64(4), PrevParagraph(r, 6))
}
