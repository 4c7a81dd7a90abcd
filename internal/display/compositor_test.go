package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompositorFirstSwapMarksEveryRowDirty(t *testing.T) {
	c := NewCompositor(10, 3)
	changed := c.Swap()
	assert.Equal(t, []int{0, 1, 2}, changed)
}

func TestSetCellDirtiesOnlyItsRow(t *testing.T) {
	c := NewCompositor(10, 3)
	c.Swap() // consume initial full-dirty frame

	c.SetCell(1, 2, Cell{Codepoint: 'x'})
	changed := c.Swap()
	require.Equal(t, []int{1}, changed)

	// Nothing changed since the last swap, so no rows are dirty.
	assert.Empty(t, c.Swap())
}

func TestWriteTextTruncatesAtRightEdge(t *testing.T) {
	c := NewCompositor(5, 1)
	written := c.WriteText(0, 3, "hello", DefaultColor, DefaultColor, Attrs{})
	assert.Equal(t, 2, written)
	assert.Equal(t, 'h', c.Cell(0, 3).Codepoint)
	assert.Equal(t, 'e', c.Cell(0, 4).Codepoint)
}

func TestWriteTextReplacesInvalidRunesWithSpace(t *testing.T) {
	c := NewCompositor(5, 1)
	c.WriteText(0, 0, string([]byte{0xff}), DefaultColor, DefaultColor, Attrs{})
	assert.Equal(t, ' ', c.Cell(0, 0).Codepoint)
}

func TestClearRowResetsToEmptyCell(t *testing.T) {
	c := NewCompositor(3, 2)
	c.SetCell(0, 0, Cell{Codepoint: 'z'})
	c.ClearRow(0)
	assert.Equal(t, emptyCell, c.Cell(0, 0))
}

func TestResizePreservesOverlapAndMarksDirty(t *testing.T) {
	c := NewCompositor(4, 2)
	c.SetCell(0, 0, Cell{Codepoint: 'a'})
	c.Swap()

	c.Resize(2, 2)
	assert.Equal(t, 'a', c.Cell(0, 0).Codepoint)
	assert.Equal(t, []int{0, 1}, c.Swap())
}

func TestOutOfBoundsSetCellIsIgnored(t *testing.T) {
	c := NewCompositor(2, 2)
	c.SetCell(5, 5, Cell{Codepoint: 'a'})
	c.SetCell(-1, 0, Cell{Codepoint: 'a'})
	assert.Equal(t, emptyCell, c.Cell(0, 0))
}

func TestRowCellsReturnsACopy(t *testing.T) {
	c := NewCompositor(3, 1)
	c.SetCell(0, 1, Cell{Codepoint: 'm'})
	row := c.RowCells(0)
	row[1] = Cell{Codepoint: 'z'}
	assert.Equal(t, 'm', c.Cell(0, 1).Codepoint)
}
