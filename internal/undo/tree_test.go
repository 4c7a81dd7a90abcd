package undo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitUndoRedoRoundTrip(t *testing.T) {
	now := time.Unix(0, 0)
	tr := New("abc", now)

	tr.Commit("abcX", "insert X", now)
	assert.Equal(t, "abcX", tr.Current())

	snap, err := tr.Undo()
	require.NoError(t, err)
	assert.Equal(t, "abc", snap)

	snap, err = tr.Redo()
	require.NoError(t, err)
	assert.Equal(t, "abcX", snap)
}

func TestUndoAtRoot(t *testing.T) {
	tr := New("abc", time.Unix(0, 0))
	_, err := tr.Undo()
	assert.ErrorIs(t, err, ErrAtRoot)
}

func TestRedoWithNoChildren(t *testing.T) {
	tr := New("abc", time.Unix(0, 0))
	_, err := tr.Redo()
	assert.ErrorIs(t, err, ErrNoRedo)
}

func TestBranchPreservationOnUndoThenEdit(t *testing.T) {
	now := time.Unix(0, 0)
	tr := New("abc", now)

	tr.Commit("abcX", "insert X at 3", now)
	_, err := tr.Undo()
	require.NoError(t, err)

	tr.Commit("abcY", "insert Y at 3", now)

	_, err = tr.Undo()
	require.NoError(t, err)

	assert.Equal(t, 2, tr.BranchCount())

	branches := tr.ListBranches()
	require.Len(t, branches, 2)
	assert.Equal(t, "insert X at 3", branches[0].Label)
	assert.Equal(t, "insert Y at 3", branches[1].Label)

	snap, err := tr.SwitchToBranch(0)
	require.NoError(t, err)
	assert.Equal(t, "abcX", snap)
}

func TestBranchEvictionOldestFirst(t *testing.T) {
	now := time.Unix(0, 0)
	tr := New("root", now)

	for i := 0; i < MaxBranches; i++ {
		tr.Commit(i, "child", now)
		_, err := tr.Undo()
		require.NoError(t, err)
	}
	require.Equal(t, MaxBranches, tr.BranchCount())

	tr.Commit("newest", "overflow child", now)
	_, err := tr.Undo()
	require.NoError(t, err)

	assert.Equal(t, MaxBranches, tr.BranchCount())
	branches := tr.ListBranches()
	// The oldest child (committed with snapshot 0) was evicted; the
	// remaining children are 1..MaxBranches-1 plus the new one.
	assert.Equal(t, "overflow child", branches[len(branches)-1].Label)
}
