// Package buffer implements a named text document: a rope plus the
// bookkeeping (filepath, modified/readonly flags, timestamps) needed
// to load and save it.
package buffer

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/aesop-editor/aesop/internal/rope"
)

// MaxFileSize is the largest file Open will read.
const MaxFileSize = 100 * 1024 * 1024 // 100 MiB

// ErrNoFilepath is returned by Save when the buffer has no filepath.
var ErrNoFilepath = errors.New("buffer: no filepath set")

// ErrFileTooLarge is returned by Open when the file exceeds MaxFileSize.
var ErrFileTooLarge = errors.New("buffer: file exceeds maximum size")

// Buffer is a named text document wrapping a rope.
type Buffer struct {
	ID       int
	filepath string
	readonly bool
	modified bool

	createdMs  int64
	modifiedMs int64

	rope *rope.Rope
}

// New returns an empty, unnamed buffer.
func New(id int, now time.Time) *Buffer {
	return &Buffer{
		ID:        id,
		rope:      rope.New(),
		createdMs: now.UnixMilli(),
	}
}

// Open reads path (up to MaxFileSize bytes) and returns a buffer
// containing its contents. The file must be valid UTF-8.
func Open(id int, path string, now time.Time) (*Buffer, error) {
	info, err := os.Stat(path)
	if err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "buffer: reading %q", path)
	}

	var r *rope.Rope
	if os.IsNotExist(err) {
		r = rope.New()
	} else {
		r, err = rope.NewFromString(string(data))
		if err != nil {
			return nil, errors.Wrapf(rope.ErrNotUTF8, "buffer: %q", path)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &Buffer{
		ID:        id,
		filepath:  abs,
		rope:      r,
		createdMs: now.UnixMilli(),
	}, nil
}

// Filepath returns the buffer's associated path, or "" if unset.
func (b *Buffer) Filepath() string { return b.filepath }

// Name returns the filepath's final element, or "[No Name]" if unset.
func (b *Buffer) Name() string {
	if b.filepath == "" {
		return "[No Name]"
	}
	return filepath.Base(b.filepath)
}

// Modified reports whether the buffer has unsaved edits.
func (b *Buffer) Modified() bool { return b.modified }

// Readonly reports whether the buffer rejects edits.
func (b *Buffer) Readonly() bool { return b.readonly }

// SetReadonly sets the readonly flag.
func (b *Buffer) SetReadonly(readonly bool) { b.readonly = readonly }

// Rope returns the buffer's underlying rope.
func (b *Buffer) Rope() *rope.Rope { return b.rope }

// Insert inserts text at pos and marks the buffer modified.
func (b *Buffer) Insert(pos uint64, text string) error {
	if err := b.rope.Insert(pos, text); err != nil {
		return err
	}
	b.modified = true
	return nil
}

// Delete removes [start, end) and marks the buffer modified.
func (b *Buffer) Delete(start, end uint64) error {
	if err := b.rope.Delete(start, end); err != nil {
		return err
	}
	b.modified = true
	return nil
}

// Save writes the rope's bytes to the buffer's filepath. Fails with
// ErrNoFilepath if none is set. On success, clears Modified and
// updates the modified timestamp.
func (b *Buffer) Save(now time.Time) error {
	if b.filepath == "" {
		return ErrNoFilepath
	}
	return b.save(b.filepath, now)
}

// SaveAs sets the buffer's filepath to path, then saves.
func (b *Buffer) SaveAs(path string, now time.Time) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	b.filepath = abs
	return b.save(abs, now)
}

func (b *Buffer) save(path string, now time.Time) error {
	data, err := b.rope.Slice(0, b.rope.Len())
	if err != nil {
		return errors.Wrap(err, "buffer: reading rope for save")
	}
	// renameio writes to a temp file in the same directory and
	// renames it into place, so a crash or full disk mid-write never
	// leaves a truncated file at path.
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "buffer: saving %q", path)
	}
	b.modified = false
	b.modifiedMs = now.UnixMilli()
	return nil
}

// Reload re-reads the buffer's file from disk, discarding in-memory
// edits. Fails with ErrNoFilepath if none is set.
func (b *Buffer) Reload(now time.Time) error {
	if b.filepath == "" {
		return ErrNoFilepath
	}
	data, err := os.ReadFile(b.filepath)
	if err != nil {
		return errors.Wrapf(err, "buffer: reloading %q", b.filepath)
	}
	r, err := rope.NewFromString(string(data))
	if err != nil {
		return errors.Wrapf(rope.ErrNotUTF8, "buffer: %q", b.filepath)
	}
	b.rope = r
	b.modified = false
	b.modifiedMs = now.UnixMilli()
	return nil
}

// CreatedMs and ModifiedMs return Unix millisecond timestamps.
func (b *Buffer) CreatedMs() int64  { return b.createdMs }
func (b *Buffer) ModifiedMs() int64 { return b.modifiedMs }

// Snapshot returns a copy of the buffer's rope for storage in the undo
// tree. Because rope edits build new nodes instead of mutating old
// ones, this is a cheap logical clone: the returned *rope.Rope shares
// its nodes and leaf byte slices with the buffer's live rope, and later
// edits to the buffer leave it unchanged.
func (b *Buffer) Snapshot() *rope.Rope {
	snap := *b.rope
	return &snap
}

// Restore replaces the buffer's rope with a copy of a previously
// captured snapshot (from the undo tree), so later edits leave the
// snapshot itself unchanged, and marks the buffer modified.
func (b *Buffer) Restore(snapshot *rope.Rope) {
	r := *snapshot
	b.rope = &r
	b.modified = true
}
