// Package state holds the drawing document model: strokes, snapshots and
// the undo/redo history of a single drawing.
package state

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a document size is not positive.
var ErrInvalidSize = errors.New("size must be positive")

// DefaultSize is the logical size used for new drawings when the caller has
// no preference.
const DefaultSize = 1024

// Document is a single drawing: a square logical size plus an ordered list
// of strokes, with snapshot-based undo/redo and a dirty flag.
//
// A Document is owned by one editor at a time and does no locking. Callers
// that share it across goroutines must serialize access themselves, or hand
// over a CloneDeep.
type Document struct {
	size    int
	strokes []Stroke

	version          int
	lastSavedVersion int

	undo history
	redo history
}

// Option configures a Document at construction.
type Option func(*Document)

// WithHistoryLimit caps the undo stack at n entries, dropping the oldest
// first. n <= 0 keeps history unbounded.
func WithHistoryLimit(n int) Option {
	return func(d *Document) {
		if n < 0 {
			n = 0
		}
		d.undo.limit = n
		d.redo.limit = n
	}
}

// New creates an empty document of the given size. A fresh document has
// never been saved, so IsChanged reports true until Save is called.
func New(size int, opts ...Option) (*Document, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new document: %w (got %d)", ErrInvalidSize, size)
	}
	d := &Document{
		size:             size,
		strokes:          make([]Stroke, 0),
		lastSavedVersion: -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Restore rebuilds a document from persisted strokes. The result has no
// history and is marked saved.
func Restore(size int, strokes []Stroke, opts ...Option) (*Document, error) {
	d, err := New(size, opts...)
	if err != nil {
		return nil, err
	}
	// Same outcome as calling AddStroke for each stroke, without recording
	// a snapshot per stroke.
	for _, st := range strokes {
		d.strokes = append(d.strokes, st.Clone())
		d.bump()
	}
	d.Save()
	return d, nil
}

// AddStroke appends s on top of every existing stroke.
func (d *Document) AddStroke(s Stroke) {
	d.record()
	d.strokes = append(d.strokes, s.Clone())
	d.bump()
}

// EraseStrokeByID removes every stroke carrying id. The edit is recorded
// even when nothing matches.
func (d *Document) EraseStrokeByID(id StrokeID) {
	d.record()
	kept := d.strokes[:0]
	for _, st := range d.strokes {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	// Clear the tail so removed strokes don't stay reachable.
	for i := len(kept); i < len(d.strokes); i++ {
		d.strokes[i] = Stroke{}
	}
	d.strokes = kept
	d.bump()
}

// Clear removes all strokes. Clearing an empty document does nothing.
func (d *Document) Clear() {
	if len(d.strokes) == 0 {
		return
	}
	d.record()
	d.strokes = make([]Stroke, 0)
	d.bump()
}

// ScaleTo rescales every point so the drawing fills a document of newSize.
// Stroke widths are not scaled.
func (d *Document) ScaleTo(newSize int) error {
	if newSize <= 0 {
		return fmt.Errorf("scale document: %w (got %d)", ErrInvalidSize, newSize)
	}
	if newSize == d.size {
		return nil
	}
	factor := float64(newSize) / float64(d.size)
	d.record()
	for i, st := range d.strokes {
		d.strokes[i] = st.Scaled(factor)
	}
	d.size = newSize
	d.bump()
	return nil
}

// Undo restores the state before the most recent edit. It reports false
// when there is nothing to undo.
func (d *Document) Undo() bool {
	snap, ok := d.undo.pop()
	if !ok {
		return false
	}
	d.redo.push(d.current())
	d.restore(snap)
	d.bump()
	return true
}

// Redo reapplies the most recently undone edit. It reports false when there
// is nothing to redo.
func (d *Document) Redo() bool {
	snap, ok := d.redo.pop()
	if !ok {
		return false
	}
	d.undo.push(d.current())
	d.restore(snap)
	d.bump()
	return true
}

// Save marks the current version as saved.
func (d *Document) Save() {
	d.lastSavedVersion = d.version
}

// IsChanged reports whether the document was edited since the last Save.
func (d *Document) IsChanged() bool {
	return d.version != d.lastSavedVersion
}

// Size returns the document's logical size on both axes.
func (d *Document) Size() int { return d.size }

// Version returns the edit counter. It only ever increases.
func (d *Document) Version() int { return d.version }

// Len returns the number of strokes.
func (d *Document) Len() int { return len(d.strokes) }

// CanUndo reports whether Undo would succeed.
func (d *Document) CanUndo() bool { return d.undo.len() > 0 }

// CanRedo reports whether Redo would succeed.
func (d *Document) CanRedo() bool { return d.redo.len() > 0 }

// HistoryDepth returns the sizes of the undo and redo stacks.
func (d *Document) HistoryDepth() (undo, redo int) {
	return d.undo.len(), d.redo.len()
}

// Strokes returns a deep copy of the strokes in paint order.
func (d *Document) Strokes() []Stroke {
	return cloneStrokes(d.strokes)
}

// Bounds returns the area covered by all strokes, or false when the
// document has no points.
func (d *Document) Bounds() (Rect, bool) {
	return BoundsOf(d.strokes)
}

// Snapshot returns an independent copy of the document's size and strokes.
func (d *Document) Snapshot() Snapshot {
	return d.current()
}

// CloneDeep returns an independent document with the same size and strokes.
// The clone has no history and its own version counter, so it reads as
// changed until saved.
func (d *Document) CloneDeep() *Document {
	c := &Document{
		size:             d.size,
		strokes:          cloneStrokes(d.strokes),
		lastSavedVersion: -1,
	}
	c.undo.limit = d.undo.limit
	c.redo.limit = d.redo.limit
	return c
}

func (d *Document) current() Snapshot {
	return takeSnapshot(d.size, d.strokes)
}

func (d *Document) restore(s Snapshot) {
	d.size = s.size
	d.strokes = cloneStrokes(s.strokes)
}

// record pushes the pre-edit state and invalidates the redo branch.
func (d *Document) record() {
	d.undo.push(d.current())
	d.redo.clear()
}

func (d *Document) bump() {
	d.version++
}
