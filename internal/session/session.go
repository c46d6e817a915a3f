package session

import (
	"sync"

	"DrawingBoard/internal/logging"
	"DrawingBoard/internal/state"

	"go.uber.org/zap"
)

// Session is the single editor of one document. It serializes every call
// on a mutex so UI handlers and background tasks can share it; the
// document itself does no locking.
type Session struct {
	mu     sync.Mutex
	doc    *state.Document
	logger *zap.Logger

	// OnChange is called after every edit with the new version. It runs
	// outside the lock, so it may call back into the session.
	OnChange func(version int)
}

// New wraps doc. The session takes ownership: callers must not touch doc
// directly afterwards.
func New(doc *state.Document, logger *zap.Logger) *Session {
	return &Session{
		doc:    doc,
		logger: logging.OrNop(logger),
	}
}

// Draw builds a stroke with a fresh id from points and adds it.
func (s *Session) Draw(points []state.Point, width float64, argb uint32) state.Stroke {
	st := state.NewStroke(points, width, argb)
	s.AddStroke(st)
	return st
}

// AddStroke appends st on top of the drawing.
func (s *Session) AddStroke(st state.Stroke) {
	s.apply("add stroke", func(d *state.Document) bool {
		d.AddStroke(st)
		return true
	}, zap.Stringer("stroke", st.ID), zap.Int("points", len(st.Points)))
}

// EraseStroke removes every stroke with the given id.
func (s *Session) EraseStroke(id state.StrokeID) {
	s.apply("erase stroke", func(d *state.Document) bool {
		d.EraseStrokeByID(id)
		return true
	}, zap.Stringer("stroke", id))
}

// Clear empties the drawing. It reports false when it was already empty.
func (s *Session) Clear() bool {
	return s.apply("clear", func(d *state.Document) bool {
		before := d.Version()
		d.Clear()
		return d.Version() != before
	})
}

// ScaleTo rescales the drawing to newSize.
func (s *Session) ScaleTo(newSize int) error {
	var err error
	s.apply("scale", func(d *state.Document) bool {
		before := d.Version()
		err = d.ScaleTo(newSize)
		return err == nil && d.Version() != before
	}, zap.Int("new_size", newSize))
	if err != nil {
		s.logger.Warn("scale rejected", zap.Int("new_size", newSize), zap.Error(err))
	}
	return err
}

// Undo reverts the last edit. It reports false when there was nothing to undo.
func (s *Session) Undo() bool {
	return s.apply("undo", (*state.Document).Undo)
}

// Redo reapplies the last undone edit. It reports false when there was
// nothing to redo.
func (s *Session) Redo() bool {
	return s.apply("redo", (*state.Document).Redo)
}

// Save marks the drawing as saved and returns the saved version.
func (s *Session) Save() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Save()
	s.logger.Debug("saved", zap.Int("version", s.doc.Version()))
	return s.doc.Version()
}

// IsChanged reports whether the drawing was edited since the last Save.
func (s *Session) IsChanged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.IsChanged()
}

// Strokes returns a copy of the strokes in paint order.
func (s *Session) Strokes() []state.Stroke {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Strokes()
}

// Snapshot returns an independent copy of the drawing's content.
func (s *Session) Snapshot() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Snapshot()
}

// Size returns the drawing's logical size.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Size()
}

// Version returns the drawing's edit counter.
func (s *Session) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Version()
}

// Detach returns a deep clone that is safe to hand to another goroutine,
// e.g. for export or storage.
func (s *Session) Detach() *state.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.CloneDeep()
}

// apply runs fn under the lock and notifies OnChange when fn reports an edit.
func (s *Session) apply(action string, fn func(d *state.Document) bool, fields ...zap.Field) bool {
	s.mu.Lock()
	changed := fn(s.doc)
	version := s.doc.Version()
	count := s.doc.Len()
	size := s.doc.Size()
	onChange := s.OnChange
	s.mu.Unlock()

	if !changed {
		s.logger.Debug(action+" skipped", fields...)
		return false
	}
	s.logger.Debug(action, append(fields, zap.Int("version", version), zap.Int("strokes", count), zap.Int("size", size))...)
	if onChange != nil {
		onChange(version)
	}
	return true
}
