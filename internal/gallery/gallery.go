package gallery

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"DrawingBoard/internal/logging"
	"DrawingBoard/internal/state"

	"go.uber.org/zap"
)

// ErrNotFound is returned for ids the gallery does not hold.
var ErrNotFound = errors.New("drawing not found")

// ID identifies a stored drawing. Ids are assigned in increasing order and
// never reused.
type ID int64

// Entry describes a stored drawing without copying its strokes.
type Entry struct {
	ID        ID
	Size      int
	Strokes   int
	UpdatedAt time.Time
}

type record struct {
	id        ID
	size      int
	strokes   []state.Stroke
	updatedAt time.Time
}

// Gallery keeps saved drawings by stroke list. It is an explicit handle:
// create one and pass it to whoever needs storage.
//
// Stored drawings never share memory with the documents passed in or handed
// out, so callers can keep editing after Insert or Update.
type Gallery struct {
	mu      sync.RWMutex
	records []*record
	nextID  ID
	logger  *zap.Logger
	now     func() time.Time
}

// New returns an empty gallery.
func New(logger *zap.Logger) *Gallery {
	return &Gallery{
		logger: logging.OrNop(logger),
		now:    time.Now,
	}
}

// Insert stores a copy of doc and returns its id.
func (g *Gallery) Insert(doc *state.Document) ID {
	size, strokes := doc.Size(), doc.Strokes()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	rec := &record{
		id:        g.nextID,
		size:      size,
		strokes:   strokes,
		updatedAt: g.now(),
	}
	g.records = append(g.records, rec)
	g.logger.Info("drawing inserted", zap.Int64("id", int64(rec.id)), zap.Int("strokes", len(rec.strokes)))
	return rec.id
}

// Update replaces the stored copy of drawing id with doc.
func (g *Gallery) Update(id ID, doc *state.Document) error {
	size, strokes := doc.Size(), doc.Strokes()

	g.mu.Lock()
	defer g.mu.Unlock()
	rec := g.find(id)
	if rec == nil {
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	rec.size = size
	rec.strokes = strokes
	rec.updatedAt = g.now()
	g.logger.Info("drawing updated", zap.Int64("id", int64(id)), zap.Int("strokes", len(rec.strokes)))
	return nil
}

// Get reloads drawing id as a fresh document. The document has no history
// and is marked saved.
func (g *Gallery) Get(id ID, opts ...state.Option) (*state.Document, error) {
	g.mu.RLock()
	rec := g.find(id)
	if rec == nil {
		g.mu.RUnlock()
		return nil, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	size, strokes := rec.size, rec.strokes
	g.mu.RUnlock()

	// Restore copies the strokes, and stored slices are never mutated in place.
	return state.Restore(size, strokes, opts...)
}

// Delete removes drawing id.
func (g *Gallery) Delete(id ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, rec := range g.records {
		if rec.id == id {
			g.records = append(g.records[:i], g.records[i+1:]...)
			g.logger.Info("drawing deleted", zap.Int64("id", int64(id)))
			return nil
		}
	}
	return fmt.Errorf("delete %d: %w", id, ErrNotFound)
}

// DeleteAll removes every drawing. Ids keep increasing afterwards.
func (g *Gallery) DeleteAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger.Info("gallery cleared", zap.Int("count", len(g.records)))
	g.records = nil
}

// List returns the stored drawings in insertion order.
func (g *Gallery) List() []Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Entry, 0, len(g.records))
	for _, rec := range g.records {
		out = append(out, Entry{
			ID:        rec.id,
			Size:      rec.size,
			Strokes:   len(rec.strokes),
			UpdatedAt: rec.updatedAt,
		})
	}
	return out
}

// Len returns the number of stored drawings.
func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.records)
}

func (g *Gallery) find(id ID) *record {
	for _, rec := range g.records {
		if rec.id == id {
			return rec
		}
	}
	return nil
}
