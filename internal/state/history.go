package state

// Snapshot is an independent deep copy of a document's size and strokes at
// one instant. It never aliases the live document.
type Snapshot struct {
	size    int
	strokes []Stroke
}

func takeSnapshot(size int, strokes []Stroke) Snapshot {
	return Snapshot{size: size, strokes: cloneStrokes(strokes)}
}

// Size is the document size captured by the snapshot.
func (s Snapshot) Size() int { return s.size }

// Len is the number of strokes captured by the snapshot.
func (s Snapshot) Len() int { return len(s.strokes) }

// Equal reports whether both snapshots have the same size and the same
// strokes, element by element.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.size != o.size || len(s.strokes) != len(o.strokes) {
		return false
	}
	for i := range s.strokes {
		if !s.strokes[i].Equal(o.strokes[i]) {
			return false
		}
	}
	return true
}

// history is a last-in-first-out stack of snapshots. A positive limit drops
// the oldest entry once the stack would grow past it.
type history struct {
	items []Snapshot
	limit int
}

func (h *history) push(s Snapshot) {
	h.items = append(h.items, s)
	if h.limit > 0 && len(h.items) > h.limit {
		drop := len(h.items) - h.limit
		// Zero the dropped entries so their strokes can be collected.
		for i := 0; i < drop; i++ {
			h.items[i] = Snapshot{}
		}
		h.items = append(h.items[:0], h.items[drop:]...)
	}
}

func (h *history) pop() (Snapshot, bool) {
	n := len(h.items)
	if n == 0 {
		return Snapshot{}, false
	}
	s := h.items[n-1]
	h.items[n-1] = Snapshot{}
	h.items = h.items[:n-1]
	return s, true
}

func (h *history) clear() {
	h.items = nil
}

func (h *history) len() int { return len(h.items) }
