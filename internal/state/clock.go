package state

import (
	"github.com/google/uuid"
)

// StrokeID identifies a stroke. Ids are UUIDv7 values, so they sort by
// creation time and stay unique even when two strokes are made in the same tick.
type StrokeID = uuid.UUID

// NewStrokeID returns a fresh, time-ordered stroke id.
func NewStrokeID() StrokeID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.New()
	}
	return id
}

// ParseStrokeID parses the canonical textual form of a stroke id.
func ParseStrokeID(s string) (StrokeID, error) {
	return uuid.Parse(s)
}
