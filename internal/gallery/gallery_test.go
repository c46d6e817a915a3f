package gallery

import (
	"testing"
	"time"

	"DrawingBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func drawing(t *testing.T, size, strokes int) *state.Document {
	t.Helper()
	d, err := state.New(size)
	require.NoError(t, err)
	for i := 0; i < strokes; i++ {
		x := float64(i)
		d.AddStroke(state.NewStroke([]state.Point{{X: x, Y: x}, {X: x + 1, Y: x + 1}}, 2, 0xFF000000))
	}
	return d
}

func TestInsertAndList(t *testing.T) {
	g := New(zap.NewNop())
	for i := 0; i < 5; i++ {
		g.Insert(drawing(t, 100, i))
	}

	entries := g.List()
	require.Len(t, entries, 5)
	assert.Equal(t, 5, g.Len())
	for i, e := range entries {
		assert.Equal(t, ID(i+1), e.ID)
		assert.Equal(t, i, e.Strokes)
		assert.Equal(t, 100, e.Size)
	}
}

func TestInsert_StoresIndependentCopy(t *testing.T) {
	g := New(nil)
	d := drawing(t, 100, 1)
	id := g.Insert(d)

	d.AddStroke(state.NewStroke(nil, 1, 0))
	require.NoError(t, d.ScaleTo(50))

	got, err := g.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.Equal(t, 100, got.Size())
}

func TestGet_ReturnsUnchangedDocumentWithoutHistory(t *testing.T) {
	g := New(nil)
	d := drawing(t, 100, 3)
	id := g.Insert(d)

	got, err := g.Get(id, state.WithHistoryLimit(4))
	require.NoError(t, err)
	assert.False(t, got.IsChanged())
	assert.False(t, got.CanUndo())
	assert.True(t, got.Snapshot().Equal(d.Snapshot()))

	got.Clear()
	again, err := g.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Len(), "edits to a loaded copy do not reach storage")
}

func TestUpdate(t *testing.T) {
	g := New(nil)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := base
	g.now = func() time.Time { tick = tick.Add(time.Minute); return tick }

	id := g.Insert(drawing(t, 100, 1))
	require.NoError(t, g.Update(id, drawing(t, 200, 4)))

	entries := g.List()
	require.Len(t, entries, 1)
	assert.Equal(t, 200, entries[0].Size)
	assert.Equal(t, 4, entries[0].Strokes)
	assert.Equal(t, base.Add(2*time.Minute), entries[0].UpdatedAt)

	err := g.Update(ID(99), drawing(t, 100, 0))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	g := New(nil)
	a := g.Insert(drawing(t, 100, 1))
	b := g.Insert(drawing(t, 100, 2))
	c := g.Insert(drawing(t, 100, 3))

	require.NoError(t, g.Delete(b))
	assert.Equal(t, 2, g.Len())

	entries := g.List()
	assert.Equal(t, []ID{a, c}, []ID{entries[0].ID, entries[1].ID})

	_, err := g.Get(b)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, g.Delete(b), ErrNotFound)
}

func TestDeleteAll_KeepsIDsIncreasing(t *testing.T) {
	g := New(nil)
	g.Insert(drawing(t, 100, 1))
	last := g.Insert(drawing(t, 100, 1))

	g.DeleteAll()
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.List())

	next := g.Insert(drawing(t, 100, 1))
	assert.Greater(t, next, last)
}
