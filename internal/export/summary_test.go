package export

import (
	"bytes"
	"errors"
	"testing"

	"DrawingBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorName(t *testing.T) {
	assert.Equal(t, "red", ColorName(Red))
	assert.Equal(t, "black", ColorName(0xFF000000))
	assert.Equal(t, "#8000FF00", ColorName(0x8000FF00))
}

func TestSummary(t *testing.T) {
	doc, err := state.New(100)
	require.NoError(t, err)
	first := state.NewStroke([]state.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, 2, Red)
	doc.AddStroke(first)
	doc.AddStroke(state.NewStroke([]state.Point{{X: 9, Y: 9}}, 1, 0x11223344))

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "Size: 100\n")
	assert.Contains(t, out, "Total strokes: 2\n")
	assert.Contains(t, out, "Bounds: (0.00, 1.00) - (9.50, 9.50)\n")
	assert.Contains(t, out, "Stroke 1:\n  ID: "+first.ID.String()+"\n  Points: 3\n  Width: 2.00\n  Color: red\n  Start: (1.00, 2.00)\n  End: (5.00, 6.00)\n")
	assert.Contains(t, out, "Stroke 2:")
	assert.Contains(t, out, "Color: #11223344\n  Start: (9.00, 9.00)\n\n")
	assert.NotContains(t, out, "End: (9.00")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSummary_WriteError(t *testing.T) {
	doc, err := state.New(10)
	require.NoError(t, err)
	assert.ErrorContains(t, Summary(failWriter{}, doc), "disk full")
}
