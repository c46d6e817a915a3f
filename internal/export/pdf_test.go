package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"DrawingBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStrokes() []state.Stroke {
	return []state.Stroke{
		state.NewStroke([]state.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 5}}, 5, 0xFF000000),
		state.NewStroke(nil, 3, 0xFFFF0000),
		state.NewStroke([]state.Point{{X: 50, Y: 50}}, 4, 0x8000FF00),
		state.NewStroke([]state.Point{{X: 60, Y: 60}, {X: 70, Y: 70}}, 2, 0xFF0000FF),
	}
}

func TestRender_SkipsEmptyStrokes(t *testing.T) {
	pdf := newPage(100, Options{})
	drawn := render(pdf, sampleStrokes(), 100, Options{})
	assert.Equal(t, 3, drawn)
	assert.NoError(t, pdf.Error())
}

func TestPDF_WritesDocument(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, sampleStrokes(), 100, Options{Title: "sketch", Uncompressed: true, Background: 0xFFFFFFFF})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "%PDF"), "missing PDF header")
	// Two polylines: three segments plus one.
	assert.Equal(t, 3, strings.Count(out, " l\n"), "expected one line-to per segment")
}

func TestPDF_ScalesToPageSize(t *testing.T) {
	strokes := []state.Stroke{
		state.NewStroke([]state.Point{{X: 10, Y: 10}, {X: 50, Y: 50}}, 2, 0xFF000000),
	}
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, strokes, 100, Options{PageSize: 200, Uncompressed: true}))

	out := buf.String()
	assert.Contains(t, out, "4.00 w", "width follows the page transform")
	assert.Contains(t, out, "/MediaBox [0 0 200.00 200.00]")
}

func TestPDF_RejectsInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, nil, 0, Options{})
	assert.ErrorIs(t, err, state.ErrInvalidSize)
	assert.Zero(t, buf.Len())
}

func TestPDFFile(t *testing.T) {
	doc, err := state.New(256)
	require.NoError(t, err)
	for _, st := range sampleStrokes() {
		doc.AddStroke(st)
	}

	path := filepath.Join(t.TempDir(), "drawing.pdf")
	require.NoError(t, PDFFile(path, doc, Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
