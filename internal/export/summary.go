package export

import (
	"bufio"
	"fmt"
	"io"

	"DrawingBoard/internal/state"
)

// Summary writes a plain-text description of doc: one block per stroke in
// paint order.
func Summary(w io.Writer, doc *state.Document) error {
	bw := bufio.NewWriter(w)

	strokes := doc.Strokes()
	fmt.Fprintf(bw, "DrawingBoard Export\n")
	fmt.Fprintf(bw, "===================\n\n")
	fmt.Fprintf(bw, "Size: %d\n", doc.Size())
	fmt.Fprintf(bw, "Total strokes: %d\n", len(strokes))
	if r, ok := state.BoundsOf(strokes); ok {
		fmt.Fprintf(bw, "Bounds: (%.2f, %.2f) - (%.2f, %.2f)\n", r.MinX, r.MinY, r.MaxX, r.MaxY)
	}
	fmt.Fprintf(bw, "\n")

	for i, st := range strokes {
		fmt.Fprintf(bw, "Stroke %d:\n", i+1)
		fmt.Fprintf(bw, "  ID: %s\n", st.ID)
		fmt.Fprintf(bw, "  Points: %d\n", len(st.Points))
		fmt.Fprintf(bw, "  Width: %.2f\n", st.Width)
		fmt.Fprintf(bw, "  Color: %s\n", ColorName(st.ARGB))
		if len(st.Points) > 0 {
			fmt.Fprintf(bw, "  Start: (%.2f, %.2f)\n", st.Points[0].X, st.Points[0].Y)
			if len(st.Points) > 1 {
				last := st.Points[len(st.Points)-1]
				fmt.Fprintf(bw, "  End: (%.2f, %.2f)\n", last.X, last.Y)
			}
		}
		fmt.Fprintf(bw, "\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export summary: %w", err)
	}
	return nil
}
