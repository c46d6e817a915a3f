package export

import (
	"fmt"
	"io"

	"DrawingBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// Options controls PDF output.
type Options struct {
	// PageSize is the side of the square page in points. Zero uses the
	// document size, so one document unit maps to one point.
	PageSize float64
	// Background is a packed ARGB fill painted under the strokes. Zero
	// leaves the page blank.
	Background uint32
	Title      string
	// Uncompressed disables stream compression, which keeps the drawing
	// operators readable.
	Uncompressed bool
}

// PDF writes strokes as a single-page vector PDF. Strokes are painted in
// slice order, so later strokes cover earlier ones.
func PDF(w io.Writer, strokes []state.Stroke, size int, opts Options) error {
	if size <= 0 {
		return fmt.Errorf("export pdf: %w (got %d)", state.ErrInvalidSize, size)
	}
	pdf := newPage(size, opts)
	render(pdf, strokes, size, opts)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}

// PDFFile writes doc to path.
func PDFFile(path string, doc *state.Document, opts Options) error {
	pdf := newPage(doc.Size(), opts)
	render(pdf, doc.Strokes(), doc.Size(), opts)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf %s: %w", path, err)
	}
	return nil
}

func newPage(size int, opts Options) *gofpdf.Fpdf {
	side := pageSide(size, opts)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: side, Ht: side},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(!opts.Uncompressed)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	pdf.AddPage()
	return pdf
}

func pageSide(size int, opts Options) float64 {
	if opts.PageSize > 0 {
		return opts.PageSize
	}
	return float64(size)
}

// render draws strokes onto the current page and returns how many were
// painted. Strokes without points are skipped; single points become dots.
func render(pdf *gofpdf.Fpdf, strokes []state.Stroke, size int, opts Options) int {
	side := pageSide(size, opts)
	k := side / float64(size)

	if opts.Background != 0 {
		bg := state.Stroke{ARGB: opts.Background}.Color()
		pdf.SetAlpha(float64(bg.A)/255, "Normal")
		pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		pdf.Rect(0, 0, side, side, "F")
	}

	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	drawn := 0
	for _, st := range strokes {
		if len(st.Points) == 0 {
			continue
		}
		c := st.Color()
		pdf.SetAlpha(float64(c.A)/255, "Normal")
		width := st.Width * k

		if len(st.Points) == 1 {
			p := st.Points[0]
			pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
			pdf.Circle(p.X*k, p.Y*k, width/2, "F")
			drawn++
			continue
		}

		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetLineWidth(width)
		pdf.MoveTo(st.Points[0].X*k, st.Points[0].Y*k)
		for _, p := range st.Points[1:] {
			pdf.LineTo(p.X*k, p.Y*k)
		}
		pdf.DrawPath("D")
		drawn++
	}
	return drawn
}
