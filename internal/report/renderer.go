package report

import (
	"bytes"
	"io"

	"github.com/go-pdf/fpdf"
)

// Fixed A4 geometry, in points. Matches the classic back-office report
// layout: 40pt margins, 515pt table band, 20pt rows.
const (
	pageHeight  = 841.89
	marginX     = 40.0
	marginY     = 40.0
	tableX      = marginX
	tableWidth  = 515.0
	rowHeight   = 20.0
	summaryY    = 90.0
	summaryH    = 50.0
	tableTitleY = 160.0
)

type rgb struct{ r, g, b int }

var (
	colorPrimary = rgb{44, 62, 80}    // #2c3e50
	colorSuccess = rgb{39, 174, 96}   // #27ae60
	colorDanger  = rgb{231, 76, 60}   // #e74c3c
	colorLight   = rgb{245, 245, 245} // #f5f5f5
	colorWhite   = rgb{255, 255, 255}
)

func (t Tone) color() rgb {
	switch t {
	case ToneSuccess:
		return colorSuccess
	case ToneDanger:
		return colorDanger
	default:
		return colorPrimary
	}
}

// Renderer draws paginated fixed-geometry report documents. It is safe for
// concurrent use; each Render builds a fresh PDF instance.
type Renderer struct {
	logo []byte // optional PNG header logo
}

// NewRenderer creates a renderer. logo may be nil, in which case the header
// band carries the title only.
func NewRenderer(logo []byte) *Renderer {
	return &Renderer{logo: logo}
}

// Render lays the document out and streams the PDF to w. The whole document
// is laid out before the first byte is written, so a layout error never
// produces partial output.
func (r *Renderer) Render(w io.Writer, doc *Document) error {
	pdf := r.build(doc)
	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(w)
}

func (r *Renderer) build(doc *Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	r.drawHeader(pdf, tr, doc)
	r.drawSummary(pdf, tr, doc)

	// Table title
	pdf.SetFont("Helvetica", "B", 14)
	setText(pdf, colorPrimary)
	cell(pdf, tr, tableX, tableTitleY, tableWidth, 16, doc.Title, AlignLeft)

	y := tableTitleY + 30

	if len(doc.Rows) == 0 {
		pdf.SetFont("Helvetica", "", 12)
		setText(pdf, colorPrimary)
		empty := doc.EmptyText
		if empty == "" {
			empty = "No records found."
		}
		cell(pdf, tr, marginX+10, y+rowHeight, tableWidth, 14, empty, AlignLeft)
		return pdf
	}

	y = r.drawTableHead(pdf, tr, doc, y)

	for i, row := range doc.Rows {
		// Explicit pagination: start a new page and redraw the column
		// header before a row would cross the bottom margin.
		if y+rowHeight > pageHeight-marginY {
			pdf.AddPage()
			y = r.drawTableHead(pdf, tr, doc, marginY)
		}

		fill := colorWhite
		if i%2 == 1 {
			fill = colorLight
		}
		setFill(pdf, fill)
		pdf.Rect(tableX, y, tableWidth, rowHeight, "F")

		pdf.SetFont("Helvetica", "", 9)
		for j, c := range row {
			if j >= len(doc.Columns) {
				break
			}
			col := doc.Columns[j]
			setText(pdf, c.Tone.color())
			cell(pdf, tr, col.X, y+5, col.Width, 11, c.Text, col.Align)
		}

		y += rowHeight
	}

	return pdf
}

func (r *Renderer) drawHeader(pdf *fpdf.Fpdf, tr func(string) string, doc *Document) {
	titleX := marginX
	if r.logo != nil {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(r.logo))
		pdf.ImageOptions("logo", marginX, 30, 80, 0, false, opts, 0, "")
		titleX = 130
	}
	pdf.SetFont("Helvetica", "B", 18)
	setText(pdf, colorPrimary)
	cell(pdf, tr, titleX, 45, tableWidth-titleX+marginX, 22, doc.Title, AlignLeft)
}

func (r *Renderer) drawSummary(pdf *fpdf.Fpdf, tr func(string) string, doc *Document) {
	setFill(pdf, colorLight)
	setDraw(pdf, colorPrimary)
	pdf.Rect(tableX, summaryY, tableWidth, summaryH, "FD")

	pdf.SetFont("Helvetica", "B", 12)
	setText(pdf, colorPrimary)
	cell(pdf, tr, marginX+10, summaryY+10, 200, 14, "SUMMARY", AlignLeft)

	for i, field := range doc.Summary {
		x := marginX + 10 + float64(i)*150
		pdf.SetFont("Helvetica", "", 10)
		setText(pdf, colorPrimary)
		cell(pdf, tr, x, summaryY+28, 140, 12, field.Label, AlignLeft)
		pdf.SetFont("Helvetica", "B", 12)
		setText(pdf, field.Tone.color())
		cell(pdf, tr, x, summaryY+42, 140, 14, field.Value, AlignLeft)
	}
}

// drawTableHead paints the colored column header band at y and returns the
// y coordinate of the first row beneath it.
func (r *Renderer) drawTableHead(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, y float64) float64 {
	setFill(pdf, colorPrimary)
	pdf.Rect(tableX, y, tableWidth, rowHeight, "F")

	pdf.SetFont("Helvetica", "B", 10)
	setText(pdf, colorWhite)
	for _, col := range doc.Columns {
		cell(pdf, tr, col.X, y+5, col.Width, 12, col.Label, col.Align)
	}

	return y + rowHeight
}

func cell(pdf *fpdf.Fpdf, tr func(string) string, x, y, w, h float64, text string, align Align) {
	pdf.SetXY(x, y)
	pdf.CellFormat(w, h, tr(text), "", 0, string(align), false, 0, "")
}

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setDraw(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
