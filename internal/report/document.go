package report

import (
	"fmt"
	"time"
)

// Align positions cell text inside its column box.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Tone selects the ink used for a value: neutral dark blue, success green
// or danger red.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneDanger
)

// Column declares one table column. X and Width are absolute page
// coordinates in points; the renderer never auto-computes widths.
type Column struct {
	Label string
	X     float64
	Width float64
	Align Align
}

// Cell is one pre-formatted table value. Formatting (dates, currency) is
// the caller's responsibility.
type Cell struct {
	Text string
	Tone Tone
}

// Row is one table line.
type Row []Cell

// SummaryField is one key/value pair in the summary box.
type SummaryField struct {
	Label string
	Value string
	Tone  Tone
}

// Document is a complete report ready to render: a title, 2-4 summary
// fields, a declared column layout and pre-formatted rows.
type Document struct {
	Title     string
	FileStem  string
	Summary   []SummaryField
	Columns   []Column
	Rows      []Row
	EmptyText string
}

// Filename derives the date-stamped download name for the document.
func (d *Document) Filename(now time.Time) string {
	return fmt.Sprintf("%s-%s.pdf", d.FileStem, now.Format("2006-01-02"))
}
