// Package report renders the monthly workout history as a paginated PDF table.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"alcyxob/fitness-portal/internal/calendar"
	"alcyxob/fitness-portal/internal/domain"

	"github.com/go-pdf/fpdf"
)

const ContentType = "application/pdf"

// Page geometry in millimetres (A4 portrait).
const (
	pageHeight   = 297.0
	margin       = 15.0
	footerHeight = 10.0
	bottomLimit  = pageHeight - margin - footerHeight

	colDay      = 32.0
	colTitle    = 88.0
	colDuration = 25.0
	colCategory = 35.0
	tableWidth  = colDay + colTitle + colDuration + colCategory

	headerHeight = 8.0
	lineHeight   = 6.0

	bodyFont   = "Helvetica"
	bodySize   = 10.0
	headerSize = 10.0
	titleSize  = 16.0
)

// NoCompletionsNotice is printed instead of a table for a month without completions.
const NoCompletionsNotice = "No completed workouts"

// Row is one completion of one workout.
type Row struct {
	Day      time.Time
	Title    string
	Duration int // minutes
	Category string
}

// MonthlyHistory is everything printed on a monthly report. Rows must be sorted by day.
type MonthlyHistory struct {
	Year        int
	Month       time.Month
	Owner       string
	GeneratedAt time.Time
	Rows        []Row
}

// RowsFromEntries keeps the order of entries.
func RowsFromEntries(entries []calendar.Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Day:      e.Day,
			Title:    e.Workout.Title,
			Duration: e.Workout.TotalDuration,
			Category: e.Workout.Category,
		})
	}
	return rows
}

// Renderer turns a MonthlyHistory into PDF bytes.
type Renderer struct {
	// Compress deflates page streams. Tests switch it off to search the output for text.
	Compress bool
}

func NewRenderer() *Renderer {
	return &Renderer{Compress: true}
}

// Render writes the PDF document for h to w.
func (r *Renderer) Render(w io.Writer, h MonthlyHistory) error {
	pdf, err := r.build(h)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// RenderBytes is Render into memory.
func (r *Renderer) RenderBytes(h MonthlyHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) build(h MonthlyHistory) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.Compress)
	pdf.SetMargins(margin, margin, margin)
	// Page breaks are decided by paginate, never by fpdf.
	pdf.SetAutoPageBreak(false, margin)
	pdf.AliasNbPages("")
	pdf.SetCreator("fitness-portal", true)
	pdf.SetTitle(reportTitle(h), true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-margin)
		pdf.SetFont(bodyFont, "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	y := drawTitleBlock(pdf, tr, h)

	if len(h.Rows) == 0 {
		pdf.SetXY(margin, y+4)
		pdf.SetFont(bodyFont, "I", 12)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(tableWidth, 10, tr(fmt.Sprintf("%s in %s.", NoCompletionsNotice, monthLabel(h))), "", 1, "L", false, 0, "")
		return pdf, pdf.Error()
	}

	pdf.SetFont(bodyFont, "", bodySize)
	titles := make([]string, len(h.Rows))
	categories := make([]string, len(h.Rows))
	heights := make([]float64, len(h.Rows))
	for i, row := range h.Rows {
		titles[i] = tr(row.Title)
		categories[i] = tr(categoryLabel(row.Category))
		heights[i] = rowHeight(pdf, titles[i], categories[i])
	}

	for p, page := range paginate(heights, y, margin, bottomLimit, headerHeight) {
		if p > 0 {
			pdf.AddPage()
			y = margin
		}
		y = drawHeader(pdf, y)
		for _, i := range page {
			drawRow(pdf, y, heights[i], h.Rows[i], titles[i], categories[i], i%2 == 1)
			y += heights[i]
		}
	}
	return pdf, pdf.Error()
}

// paginate assigns rows to pages. Every page starts with a header of headerHeight; the
// first page starts at firstTop, later pages at top. A row that does not fit below the
// previous one moves to a new page; a row taller than a whole page gets a page of its own.
func paginate(heights []float64, firstTop, top, bottom, headerHeight float64) [][]int {
	if len(heights) == 0 {
		return nil
	}

	pages := [][]int{{}}
	y := firstTop + headerHeight
	for i, h := range heights {
		current := len(pages) - 1
		if y+h > bottom && len(pages[current]) > 0 {
			pages = append(pages, []int{})
			current++
			y = top + headerHeight
		}
		pages[current] = append(pages[current], i)
		y += h
	}
	return pages
}

// rowHeight fits the taller of the wrapped title and category columns.
func rowHeight(pdf *fpdf.Fpdf, title, category string) float64 {
	lines := max(1,
		len(pdf.SplitLines([]byte(title), colTitle)),
		len(pdf.SplitLines([]byte(category), colCategory)),
	)
	return float64(lines) * lineHeight
}

func categoryLabel(category string) string {
	if category == "" {
		return "-"
	}
	return category
}

func drawTitleBlock(pdf *fpdf.Fpdf, tr func(string) string, h MonthlyHistory) float64 {
	pdf.SetXY(margin, margin)
	pdf.SetFont(bodyFont, "B", titleSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(tableWidth, 10, tr(reportTitle(h)), "", 1, "L", false, 0, "")

	pdf.SetFont(bodyFont, "", 9)
	pdf.SetTextColor(90, 90, 90)
	subtitle := "Generated " + h.GeneratedAt.UTC().Format("2006-01-02 15:04") + " UTC"
	if h.Owner != "" {
		subtitle = h.Owner + " | " + subtitle
	}
	pdf.CellFormat(tableWidth, 6, tr(subtitle), "", 1, "L", false, 0, "")

	return pdf.GetY() + 4
}

func drawHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetXY(margin, y)
	pdf.SetFont(bodyFont, "B", headerSize)
	pdf.SetFillColor(200, 210, 225)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(150, 150, 150)
	for _, col := range []struct {
		width float64
		label string
		align string
	}{
		{colDay, "Day", "LM"},
		{colTitle, "Workout", "LM"},
		{colDuration, "Duration", "RM"},
		{colCategory, "Category", "LM"},
	} {
		pdf.CellFormat(col.width, headerHeight, col.label, "1", 0, col.align, true, 0, "")
	}
	pdf.SetFont(bodyFont, "", bodySize)
	return y + headerHeight
}

func drawRow(pdf *fpdf.Fpdf, y, height float64, row Row, title, category string, shaded bool) {
	if shaded {
		pdf.SetFillColor(242, 242, 242)
		pdf.Rect(margin, y, tableWidth, height, "F")
	}
	pdf.SetTextColor(0, 0, 0)

	pdf.SetXY(margin, y)
	pdf.CellFormat(colDay, height, domain.FormatDay(row.Day), "", 0, "LM", false, 0, "")

	pdf.SetXY(margin+colDay, y)
	pdf.MultiCell(colTitle, lineHeight, title, "", "L", false)

	pdf.SetXY(margin+colDay+colTitle, y)
	pdf.CellFormat(colDuration, height, strconv.Itoa(row.Duration)+" min", "", 0, "RM", false, 0, "")

	pdf.SetXY(margin+colDay+colTitle+colDuration, y)
	pdf.MultiCell(colCategory, lineHeight, category, "", "L", false)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(margin, y+height, margin+tableWidth, y+height)
}

func reportTitle(h MonthlyHistory) string {
	return "Workout history - " + monthLabel(h)
}

func monthLabel(h MonthlyHistory) string {
	return fmt.Sprintf("%s %d", h.Month, h.Year)
}
