package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"alcyxob/fitness-portal/internal/calendar"
	"alcyxob/fitness-portal/internal/domain"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func march(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func history(rows ...Row) MonthlyHistory {
	return MonthlyHistory{
		Year:        2024,
		Month:       time.March,
		Owner:       "Dana Member",
		GeneratedAt: time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC),
		Rows:        rows,
	}
}

func TestPaginate(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		assert.Nil(t, paginate(nil, 30, 10, 100, 5))
	})

	t.Run("everything fits on the first page", func(t *testing.T) {
		pages := paginate([]float64{10, 10, 10}, 30, 10, 100, 5)
		assert.Equal(t, [][]int{{0, 1, 2}}, pages)
	})

	t.Run("header space is reserved on every page", func(t *testing.T) {
		// first page body starts at 35: rows end at 65, 95, then 125 does not fit
		// second page body starts at 15
		pages := paginate([]float64{30, 30, 30, 30, 30}, 30, 10, 100, 5)
		assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4}}, pages)
	})

	t.Run("tall rows decide the break", func(t *testing.T) {
		pages := paginate([]float64{6, 6, 60, 6}, 30, 10, 100, 5)
		assert.Equal(t, [][]int{{0, 1}, {2, 3}}, pages)
	})

	t.Run("oversized row gets its own page", func(t *testing.T) {
		pages := paginate([]float64{6, 200, 6}, 30, 10, 100, 5)
		assert.Equal(t, [][]int{{0}, {1}, {2}}, pages)
	})

	t.Run("later pages start higher than the first", func(t *testing.T) {
		heights := make([]float64, 10)
		for i := range heights {
			heights[i] = 10
		}
		pages := paginate(heights, 50, 10, 100, 5)
		require.Len(t, pages, 2)
		assert.Len(t, pages[0], 4)
		assert.Len(t, pages[1], 6)
	})
}

func TestRowHeight_WrapsLongTitles(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont(bodyFont, "", bodySize)

	assert.Equal(t, lineHeight, rowHeight(pdf, "Leg day", "strength"))
	assert.Equal(t, lineHeight, rowHeight(pdf, "", ""))

	long := strings.Repeat("Interval hill sprints with recovery jog ", 6)
	assert.Greater(t, rowHeight(pdf, long, "cardio"), 2*lineHeight)
}

func TestRowHeight_WrapsLongCategories(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont(bodyFont, "", bodySize)

	category := "mobility and flexibility conditioning"
	lines := len(pdf.SplitLines([]byte(category), colCategory))
	require.Greater(t, lines, 1)

	assert.Equal(t, float64(lines)*lineHeight, rowHeight(pdf, "Stretch", category))
	assert.Equal(t, rowHeight(pdf, "Stretch", category), rowHeight(pdf, category, category))
}

func TestRenderer_LongCategoryStaysInRow(t *testing.T) {
	r := &Renderer{Compress: false}

	out, err := r.RenderBytes(history(
		Row{Day: march(5), Title: "Stretch", Duration: 20, Category: "mobility and flexibility conditioning"},
		Row{Day: march(6), Title: "Morning run", Duration: 30},
	))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "(mobility and flexibility conditioning) Tj")
	assert.Contains(t, string(out), "(conditioning) Tj")
	assert.Contains(t, string(out), "(-) Tj")
}

func TestRenderer_EmptyMonth(t *testing.T) {
	r := &Renderer{Compress: false}

	pdf, err := r.build(history())
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.PageCount())

	out, err := r.RenderBytes(history())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), NoCompletionsNotice+" in March 2024.")
	assert.Contains(t, string(out), "Workout history - March 2024")
	assert.NotContains(t, string(out), "(Duration) Tj")
}

func TestRenderer_HeaderRepeatedOnEveryPage(t *testing.T) {
	rows := make([]Row, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, Row{Day: march(1 + i%31), Title: "Morning run", Duration: 30, Category: "cardio"})
	}
	r := &Renderer{Compress: false}

	pdf, err := r.build(history(rows...))
	require.NoError(t, err)
	require.Equal(t, 2, pdf.PageCount())

	out, err := r.RenderBytes(history(rows...))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(out), "(Duration) Tj"))
	assert.Contains(t, string(out), "(2024-03-01) Tj")
	assert.Contains(t, string(out), "(30 min) Tj")
	assert.NotContains(t, string(out), NoCompletionsNotice)
}

func TestRenderer_CompressedOutputAndUnicodeTitles(t *testing.T) {
	r := NewRenderer()

	var buf bytes.Buffer
	err := r.Render(&buf, history(
		Row{Day: march(5), Title: "Café circuit über alles", Duration: 35, Category: "strength"},
		Row{Day: march(6), Title: "Stretch", Duration: 10},
	))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.NotContains(t, buf.String(), "(Stretch) Tj")
}

func TestRowsFromEntries(t *testing.T) {
	entries := []calendar.Entry{
		{Day: march(2), Workout: domain.Workout{Title: "A", TotalDuration: 35, Category: "cardio"}},
		{Day: march(9), Workout: domain.Workout{Title: "B", TotalDuration: 20}},
	}

	rows := RowsFromEntries(entries)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Day: march(2), Title: "A", Duration: 35, Category: "cardio"}, rows[0])
	assert.Equal(t, "B", rows[1].Title)
	assert.Empty(t, RowsFromEntries(nil))
}
