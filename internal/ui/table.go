package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table is a simple column-aligned table.
type Table struct {
	Headers []string
	Rows    [][]string
	// MaxWidth truncates each cell to this many columns; 0 means no limit.
	MaxWidth int
	// Styled enables bold headers. Leave it off when writing to a pipe.
	Styled bool
}

// Render formats the table. Header cells are title-cased; widths are
// measured in terminal columns.
func (t Table) Render() string {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return ""
	}
	caser := cases.Title(language.English)
	headers := make([]string, cols)
	for i, h := range t.Headers {
		headers[i] = caser.String(strings.ReplaceAll(h, "_", " "))
	}
	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		if t.MaxWidth > 0 {
			return Truncate(row[i], t.MaxWidth)
		}
		return row[i]
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := range widths {
			widths[i] = max(widths[i], runewidth.StringWidth(cell(row, i)))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		var line strings.Builder
		for i, c := range cells {
			if i > 0 {
				line.WriteString("  ")
			}
			if i == len(cells)-1 {
				line.WriteString(c)
			} else {
				line.WriteString(runewidth.FillRight(c, widths[i]))
			}
		}
		text := strings.TrimRight(line.String(), " ")
		if style != nil {
			text = style.Render(text)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	if len(t.Headers) > 0 {
		var style *lipgloss.Style
		if t.Styled {
			s := lipgloss.NewStyle().Bold(true)
			style = &s
		}
		writeRow(headers, style)
	}
	for _, row := range t.Rows {
		cells := make([]string, cols)
		for i := range cells {
			cells[i] = cell(row, i)
		}
		writeRow(cells, nil)
	}
	return b.String()
}

// Truncate shortens value to width terminal columns with an ellipsis.
func Truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
