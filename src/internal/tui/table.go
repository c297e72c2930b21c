package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowStyle marks how a table row is highlighted
type RowStyle int

const (
	RowNormal RowStyle = iota
	RowCurrent
	RowMuted
)

// Table is a framed table with a header row
type Table struct {
	title   string
	headers []string
	rows    []tableRow
	widths  []int
	footer  string
}

type tableRow struct {
	cells []string
	style RowStyle
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{headers: headers, widths: widths}
}

// SetTitle sets a title shown above the header row
func (t *Table) SetTitle(title string) {
	t.title = title
}

// SetFooter sets a muted line shown below the rows
func (t *Table) SetFooter(footer string) {
	t.footer = footer
}

// AddRow adds a row. Missing cells are blank; extra cells are dropped.
func (t *Table) AddRow(style RowStyle, cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i >= len(cells) {
			break
		}
		row[i] = cells[i]
		// lipgloss.Width ignores ANSI codes
		if w := lipgloss.Width(cells[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, tableRow{cells: row, style: style})
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Render returns the framed table
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}
	initStyles()

	totalWidth := 0
	for _, w := range t.widths {
		totalWidth += w + 2
	}

	var lines []string
	if t.title != "" {
		lines = append(lines, styleTitle.Render(t.title))
	}

	var header strings.Builder
	for i, h := range t.headers {
		header.WriteString(styleHeader.Width(t.widths[i] + 2).Render(h))
	}
	lines = append(lines, header.String(), styleMuted.Render(strings.Repeat("─", totalWidth)))

	for _, row := range t.rows {
		var line strings.Builder
		for i, cell := range row.cells {
			style := styleCell.Width(t.widths[i] + 2)
			switch row.style {
			case RowCurrent:
				style = style.Foreground(colorNode).Bold(true)
			case RowMuted:
				style = style.Foreground(colorMuted)
			}
			line.WriteString(style.Render(cell))
		}
		lines = append(lines, line.String())
	}

	if t.footer != "" {
		lines = append(lines, styleMuted.Render(t.footer))
	}

	return styleFrame.Render(strings.Join(lines, "\n"))
}

// Pair is one labelled value in a key/value listing
type Pair struct {
	Key   string
	Value string
	Note  string // optional muted annotation
}

// RenderPairs renders aligned key/value lines inside a frame
func RenderPairs(title string, pairs []Pair) string {
	initStyles()

	keyWidth := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p.Key); w > keyWidth {
			keyWidth = w
		}
	}

	var lines []string
	if title != "" {
		lines = append(lines, styleTitle.Render(title))
	}
	for _, p := range pairs {
		line := styleKey.Width(keyWidth+2).Render(p.Key) + p.Value
		if p.Note != "" {
			line += " " + styleMuted.Render("("+p.Note+")")
		}
		lines = append(lines, line)
	}
	return styleFrame.Render(strings.Join(lines, "\n"))
}
