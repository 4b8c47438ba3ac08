package tablegrid

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// Table is an immutable, validated table. Build one with [NewBuilder].
type Table struct {
	title  string
	header []string
	data   [][]string
	footer []string

	columns int
	widths  []int
	width   int
	lines   []string
}

// Builder accumulates the parts of a [Table] and validates them in [Builder.Build].
type Builder struct {
	title  string
	header []string
	data   [][]string
	footer []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddHeader sets the header row.
func (b *Builder) AddHeader(cells ...string) *Builder {
	b.header = slices.Clone(cells)
	return b
}

// AddData appends data rows. It may be called more than once.
func (b *Builder) AddData(rows ...[]string) *Builder {
	for _, row := range rows {
		b.data = append(b.data, slices.Clone(row))
	}
	return b
}

// AddFooter sets the footer row.
func (b *Builder) AddFooter(cells ...string) *Builder {
	b.footer = slices.Clone(cells)
	return b
}

// AddTitle sets the title, centered across the full table width.
func (b *Builder) AddTitle(title string) *Builder {
	b.title = title
	return b
}

// Build validates the accumulated rows and returns the Table.
//
// Build fails with [ErrMissingData] when no data rows were added, and with
// [ErrColumnMismatch] when header, data, and footer rows disagree on their
// column count.
func (b *Builder) Build() (*Table, error) {
	if len(b.data) == 0 {
		return nil, fmt.Errorf("%w: no data rows added", ErrMissingData)
	}

	rows := contentRows(b.header, b.data, b.footer)
	if err := checkColumns(rows); err != nil {
		return nil, err
	}
	columns := len(b.data[0])
	if columns == 0 {
		return nil, fmt.Errorf("%w: data rows have no columns", ErrMissingData)
	}

	t := &Table{
		title:   b.title,
		header:  slices.Clone(b.header),
		data:    cloneRows(b.data),
		footer:  slices.Clone(b.footer),
		columns: columns,
	}
	t.widths = computeWidths(columns, rows)
	t.width = displayWidth(t.widths)
	t.lines = t.render()
	return t, nil
}

// checkColumns reports every row whose length differs from the longest row.
func checkColumns(rows [][]string) error {
	ref := 0
	for i, row := range rows {
		if len(row) > len(rows[ref]) {
			ref = i
		}
	}
	want := len(rows[ref])

	var bad []string
	for _, row := range rows {
		if len(row) != want {
			bad = append(bad, fmt.Sprintf("%q (%d)", firstCell(row), len(row)))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return fmt.Errorf("%w: row(s) %s do not match row %q (%d columns)",
		ErrColumnMismatch, strings.Join(bad, ", "), firstCell(rows[ref]), want)
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return "<empty>"
	}
	return row[0]
}

func contentRows(header []string, data [][]string, footer []string) [][]string {
	rows := make([][]string, 0, len(data)+2)
	if header != nil {
		rows = append(rows, header)
	}
	rows = append(rows, data...)
	if footer != nil {
		rows = append(rows, footer)
	}
	return rows
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// computeWidths returns the maximum rune count of each column.
func computeWidths(columns int, rows [][]string) []int {
	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// displayWidth is the length of one rendered line: every column plus
// " | " between columns and "| " / " |" at the edges.
func displayWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w
	}
	return n + 3*(len(widths)-1) + 4
}

// Title returns the title, or "" when none was set.
func (t *Table) Title() string { return t.title }

// Header returns a copy of the header row, or nil.
func (t *Table) Header() []string { return slices.Clone(t.header) }

// Footer returns a copy of the footer row, or nil.
func (t *Table) Footer() []string { return slices.Clone(t.footer) }

// Data returns a copy of the data rows.
func (t *Table) Data() [][]string { return cloneRows(t.data) }

// Columns returns the number of columns.
func (t *Table) Columns() int { return t.columns }

// Rows returns the number of rendered lines.
func (t *Table) Rows() int { return len(t.lines) }

// Width returns the display width of every rendered line.
func (t *Table) Width() int { return t.width }

// ColumnWidths returns the maximum content width of each column.
func (t *Table) ColumnWidths() []int { return slices.Clone(t.widths) }

// ContentRows returns the header, data, and footer rows used for column
// width computation. The title is not included.
func (t *Table) ContentRows() [][]string {
	return cloneRows(contentRows(t.header, t.data, t.footer))
}

// Lines returns the rendered table, one string per line.
func (t *Table) Lines() []string { return slices.Clone(t.lines) }

// String returns the rendered table with lines joined by newlines.
func (t *Table) String() string { return strings.Join(t.lines, "\n") }

// WriteTo writes the rendered table followed by a newline.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String()+"\n")
	return int64(n), err
}

func (t *Table) render() []string {
	sep := strings.Repeat("-", t.width)
	var lines []string

	if t.title != "" {
		lines = append(lines, sep, "|"+formatColumn(clip(t.title, t.width-2), t.width-2)+"|")
	}
	if t.header != nil {
		lines = append(lines, sep, createRow(t.header, t.widths))
	}
	lines = append(lines, sep)
	for _, row := range t.data {
		lines = append(lines, createRow(row, t.widths))
	}
	lines = append(lines, sep)
	if t.footer != nil {
		lines = append(lines, createRow(t.footer, t.widths), sep)
	}
	return lines
}

func createRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = formatColumn(cells[i], width)
	}
	return "| " + strings.Join(parts, " | ") + " |"
}

// clip cuts s to at most n runes.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// formatColumn centers text in width characters. An odd leftover space goes
// on the right.
func formatColumn(text string, width int) string {
	n := utf8.RuneCountInString(text)
	pad := (width - n) / 2
	if pad < 0 {
		pad = 0
	}
	s := strings.Repeat(" ", pad) + text + strings.Repeat(" ", pad)
	if short := width - utf8.RuneCountInString(s); short > 0 {
		s += strings.Repeat(" ", short)
	}
	return s
}
