package tablegrid

import (
	"cmp"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// Formatter arranges tables into bands of up to HorizontalCount tables placed
// side by side. Each band is centered relative to the band above it.
//
// A Formatter is not safe for concurrent use.
type Formatter struct {
	horizontalCount int
	preserveOrder   bool
	tablePadding    int
	tables          []*Table
}

// NewFormatter returns a Formatter configured by opts.
func NewFormatter(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		horizontalCount: 1,
		preserveOrder:   true,
		tablePadding:    1,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Add appends tables. Nil tables are skipped.
func (f *Formatter) Add(tables ...*Table) {
	for _, t := range tables {
		if t != nil {
			f.tables = append(f.tables, t)
		}
	}
}

// Tables returns the tables in insertion order.
func (f *Formatter) Tables() []*Table { return slices.Clone(f.tables) }

// HorizontalCount returns the number of tables per band.
func (f *Formatter) HorizontalCount() int { return f.horizontalCount }

// PreserveOrder reports whether bands keep insertion order.
func (f *Formatter) PreserveOrder() bool { return f.preserveOrder }

// TablePadding returns the number of spaces between tables in a band.
func (f *Formatter) TablePadding() int { return f.tablePadding }

// Lines composes every band and returns the output lines.
// It returns [ErrNoTables] when no tables were added.
func (f *Formatter) Lines() ([]string, error) {
	if len(f.tables) == 0 {
		return nil, ErrNoTables
	}

	var out []string
	prevWidth, prevPadding := 0, 0
	for first := 0; first < len(f.tables); first += f.horizontalCount {
		last := min(first+f.horizontalCount, len(f.tables))
		lines := f.band(f.tables[first:last])

		width := utf8.RuneCountInString(lines[0])
		padding := bandOffset(width, prevWidth, prevPadding)
		prefix := strings.Repeat(" ", padding)
		for _, line := range lines {
			out = append(out, prefix+line)
		}
		prevWidth, prevPadding = width, padding
	}
	return out, nil
}

// Render returns the composed output joined by newlines.
func (f *Formatter) Render() (string, error) {
	lines, err := f.Lines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// String returns the composed output, or "" when there is nothing to format.
func (f *Formatter) String() string {
	s, _ := f.Render()
	return s
}

// WriteTo writes the composed output followed by a newline.
func (f *Formatter) WriteTo(w io.Writer) (int64, error) {
	s, err := f.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s+"\n")
	return int64(n), err
}

// band merges tables side by side. Tables shorter than the tallest one are
// filled with blank lines of their own width.
func (f *Formatter) band(tables []*Table) []string {
	rowsMax := 0
	for _, t := range tables {
		rowsMax = max(rowsMax, t.Rows())
	}

	if !f.preserveOrder {
		tables = slices.Clone(tables)
		slices.SortStableFunc(tables, func(a, b *Table) int {
			return cmp.Compare(b.Rows(), a.Rows())
		})
	}

	lines := tables[0].Lines()
	for len(lines) < rowsMax {
		lines = append(lines, strings.Repeat(" ", tables[0].Width()))
	}

	gap := strings.Repeat(" ", f.tablePadding)
	for _, t := range tables[1:] {
		filler := strings.Repeat(" ", t.Width())
		for i := range rowsMax {
			if i < len(t.lines) {
				lines[i] += gap + t.lines[i]
			} else {
				lines[i] += gap + filler
			}
		}
	}
	return lines
}

// bandOffset returns the left padding that centers a band of the given width
// under the previous band.
func bandOffset(width, prevWidth, prevPadding int) int {
	switch {
	case width < prevWidth:
		return (prevWidth-width)/2 + prevPadding
	case width == prevWidth:
		return prevPadding
	default:
		return 0
	}
}
