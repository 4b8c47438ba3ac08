package tablegrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown renders a GitHub-flavored Markdown table with centered
// columns. Markdown requires a header row, so a table without one gets an
// empty header. The title becomes a heading and the footer a final row.
func writeMarkdown(w io.Writer, t *Table) error {
	header := t.header
	if header == nil {
		header = make([]string, t.columns)
	}
	rows := t.Data()
	if t.footer != nil {
		rows = append(rows, t.Footer())
	}

	// Column widths use display width; minimum 3 for the alignment markers.
	widths := make([]int, t.columns)
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if cw := runewidth.StringWidth(escapePipes(cell)); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if t.title != "" {
		if _, err := fmt.Fprintf(w, "### %s\n\n", t.title); err != nil {
			return err
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = ":" + strings.Repeat("-", width-2) + ":"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = centerDisplay(escapePipes(cells[i]), width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func centerDisplay(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
