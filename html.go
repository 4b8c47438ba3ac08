package tablegrid

import (
	"fmt"
	"html"
	"io"
)

const centerStyle = ` style="text-align: center"`

func writeHTML(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if t.title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(t.title)); err != nil {
			return err
		}
	}

	if t.header != nil {
		if err := writeHTMLSection(w, "thead", "th", [][]string{t.header}); err != nil {
			return err
		}
	}
	if err := writeHTMLSection(w, "tbody", "td", t.data); err != nil {
		return err
	}
	if t.footer != nil {
		if err := writeHTMLSection(w, "tfoot", "td", [][]string{t.footer}); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLSection(w io.Writer, section, cellTag string, rows [][]string) error {
	if _, err := fmt.Fprintf(w, "  <%s>\n", section); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", cellTag, centerStyle, html.EscapeString(cell), cellTag); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  </%s>\n", section)
	return err
}
