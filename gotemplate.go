package tablegrid

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	if err := tmpl.Execute(w, t.Spec()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
