package tablegrid

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t *Table) error {
	for _, row := range t.ContentRows() {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
