package tablegrid

import (
	"encoding/csv"
	"io"
)

// writeCSV writes the content rows. The title has no CSV representation.
func writeCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	for _, row := range t.ContentRows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
