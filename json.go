package tablegrid

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(t.Spec())
}
