package tablegrid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMissingData       = errors.New("missing table data")
	ErrColumnMismatch    = errors.New("column count mismatch")
	ErrNoTables          = errors.New("no tables to format")
	ErrInvalidOption     = errors.New("invalid option")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format is an export format for a single [Table].
type Format string

const (
	Text     Format = "text"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, CSV, TSV, Markdown, HTML, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes a Go text/template against the
// table's [TableSpec].
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Export writes t to w in format f. [Text] writes the rendered grid lines.
func Export(w io.Writer, t *Table, f Format) error {
	switch f {
	case Text:
		_, err := t.WriteTo(w)
		return err
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case HTML:
		return writeHTML(w, t)
	case JSON:
		return writeJSON(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal exports t in format f and returns the bytes.
func Marshal(t *Table, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Export(&buf, t, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
