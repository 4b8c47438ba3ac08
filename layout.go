package tablegrid

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TableSpec is the serializable form of a [Table].
type TableSpec struct {
	Title  string     `json:"title,omitempty" yaml:"title,omitempty"`
	Header []string   `json:"header,omitempty" yaml:"header,omitempty"`
	Data   [][]string `json:"data" yaml:"data"`
	Footer []string   `json:"footer,omitempty" yaml:"footer,omitempty"`
}

// Build validates the spec and returns the Table.
func (s TableSpec) Build() (*Table, error) {
	b := NewBuilder().AddTitle(s.Title).AddData(s.Data...)
	if s.Header != nil {
		b.AddHeader(s.Header...)
	}
	if s.Footer != nil {
		b.AddFooter(s.Footer...)
	}
	return b.Build()
}

// Spec returns the serializable form of t.
func (t *Table) Spec() TableSpec {
	return TableSpec{
		Title:  t.title,
		Header: t.Header(),
		Data:   t.Data(),
		Footer: t.Footer(),
	}
}

// Layout describes a [Formatter] and its tables. Absent settings keep the
// Formatter defaults.
type Layout struct {
	HorizontalCount *int        `json:"horizontal_count,omitempty" yaml:"horizontal_count,omitempty"`
	PreserveOrder   *bool       `json:"preserve_order,omitempty" yaml:"preserve_order,omitempty"`
	TablePadding    *int        `json:"table_padding,omitempty" yaml:"table_padding,omitempty"`
	Tables          []TableSpec `json:"tables" yaml:"tables"`
}

// Options converts the layout settings into Formatter options.
func (l Layout) Options() []Option {
	var opts []Option
	if l.HorizontalCount != nil {
		opts = append(opts, WithHorizontalCount(*l.HorizontalCount))
	}
	if l.PreserveOrder != nil {
		opts = append(opts, WithPreserveOrder(*l.PreserveOrder))
	}
	if l.TablePadding != nil {
		opts = append(opts, WithTablePadding(*l.TablePadding))
	}
	return opts
}

// Formatter builds every table and returns a Formatter holding them. Extra
// options are applied after the layout's own settings.
func (l Layout) Formatter(extra ...Option) (*Formatter, error) {
	f, err := NewFormatter(append(l.Options(), extra...)...)
	if err != nil {
		return nil, err
	}
	for i, spec := range l.Tables {
		t, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("%w: table %d: %w", ErrInvalidLayout, i, err)
		}
		f.Add(t)
	}
	return f, nil
}

// LayoutOf returns the layout describing f.
func LayoutOf(f *Formatter) Layout {
	hc, po, tp := f.horizontalCount, f.preserveOrder, f.tablePadding
	l := Layout{HorizontalCount: &hc, PreserveOrder: &po, TablePadding: &tp}
	for _, t := range f.tables {
		l.Tables = append(l.Tables, t.Spec())
	}
	return l
}

// DecodeLayout reads a YAML (or JSON) layout document from r.
func DecodeLayout(r io.Reader) (Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return Layout{}, fmt.Errorf("%w: empty document", ErrInvalidLayout)
		}
		return Layout{}, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return l, nil
}

// EncodeLayout writes l to w as YAML.
func EncodeLayout(w io.Writer, l Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return err
	}
	return enc.Close()
}
