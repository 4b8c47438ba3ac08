// Package tablegrid renders tables as fixed-width, center-aligned ASCII text
// and composes several tables into a grid.
//
// # Tables
//
// A [Table] is built once with a [Builder] and is immutable afterwards:
//
//	t, err := tablegrid.NewBuilder().
//		AddTitle("Scores").
//		AddHeader("name", "score").
//		AddData([]string{"ann", "10"}, []string{"bob", "7"}).
//		AddFooter("total", "17").
//		Build()
//
// Every cell is centered in its column; an odd leftover space goes on the
// right. Widths are measured in characters (runes), not terminal display
// width. Every rendered line is exactly [Table.Width] characters long:
//
//	-----------------
//	|    Scores     |
//	-----------------
//	| name  | score |
//	-----------------
//	|  ann  |  10   |
//	|  bob  |   7   |
//	-----------------
//	| total |  17   |
//	-----------------
//
// # Grids
//
// A [Formatter] places up to HorizontalCount tables side by side in a band and
// stacks bands vertically. Shorter tables in a band are filled with blank
// lines. A band narrower than the band above it is centered under it:
//
//	f, err := tablegrid.NewFormatter(
//		tablegrid.WithHorizontalCount(2),
//		tablegrid.WithPreserveOrder(false),
//		tablegrid.WithTablePadding(2),
//	)
//	f.Add(t1, t2, t3)
//	out, err := f.Render()
//
// # Layout Documents
//
// [DecodeLayout] reads a YAML or JSON description of a Formatter and its
// tables. [Layout.Formatter] validates each table through the Builder.
//
// # Export
//
// [Export] writes a single table as text, CSV, TSV, Markdown, HTML, JSON,
// YAML, or through a Go template ([GoTemplate]).
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMissingData] — a table was built without data rows
//   - [ErrColumnMismatch] — header, data, and footer disagree on column count
//   - [ErrNoTables] — a Formatter with no tables was rendered
//   - [ErrInvalidOption] — a Formatter option is out of range
//   - [ErrInvalidLayout] — a layout document could not be decoded or built
//   - [ErrUnsupportedFormat] — unknown export format
//   - [ErrInvalidTemplate] — invalid go-template syntax
package tablegrid
