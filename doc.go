// Package tableoutput holds a grid of text cells and renders it in several
// output formats.
//
// A [Table] is created from its header row with [New]; the header fixes the
// column count. Data rows are appended with [Table.AddRow], which rejects rows
// of the wrong length with [ErrWrongNumberCols].
//
//	t := tableoutput.New("Name", "Age")
//	if err := t.AddRow("Alice", "30"); err != nil { ... }
//	tableoutput.Write(os.Stdout, tableoutput.Pretty, t)
//
// # Pretty
//
// The Pretty format draws an ASCII grid whose columns all share one width,
// chosen as the widest that fits the target display width. Cell text is
// word-wrapped to the column, so a row may span several lines. The target
// width comes from [WithWidth], otherwise from the [WidthProvider] set with
// [WithWidthProvider] (default [TerminalWidth]), otherwise [DefaultWidth].
// When even the narrowest layout does not fit, rendering fails with
// [ErrNotEnoughCols] and nothing is written.
//
//	+=========+=========+
//	| Name    | Age     |
//	+=========+=========+
//	| Alice   | 30      |
//	+---------+---------+
//
// # Records
//
// CSV and TSV write the header followed by each data row. JSON, JSONL and
// YAML write one record per data row, mapping each header to its cell with
// keys in header order. [WithDelimiter] changes the CSV delimiter and
// [WithIndent] the JSON and YAML indentation.
//
// # Markup
//
// HTML writes an escaped table preceded by an optional caption paragraph
// ([WithCaption]). Markdown writes a GitHub-flavored table.
//
// # GoTemplate
//
// Use [GoTemplate] to render each data row with a Go [text/template]. The
// template receives a map from header to cell:
//
//	tableoutput.Write(os.Stdout, tableoutput.GoTemplate("{{.Name}} is {{.Age}}"), t)
//
// # Format Selection
//
// Use [ParseFormat] to convert a CLI flag string into a [Format].
//
// # Errors
//
//   - [ErrWrongNumberCols] — row length differs from the header
//   - [ErrNotEnoughCols] — Pretty layout does not fit the target width
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
package tableoutput
