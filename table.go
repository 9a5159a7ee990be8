package tableoutput

import "fmt"

// Table is a rectangular grid of text cells. The first row holds the column
// headers and fixes the column count for every row added later.
//
// Rendering only reads the table, so concurrent renders are safe. AddRow is
// not synchronized; callers that add rows from several goroutines must
// serialize access themselves.
type Table struct {
	numCols int
	rows    [][]string
}

// New creates a table with the given headers and no data rows.
func New(headers ...string) *Table {
	return &Table{
		numCols: len(headers),
		rows:    [][]string{clone(headers)},
	}
}

// AddRow appends a data row. The row must have exactly one cell per header,
// otherwise the table is left unchanged and an error wrapping
// ErrWrongNumberCols is returned.
func (t *Table) AddRow(row ...string) error {
	if len(row) != t.numCols {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongNumberCols, len(row), t.numCols)
	}
	t.rows = append(t.rows, clone(row))
	return nil
}

// NumCols returns the fixed column count.
func (t *Table) NumCols() int { return t.numCols }

// Len returns the number of data rows, not counting the header row.
func (t *Table) Len() int { return len(t.rows) - 1 }

// Headers returns a copy of the header row.
func (t *Table) Headers() []string { return clone(t.rows[0]) }

// Rows returns a copy of the data rows.
func (t *Table) Rows() [][]string {
	out := make([][]string, 0, t.Len())
	for _, row := range t.rows[1:] {
		out = append(out, clone(row))
	}
	return out
}

// Pretty renders the table as a bordered grid fitted to width display
// columns. A width of zero or less uses the terminal width, or DefaultWidth
// when there is no terminal, so an explicit zero width cannot be requested
// here. Use WritePretty to render at exactly the width given.
func (t *Table) Pretty(width int) (string, error) {
	out, err := Marshal(Pretty, t, WithWidth(width))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (t *Table) header() []string { return t.rows[0] }

func (t *Table) data() [][]string { return t.rows[1:] }

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
