package tableoutput

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, t *Table, o options) error {
	cw := csv.NewWriter(w)
	cw.Comma = o.delimiter
	if err := cw.Write(t.header()); err != nil {
		return err
	}
	for _, row := range t.data() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
