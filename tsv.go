package tableoutput

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintln(w, strings.Join(t.header(), "\t")); err != nil {
		return err
	}
	for _, row := range t.data() {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
