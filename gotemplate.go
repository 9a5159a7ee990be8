package tableoutput

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	header := t.header()
	for _, row := range t.data() {
		fields := make(map[string]string, len(header))
		for i, h := range header {
			fields[h] = row[i]
		}
		if err := tmpl.Execute(w, fields); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
