package tableoutput

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, t *Table, o options) error {
	if o.caption != "" {
		if _, err := fmt.Fprintf(w, "<p>%s</p>\n", html.EscapeString(o.caption)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if err := writeHTMLRow(w, "th", t.header()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.data() {
		if err := writeHTMLRow(w, "td", row); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLRow(w io.Writer, tag string, cells []string) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, cell := range cells {
		if _, err := fmt.Fprintf(w, "      <%s>%s</%s>\n", tag, html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}
