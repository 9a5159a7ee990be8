package tableoutput

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\r", "", "\n", "<br>")

func writeMarkdown(w io.Writer, t *Table) error {
	header := escapeMarkdown(t.header())
	rows := make([][]string, 0, t.Len())
	for _, row := range t.data() {
		rows = append(rows, escapeMarkdown(row))
	}

	// Calculate column widths (minimum 3 for the separator dashes).
	widths := make([]int, len(header))
	for i, col := range header {
		widths[i] = max(3, runewidth.StringWidth(col))
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = markdownEscaper.Replace(cell)
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = padCell(cells[i], width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
