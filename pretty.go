package tableoutput

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// layout holds the column geometry shared by every line of a pretty table.
// All columns have the same width.
type layout struct {
	numCols int
	spacing int // width between two border characters, padding included
	wrap    int // content width of a cell
}

// WritePretty writes t to w as a bordered grid fitted to width display
// columns. Unlike Write with the Pretty format, width is used as given and
// the terminal is never queried.
func WritePretty(w io.Writer, t *Table, width int) error {
	return writePretty(w, t, width)
}

func writePretty(w io.Writer, t *Table, width int) error {
	l, err := computeLayout(t.header(), width)
	if err != nil {
		return err
	}

	// Render into memory first so a failed layout never leaves partial output.
	var sb strings.Builder
	heavy := l.hline("=")
	light := l.hline("-")
	sb.WriteString(heavy)
	l.writeRow(&sb, headerLines(t.header()))
	sb.WriteString(heavy)
	for _, row := range t.data() {
		l.writeRow(&sb, wrapRow(row, l.wrap))
		sb.WriteString(light)
	}
	_, err = io.WriteString(w, sb.String())
	return err
}

// computeLayout picks the widest uniform column width whose total line width
// still fits in target. Every column must at least hold the widest header
// plus one padding space on each side and a border.
func computeLayout(header []string, target int) (layout, error) {
	n := len(header)
	if n == 0 {
		return layout{}, fmt.Errorf("%w: table has no columns", ErrNotEnoughCols)
	}
	maxHeader := 0
	for _, h := range header {
		if w := runewidth.StringWidth(h); w > maxHeader {
			maxHeader = w
		}
	}
	base := maxHeader + 3
	total := base*n + 1
	if total > target {
		return layout{}, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughCols, total, target)
	}
	// Largest k >= 1 with (base+k)*n+1 <= target. This is where growing k one
	// step at a time stops.
	if k := (target-1)/n - base; k >= 1 {
		total = (base+k)*n + 1
	}
	spacing := total/n - 1
	l := layout{numCols: n, spacing: spacing, wrap: spacing - 2}
	if l.wrap < 1 {
		return layout{}, fmt.Errorf("%w: no room for cell content in %d columns", ErrNotEnoughCols, target)
	}
	return l, nil
}

func (l layout) hline(fill string) string {
	var sb strings.Builder
	sb.WriteString("+")
	for i := 0; i < l.numCols; i++ {
		sb.WriteString(strings.Repeat(fill, l.spacing))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
	return sb.String()
}

// writeRow writes one physical line per line of the tallest cell. Cells with
// fewer lines are blank below their last line.
func (l layout) writeRow(sb *strings.Builder, wrapped [][]string) {
	for line, n := 0, maxLines(wrapped); line < n; line++ {
		sb.WriteString("|")
		for _, lines := range wrapped {
			cell := ""
			if line < len(lines) {
				cell = lines[line]
			}
			sb.WriteString(" ")
			sb.WriteString(padCell(cell, l.spacing-1))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// --- Cell wrapping ---

// headerLines splits header cells on newlines only. The layout always leaves
// room for the widest header, so headers are never wrapped.
func headerLines(header []string) [][]string {
	lines := make([][]string, len(header))
	for i, h := range header {
		lines[i] = strings.Split(strings.ReplaceAll(h, "\r", ""), "\n")
	}
	return lines
}

func wrapRow(cells []string, width int) [][]string {
	wrapped := make([][]string, len(cells))
	for i, cell := range cells {
		wrapped[i] = wrapText(cell, width)
	}
	return wrapped
}

func maxLines(wrapped [][]string) int {
	n := 1
	for _, lines := range wrapped {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// wrapText wraps s to width display columns. Carriage returns are dropped and
// newlines always start a new line. The result has at least one line.
func wrapText(s string, width int) []string {
	s = strings.ReplaceAll(s, "\r", "")
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

// word is a run of non-space text and the spaces that follow it.
type word struct {
	text, gap string
}

func splitWords(s string) []word {
	var words []word
	for len(s) > 0 {
		i := strings.IndexByte(s, ' ')
		if i < 0 {
			words = append(words, word{text: s})
			break
		}
		rest := strings.TrimLeft(s[i:], " ")
		words = append(words, word{text: s[:i], gap: s[i : len(s)-len(rest)]})
		s = rest
	}
	return words
}

// wrapParagraph fills lines greedily, breaking only at spaces. Spaces inside
// a line are kept as written; the spaces at a break are dropped. A word wider
// than width is split across as many lines as it needs.
func wrapParagraph(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	curWidth := 0
	started := false
	gap := ""
	for _, w := range splitWords(s) {
		text, tw := w.text, runewidth.StringWidth(w.text)
		if gw := runewidth.StringWidth(gap); started && curWidth+gw+tw <= width {
			cur.WriteString(gap)
			cur.WriteString(text)
			curWidth += gw + tw
			gap = w.gap
			continue
		}
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		for tw > width {
			var head string
			head, text = splitWord(text, width)
			lines = append(lines, head)
			tw = runewidth.StringWidth(text)
		}
		cur.WriteString(text)
		curWidth = tw
		started = true
		gap = w.gap
	}
	if cur.Len() > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// splitWord cuts the longest prefix of word that fits in width. It always
// advances by at least one rune, even when that rune alone is too wide.
func splitWord(word string, width int) (head, rest string) {
	head = runewidth.Truncate(word, width, "")
	if head == "" {
		_, size := utf8.DecodeRuneInString(word)
		head = word[:size]
	}
	return head, word[len(head):]
}
