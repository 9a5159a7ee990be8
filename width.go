package tableoutput

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the target width used when neither the caller nor the
// terminal provide one.
const DefaultWidth = 200

// WidthProvider reports the display width available for rendering.
type WidthProvider interface {
	Width() (int, bool)
}

// WidthFunc adapts a function to a WidthProvider.
type WidthFunc func() (int, bool)

// Width calls f.
func (f WidthFunc) Width() (int, bool) { return f() }

// FixedWidth is a WidthProvider that always reports the same width.
type FixedWidth int

// Width returns w.
func (w FixedWidth) Width() (int, bool) { return int(w), w > 0 }

// TerminalWidth queries the width of the terminal attached to stdout.
var TerminalWidth WidthProvider = terminalWidth{f: os.Stdout}

type terminalWidth struct {
	f *os.File
}

func (t terminalWidth) Width() (int, bool) {
	w, _, err := term.GetSize(int(t.f.Fd()))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// ResolveWidth returns width when it is positive, otherwise the width reported
// by p, otherwise DefaultWidth.
func ResolveWidth(width int, p WidthProvider) int {
	if width > 0 {
		return width
	}
	if p != nil {
		if w, ok := p.Width(); ok && w > 0 {
			return w
		}
	}
	return DefaultWidth
}
