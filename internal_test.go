package tableoutput

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestWrapText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		width int
		want  []string
	}{
		"empty":              {input: "", width: 5, want: []string{""}},
		"fits":               {input: "hello world", width: 11, want: []string{"hello world"}},
		"breaks at space":    {input: "hello world", width: 5, want: []string{"hello", "world"}},
		"greedy fill":        {input: "a b c d", width: 3, want: []string{"a b", "c d"}},
		"keeps blanks":       {input: "  a   b  ", width: 10, want: []string{"  a   b"}},
		"drops break blanks": {input: "ab    cd", width: 4, want: []string{"ab", "cd"}},
		"indent too wide":    {input: "      ab", width: 4, want: []string{"ab"}},
		"hard break":         {input: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		"hard break exact":   {input: "abcdefgh", width: 4, want: []string{"abcd", "efgh"}},
		"short then long":    {input: "ab abcdefgh", width: 4, want: []string{"ab", "abcd", "efgh"}},
		"long then short":    {input: "abcdef ab", width: 4, want: []string{"abcd", "ef", "ab"}},
		"strips cr":          {input: "a\r\nb", width: 5, want: []string{"a", "b"}},
		"keeps blank lines":  {input: "a\n\nb", width: 5, want: []string{"a", "", "b"}},
		"wide runes":         {input: "你好世界", width: 4, want: []string{"你好", "世界"}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapText(tt.input, tt.width))
		})
	}
}

func TestSplitWords(t *testing.T) {
	t.Parallel()
	assert.Empty(t, splitWords(""))
	assert.Equal(t, []word{{text: "", gap: "  "}, {text: "a", gap: "   "}, {text: "b", gap: " "}}, splitWords("  a   b "))
	assert.Equal(t, []word{{text: "a\tb"}}, splitWords("a\tb"))
}

func TestHeaderLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, [][]string{{"a  b"}, {"one", "two"}}, headerLines([]string{"a  b", "one\r\ntwo"}))
}

func TestTerminalWidthNotATerminal(t *testing.T) {
	t.Parallel()
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	w, ok := terminalWidth{f: f}.Width()
	assert.False(t, ok)
	assert.Zero(t, w)
	assert.Equal(t, DefaultWidth, ResolveWidth(0, terminalWidth{f: f}))
}

func TestSplitWordWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is two columns wide and cannot fit in one; splitWord still
	// advances one rune so wrapping terminates.
	head, rest := splitWord("你好", 1)
	assert.Equal(t, "你", head)
	assert.Equal(t, "好", rest)
}

func TestMaxLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, maxLines(nil))
	assert.Equal(t, 3, maxLines([][]string{{"a"}, {"a", "b", "c"}, {"a", "b"}}))
}

func TestComputeLayout(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		header  []string
		target  int
		spacing int
	}{
		"two narrow columns": {header: []string{"A", "B"}, target: 20, spacing: 8},
		"exact minimum":      {header: []string{"A", "B"}, target: 9, spacing: 3},
		"minimum plus one":   {header: []string{"A", "B"}, target: 10, spacing: 3},
		"first growth step":  {header: []string{"A", "B"}, target: 11, spacing: 4},
		"uneven headers":     {header: []string{"Name", "A", "Status"}, target: 40, spacing: 12},
		"single column":      {header: []string{"Name"}, target: 20, spacing: 19},
		"default width":      {header: []string{"A", "B"}, target: DefaultWidth, spacing: 98},
		"wide header runes":  {header: []string{"名前", "B"}, target: 20, spacing: 8},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			l, err := computeLayout(tt.header, tt.target)
			require.NoError(t, err)
			assert.Equal(t, len(tt.header), l.numCols)
			assert.Equal(t, tt.spacing, l.spacing)
			assert.Equal(t, tt.spacing-2, l.wrap)
		})
	}
}

// growLayoutTotal is the step-by-step form of the width search.
func growLayoutTotal(maxHeader, numCols, target int) int {
	total := (maxHeader+3)*numCols + 1
	for k := 1; (maxHeader+3+k)*numCols+1 <= target; k++ {
		total = (maxHeader+3+k)*numCols + 1
	}
	return total
}

func TestComputeLayoutMatchesGrowth(t *testing.T) {
	t.Parallel()
	for numCols := 1; numCols <= 6; numCols++ {
		for maxHeader := 1; maxHeader <= 12; maxHeader++ {
			header := make([]string, numCols)
			header[0] = strings.Repeat("h", maxHeader)
			for target := 1; target <= 150; target++ {
				l, err := computeLayout(header, target)
				if (maxHeader+3)*numCols+1 > target {
					require.ErrorIs(t, err, ErrNotEnoughCols)
					continue
				}
				require.NoError(t, err)
				want := growLayoutTotal(maxHeader, numCols, target)
				assert.Equal(t, want/numCols-1, l.spacing, "cols=%d header=%d target=%d", numCols, maxHeader, target)
			}
		}
	}
}

func TestComputeLayoutErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		header []string
		target int
	}{
		"no columns":       {header: nil, target: 80},
		"headers too wide": {header: []string{strings.Repeat("x", 50), "b", "c", "d", "e"}, target: 10},
		"one short":        {header: []string{"A", "B"}, target: 8},
		"no content room":  {header: []string{"", ""}, target: 7},
		"zero target":      {header: []string{"A"}, target: 0},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := computeLayout(tt.header, tt.target)
			require.ErrorIs(t, err, ErrNotEnoughCols)
		})
	}
}

func TestWritePrettyWriteError(t *testing.T) {
	t.Parallel()
	tbl := New("A", "B")
	require.NoError(t, tbl.AddRow("x", "y"))
	err := writePretty(&errWriterInternal{}, tbl, 20)
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padCell("ab", 4))
	assert.Equal(t, "abcd", padCell("abcd", 2))
	assert.Equal(t, "你 ", padCell("你", 3))
}
