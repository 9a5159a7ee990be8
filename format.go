package tableoutput

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrWrongNumberCols   = errors.New("wrong number of columns")
	ErrNotEnoughCols     = errors.New("not enough terminal columns")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	HTML     Format = "html"
	Markdown Format = "markdown"
	Pretty   Format = "pretty"
)

const goTemplatePrefix = "go-template="

var formats = []Format{CSV, TSV, JSON, JSONL, YAML, HTML, Markdown, Pretty}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each data row using a Go
// text/template. The row is passed to the template as a map from header to
// cell value.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders t in format f and writes the result to w.
func Write(w io.Writer, f Format, t *Table, opts ...Option) error {
	o := newOptions(opts)
	switch f {
	case CSV:
		return writeCSV(w, t, o)
	case TSV:
		return writeTSV(w, t)
	case JSON:
		return writeJSON(w, t, o)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t, o)
	case HTML:
		return writeHTML(w, t, o)
	case Markdown:
		return writeMarkdown(w, t)
	case Pretty:
		return writePretty(w, t, o.resolveWidth())
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t *Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
