// Package cli implements the command-line interface of table-output. It
// reads delimited records, treats the first one as the header row, and
// renders the resulting table in the requested format.
package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	tableoutput "github.com/sonicrules1234/table-output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FormatEnv names the environment variable holding the default output format.
const FormatEnv = "TABLE_OUTPUT_FORMAT"

// version is set at build time to a Git tag.
var version = "development version"

var errNoHeader = errors.New("input has no header row")

type options struct {
	format    string
	width     int
	caption   string
	delimiter string
	indent    string
	debug     bool
	logJSON   bool
}

// NewCommand returns the root command. Rendered output goes to the command's
// output writer and logs to its error writer.
func NewCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "table-output [file]",
		Short: "Render delimited records as a table",
		Long: "Reads delimited records from file, or stdin when file is omitted or \"-\".\n" +
			"The first record is the header row; every other record must have the same\n" +
			"number of fields.",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}
	bindFlags(cmd.Flags(), &o)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	format := os.Getenv(FormatEnv)
	if format == "" {
		format = tableoutput.Pretty.String()
	}
	fs.StringVarP(&o.format, "format", "f", format,
		"output format: "+formatNames()+", or go-template=<tmpl> (env "+FormatEnv+")")
	fs.IntVarP(&o.width, "width", "w", 0, "target width of the pretty format (0 = terminal width)")
	fs.StringVar(&o.caption, "caption", "", "caption paragraph of the html format")
	fs.StringVarP(&o.delimiter, "delimiter", "d", ",", `field delimiter of the input and csv output ("\t" or "tab" for tabs)`)
	fs.StringVar(&o.indent, "indent", "  ", "indentation of the json and yaml formats")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&o.logJSON, "log-json", false, "write logs as JSON")
}

func formatNames() string {
	var names []string
	for _, f := range tableoutput.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func run(cmd *cobra.Command, args []string, o options) error {
	logger := newLogger(cmd.ErrOrStderr(), o.debug, o.logJSON)

	f, err := tableoutput.ParseFormat(o.format)
	if err != nil {
		return err
	}
	delim, err := parseDelimiter(o.delimiter)
	if err != nil {
		return err
	}

	in, name := cmd.InOrStdin(), "stdin"
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in, name = file, args[0]
	}

	tbl, err := readTable(in, delim)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	logger.Debug("table loaded", "source", name, "columns", tbl.NumCols(), "rows", tbl.Len())

	opts := []tableoutput.Option{
		tableoutput.WithCaption(o.caption),
		tableoutput.WithDelimiter(delim),
		tableoutput.WithIndent(o.indent),
	}
	if o.width > 0 {
		opts = append(opts, tableoutput.WithWidth(o.width))
	}
	if f == tableoutput.Pretty {
		logger.Debug("pretty width", "width", tableoutput.ResolveWidth(o.width, tableoutput.TerminalWidth))
	}
	logger.Debug("rendering", "format", f.String())
	return tableoutput.Write(cmd.OutOrStdout(), f, tbl, opts...)
}

// readTable reads delimited records from r. The first record becomes the
// header row.
func readTable(r io.Reader, delim rune) (*tableoutput.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, err
	}
	tbl := tableoutput.New(header...)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return tbl, nil
		}
		if err != nil {
			return nil, err
		}
		if err := tbl.AddRow(rec...); err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// newLogger builds the command's logger. Debug level is enabled by the
// --debug flag.
func newLogger(w io.Writer, debug, jsonFormat bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
