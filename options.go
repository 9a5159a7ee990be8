package tableoutput

// Option configures a render call.
type Option func(*options)

type options struct {
	width     int
	widthFrom WidthProvider
	caption   string
	delimiter rune
	indent    string
}

func newOptions(opts []Option) options {
	o := options{
		widthFrom: TerminalWidth,
		delimiter: ',',
		indent:    "  ",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) resolveWidth() int {
	return ResolveWidth(o.width, o.widthFrom)
}

// WithWidth sets the target display width of the Pretty format.
// A value of zero or less falls back to the width provider; WritePretty
// is the entry point that takes the width as given.
func WithWidth(width int) Option {
	return func(o *options) { o.width = width }
}

// WithWidthProvider replaces the terminal query used by the Pretty format
// when no explicit width is given.
func WithWidthProvider(p WidthProvider) Option {
	return func(o *options) {
		if p != nil {
			o.widthFrom = p
		}
	}
}

// WithCaption sets the caption paragraph of the HTML format.
func WithCaption(caption string) Option {
	return func(o *options) { o.caption = caption }
}

// WithDelimiter sets the CSV field delimiter. Default: comma.
func WithDelimiter(r rune) Option {
	return func(o *options) { o.delimiter = r }
}

// WithIndent sets the JSON indentation string and the YAML indent width.
// Default: two spaces.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}
