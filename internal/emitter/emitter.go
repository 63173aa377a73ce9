package emitter

// Color identifies one of the terminal colors reports are allowed to use.
//
// Design decision: We use iota-based constants rather than passing
// fatih/color attributes through the interface so that non-terminal
// implementations (the test Recorder, future file sinks) do not depend
// on a specific terminal library.
type Color int

const (
	// ColorDefault leaves the terminal's current foreground color.
	ColorDefault Color = iota

	// ColorRed marks warnings and missing-confirmation states.
	ColorRed

	// ColorGreen marks healthy or confirmed states.
	ColorGreen

	// ColorYellow marks pending states.
	ColorYellow

	// ColorBlue marks contract addresses and references.
	ColorBlue
)

// String returns a human-readable representation of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// settings holds the per-call styling resolved from options.
type settings struct {
	bold      bool
	color     Color
	noNewline bool
}

// Option configures a single Echo call.
type Option func(*settings)

// WithBold renders the text in bold.
func WithBold() Option {
	return func(s *settings) { s.bold = true }
}

// WithColor renders the text in the given color.
func WithColor(c Color) Option {
	return func(s *settings) { s.color = c }
}

// WithNoNewline suppresses the trailing newline so the next Echo call
// continues on the same line.
func WithNoNewline() Option {
	return func(s *settings) { s.noNewline = true }
}

// apply resolves the options for one call. Defaults: no bold, default
// color, trailing newline.
func apply(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Emitter is the output sink all renderers write to.
// Implementations must not retain styling across calls.
type Emitter interface {
	// Echo writes one line (or, with WithNoNewline, an inline fragment)
	// of report text.
	Echo(text string, opts ...Option)
}
