package emitter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console is an Emitter that writes styled text to a terminal or any
// io.Writer. Colors degrade to plain text automatically when the
// destination is not a terminal (fatih/color handles detection).
type Console struct {
	out io.Writer
}

// NewConsole creates a Console emitter writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Echo writes the text with the requested styling.
func (c *Console) Echo(text string, opts ...Option) {
	s := apply(opts)

	attrs := make([]color.Attribute, 0, 2)
	switch s.color {
	case ColorRed:
		attrs = append(attrs, color.FgRed)
	case ColorGreen:
		attrs = append(attrs, color.FgGreen)
	case ColorYellow:
		attrs = append(attrs, color.FgYellow)
	case ColorBlue:
		attrs = append(attrs, color.FgBlue)
	case ColorDefault:
		// No foreground attribute.
	}
	if s.bold {
		attrs = append(attrs, color.Bold)
	}

	if len(attrs) == 0 {
		fmt.Fprint(c.out, text)
	} else {
		color.New(attrs...).Fprint(c.out, text)
	}

	if !s.noNewline {
		fmt.Fprintln(c.out)
	}
}
