package emitter

import "strings"

// Call records one Echo invocation with its resolved styling.
type Call struct {
	Text      string
	Bold      bool
	Color     Color
	NoNewline bool
}

// Recorder is an Emitter that captures every Echo call for inspection.
// Renderer tests assert on recorded calls instead of parsing ANSI
// escape sequences.
type Recorder struct {
	Calls []Call
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Echo records the call.
func (r *Recorder) Echo(text string, opts ...Option) {
	s := apply(opts)
	r.Calls = append(r.Calls, Call{
		Text:      text,
		Bold:      s.bold,
		Color:     s.color,
		NoNewline: s.noNewline,
	})
}

// Output reconstructs the plain text a terminal would show, honoring
// newline suppression.
func (r *Recorder) Output() string {
	var sb strings.Builder
	for _, c := range r.Calls {
		sb.WriteString(c.Text)
		if !c.NoNewline {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Contains reports whether the reconstructed output contains s.
func (r *Recorder) Contains(s string) bool {
	return strings.Contains(r.Output(), s)
}

// Find returns the first recorded call whose text contains s, or nil.
func (r *Recorder) Find(s string) *Call {
	for i := range r.Calls {
		if strings.Contains(r.Calls[i].Text, s) {
			return &r.Calls[i]
		}
	}
	return nil
}
