package cli

import (
	"fmt"
	"io"
)

// IO routes command output. Warnings are held back and printed to stderr
// once the command finishes so they are not lost between table rows.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn records a warning; any warning makes the command exit with 1.
func (o *IO) Warn(format string, a ...any) {
	o.warnings = append(o.warnings, fmt.Sprintf(format, a...))
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Out is the stdout writer, for encoders.
func (o *IO) Out() io.Writer {
	return o.out
}

// Finish prints warnings to stderr and returns the exit code.
func (o *IO) Finish() int {
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
	if len(o.warnings) > 0 {
		return 1
	}
	return 0
}
