// Package console implements the logging capability on stderr-style
// writers with ANSI color, disabled automatically when not on a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	infoColor  = color.New(color.FgCyan)
	errorColor = color.New(color.FgRed, color.Bold)
)

// Logger writes info lines plainly and error lines in red.
type Logger struct {
	out      io.Writer
	colorize bool
	quiet    bool
}

// New creates a Logger writing to w. Color is applied only when w is the
// process stderr attached to a terminal.
func New(w io.Writer) *Logger {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{out: w, colorize: colorize}
}

// NewQuiet creates a Logger that drops info lines but still reports errors.
func NewQuiet(w io.Writer) *Logger {
	l := New(w)
	l.quiet = true
	return l
}

func (l *Logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	if l.colorize {
		infoColor.Fprintf(l.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l.colorize {
		errorColor.Fprintf(l.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(l.out, "error: "+format+"\n", args...)
}
