package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// ConsoleNotifier prints one styled line per notification. Warnings
// and errors go to the writer unconditionally; info lines can be
// silenced for quiet scripting.
type ConsoleNotifier struct {
	Out   io.Writer
	Quiet bool
	Width int
}

// NewConsoleNotifier returns a notifier writing to stderr, wrapping to
// the terminal width when stderr is a terminal.
func NewConsoleNotifier() *ConsoleNotifier {
	width := 0
	if term.IsTerminal(int(os.Stderr.Fd())) {
		if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil {
			width = w
		}
	}
	return &ConsoleNotifier{Out: os.Stderr, Width: width}
}

func (n *ConsoleNotifier) Info(format string, args ...any) {
	if n.Quiet {
		return
	}
	n.write(infoStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func (n *ConsoleNotifier) Warn(format string, args ...any) {
	n.write(warnStyle.Render("warning:") + " " + fmt.Sprintf(format, args...))
}

func (n *ConsoleNotifier) Error(format string, args ...any) {
	n.write(errorStyle.Render("error:") + " " + fmt.Sprintf(format, args...))
}

func (n *ConsoleNotifier) write(line string) {
	if n.Width > 0 {
		line = wordwrap.String(line, n.Width)
	}
	fmt.Fprintln(n.Out, line)
}
