// Package repl implements the interactive command loop over a reader/writer
// pair: prompt, read one line, dispatch, print, repeat until close/exit.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/MiniRonni/goit-web-hw-02/internal/command"
)

const (
	banner = "Welcome to the assistant bot!"
	prompt = "Enter a command: "
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// Options configures a REPL.
type Options struct {
	In      io.Reader // Input source (default: os.Stdin).
	Out     io.Writer // Output destination (default: os.Stdout).
	NoColor bool      // Suppress styling even if Out is a TTY.
}

// REPL reads command lines and prints dispatcher output until terminated.
type REPL struct {
	in         io.Reader
	out        io.Writer
	dispatcher *command.Dispatcher
	color      bool
}

// New creates a REPL over the given dispatcher. Styling is applied only when
// Out is a terminal and NoColor is unset.
func New(d *command.Dispatcher, opts Options) *REPL {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &REPL{
		in:         opts.In,
		out:        opts.Out,
		dispatcher: d,
		color:      !opts.NoColor && isTTY(opts.Out),
	}
}

// Run executes the command loop. It returns nil on close/exit or end of
// input (both persist the book first), and an error only when reading input
// or saving the book fails.
func (r *REPL) Run() error {
	_, _ = fmt.Fprintln(r.out, r.styled(banner))

	sc := bufio.NewScanner(r.in)
	for {
		_, _ = fmt.Fprint(r.out, prompt)

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("repl: reading input: %w", err)
			}
			// End of input behaves like exit: persist, then say goodbye.
			_, err := r.dispatchAndPrint("exit")
			return err
		}

		quit, err := r.dispatchAndPrint(sc.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// dispatchAndPrint runs one line through the dispatcher and prints its output.
func (r *REPL) dispatchAndPrint(line string) (bool, error) {
	res, err := r.dispatcher.Dispatch(line)
	if err != nil {
		return false, err
	}
	if res.Output != "" {
		_, _ = fmt.Fprintln(r.out, res.Output)
	}
	return res.Quit, nil
}

func (r *REPL) styled(s string) string {
	if !r.color {
		return s
	}
	return bannerStyle.Render(s)
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
