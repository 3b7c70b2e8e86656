package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/MiniRonni/goit-web-hw-02/internal/browse"
	"github.com/MiniRonni/goit-web-hw-02/internal/command"
	"github.com/MiniRonni/goit-web-hw-02/internal/config"
	"github.com/MiniRonni/goit-web-hw-02/internal/repl"
	"github.com/MiniRonni/goit-web-hw-02/internal/store"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for the assistant.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Repl    ReplCmd          `cmd:"" default:"1" help:"Run the interactive assistant bot."`
	Browse  BrowseCmd        `cmd:"" help:"Open a read-only contact list TUI."`
}

// ReplCmd runs the interactive command loop.
type ReplCmd struct {
	File    string `help:"Path to the address book file." placeholder:"PATH"`
	Window  int    `help:"Upcoming birthday window in days." default:"0"`
	NoColor bool   `help:"Force plain output even if stdout is a TTY." default:"false"`
}

// Run builds the book, store, and dispatcher, then executes the loop.
func (r *ReplCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	// Apply CLI flag overrides.
	if r.File != "" {
		cfg.Storage.Path = r.File
	}
	if r.Window > 0 {
		cfg.Birthdays.WindowDays = r.Window
	}
	if r.NoColor {
		cfg.UI.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	st := store.NewFileStore(cfg.Storage.Path)
	b, err := st.Load()
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	d := command.New(b, st, command.WithBirthdayWindow(cfg.Birthdays.WindowDays))
	loop := repl.New(d, repl.Options{NoColor: cfg.UI.NoColor})

	if err := loop.Run(); err != nil {
		return &loopError{err: err}
	}
	return nil
}

// BrowseCmd opens the read-only contact list TUI.
type BrowseCmd struct {
	File string `help:"Path to the address book file." placeholder:"PATH"`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the browse TUI.
func (b *BrowseCmd) Run() error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	if b.File != "" {
		cfg.Storage.Path = b.File
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	bk, err := store.NewFileStore(cfg.Storage.Path).Load()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	prog := tea.NewProgram(browse.NewModel(bk), tea.WithAltScreen())
	return b.run(isTTY, prog)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/assistant/config.yaml"),
		".assistant/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loopError marks failures that occur inside a running command loop, as
// opposed to setup failures before the loop starts.
type loopError struct {
	err error
}

func (e *loopError) Error() string { return e.err.Error() }
func (e *loopError) Unwrap() error { return e.err }

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var le *loopError
	if errors.As(err, &le) {
		return exitRuntime
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
