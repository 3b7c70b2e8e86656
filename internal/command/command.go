// Package command implements the assistant command table: tokenizing input
// lines, routing to handlers, persisting after mutations, and translating
// handler errors into the fixed user-facing messages.
package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MiniRonni/goit-web-hw-02/internal/book"
	"github.com/MiniRonni/goit-web-hw-02/internal/contact"
)

// ErrMissingArgument indicates a command was given too few arguments.
var ErrMissingArgument = errors.New("command: missing argument")

// User-facing messages. The coarse error mapping is deliberate: it mirrors
// the original assistant wording, including the imprecise validation message.
const (
	msgGreeting        = "How can I help you?"
	msgAdded           = "Contact added."
	msgUpdated         = "Contact update."
	msgDeleted         = "Contact deleted."
	msgBirthdayAdded   = "Birthday added."
	msgGoodBye         = "Good bye!"
	msgInvalidCommand  = "Invalid command."
	msgNoContacts      = "No contacts saved."
	msgNoBirthdays     = "No upcoming birthdays."
	msgMissingArgument = "Enter the argument for the command."
	msgNotFound        = "Contact not found."
	msgValidation      = "Give me name and phone please."
)

// DefaultBirthdayWindow is the upcoming-birthday lookahead in days.
const DefaultBirthdayWindow = 7

// Saver is the persistence port. Mutating commands save through it, keeping
// the book and contact packages free of I/O.
type Saver interface {
	Save(b *book.Book) error
}

// Result is the outcome of dispatching one input line.
type Result struct {
	Output string
	// Quit is set by close/exit after the book has been persisted.
	Quit bool
}

// Dispatcher routes input lines to handlers over a shared book.
type Dispatcher struct {
	book   *book.Book
	saver  Saver
	now    func() time.Time
	window int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock overrides the time source used by the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithBirthdayWindow overrides the upcoming-birthday window in days.
func WithBirthdayWindow(days int) Option {
	return func(d *Dispatcher) { d.window = days }
}

// New creates a Dispatcher over b, persisting through saver.
func New(b *book.Book, saver Saver, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:   b,
		saver:  saver,
		now:    time.Now,
		window: DefaultBirthdayWindow,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// entry describes one command: required argument count, whether a successful
// handler call must be followed by a save, and the handler itself.
type entry struct {
	minArgs int
	mutates bool
	handler func(d *Dispatcher, args []string) (string, error)
}

var commands = map[string]entry{
	"hello":         {handler: hello},
	"add":           {minArgs: 2, mutates: true, handler: addContact},
	"change":        {minArgs: 3, mutates: true, handler: changeContact},
	"phone":         {minArgs: 1, handler: showPhone},
	"all":           {handler: showAll},
	"delete":        {minArgs: 1, mutates: true, handler: deleteContact},
	"add-birthday":  {minArgs: 2, mutates: true, handler: addBirthday},
	"show-birthday": {minArgs: 1, handler: showBirthday},
	"birthdays":     {handler: birthdays},
}

// Dispatch executes one input line. Handler and arity errors are translated
// into Result.Output; the returned error is reserved for save failures,
// which are unrecoverable for the command loop.
func (d *Dispatcher) Dispatch(line string) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}, nil
	}

	cmd := strings.ToLower(strings.TrimSpace(fields[0]))
	args := fields[1:]

	if cmd == "close" || cmd == "exit" {
		if err := d.saver.Save(d.book); err != nil {
			return Result{}, err
		}
		return Result{Output: msgGoodBye, Quit: true}, nil
	}

	sp, ok := commands[cmd]
	if !ok {
		return Result{Output: msgInvalidCommand}, nil
	}
	if len(args) < sp.minArgs {
		return Result{Output: msgMissingArgument}, nil
	}

	out, err := sp.handler(d, args)
	if err != nil {
		return Result{Output: translate(err)}, nil
	}
	if sp.mutates {
		if err := d.saver.Save(d.book); err != nil {
			return Result{}, err
		}
	}
	return Result{Output: out}, nil
}

// translate maps a handler error to its fixed user-facing message.
func translate(err error) string {
	switch {
	case errors.Is(err, ErrMissingArgument):
		return msgMissingArgument
	case errors.Is(err, book.ErrNotFound), errors.Is(err, contact.ErrPhoneNotFound):
		return msgNotFound
	case errors.Is(err, contact.ErrValidation):
		return msgValidation
	default:
		return fmt.Sprintf("An error occurred: %s", err)
	}
}
