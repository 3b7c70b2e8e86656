// Package book implements the address book: an insertion-ordered collection
// of contact records and the upcoming-birthday query.
package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MiniRonni/goit-web-hw-02/internal/contact"
)

// ErrNotFound indicates a lookup miss for a contact name.
var ErrNotFound = errors.New("book: contact not found")

// Book maps contact names to records, preserving insertion order for
// iteration and display.
type Book struct {
	records map[string]*contact.Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// Add inserts or overwrites a record by name. A name that is already present
// keeps its original position in the iteration order.
func (b *Book) Add(rec *contact.Record) {
	name := rec.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = rec
}

// Find returns the record for an exact name match.
func (b *Book) Find(name string) (*contact.Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for name.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// Names returns the contact names in insertion order.
func (b *Book) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Records returns the records in insertion order.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// String renders every record on its own line, in insertion order.
func (b *Book) String() string {
	lines := make([]string, 0, len(b.order))
	for _, rec := range b.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n")
}
