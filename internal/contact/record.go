package contact

import (
	"fmt"
	"strings"
)

// Record holds one contact: a name, an ordered list of phones, and an
// optional birthday. The name is fixed at construction; phones and the
// birthday are mutated through explicit calls.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record with a validated name and no phones.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() string {
	return string(r.name)
}

// Phones returns the phone numbers in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = string(p)
	}
	return out
}

// AddPhone validates and appends a phone number. Duplicates are allowed.
func (r *Record) AddPhone(s string) error {
	p, err := NewPhone(s)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone matching s exactly.
func (r *Record) RemovePhone(s string) error {
	for i, p := range r.phones {
		if string(p) == s {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrPhoneNotFound, s)
}

// EditPhone replaces the first phone matching old with a validated new value.
// The phone keeps its position in the list.
func (r *Record) EditPhone(old, new string) error {
	p, err := NewPhone(new)
	if err != nil {
		return err
	}
	for i, existing := range r.phones {
		if string(existing) == old {
			r.phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrPhoneNotFound, old)
}

// FindPhone returns the stored phone equal to s, if present.
func (r *Record) FindPhone(s string) (string, bool) {
	for _, p := range r.phones {
		if string(p) == s {
			return string(p), true
		}
	}
	return "", false
}

// SetBirthday validates and sets the birthday, overwriting any previous value.
func (r *Record) SetBirthday(s string) error {
	b, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday, if set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record as a single display line.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("Contact name: ")
	sb.WriteString(string(r.name))
	sb.WriteString(", phone: ")
	sb.WriteString(strings.Join(r.Phones(), "; "))
	if r.birthday != nil {
		sb.WriteString(", birthday: ")
		sb.WriteString(r.birthday.String())
	}
	return sb.String()
}
