// Package contact implements validated contact fields and the Record type.
package contact

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrValidation    = errors.New("contact: validation failed")
	ErrPhoneNotFound = errors.New("contact: phone not found")
)

// BirthdayLayout is the wire and display format for birthdays.
const BirthdayLayout = "02.01.2006"

// Name is a non-empty contact name.
type Name string

// NewName validates s as a contact name.
func NewName(s string) (Name, error) {
	if s == "" {
		return "", fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	return Name(s), nil
}

// Phone is a ten-digit phone number.
type Phone string

// NewPhone validates s as a phone number: exactly 10 ASCII digits.
func NewPhone(s string) (Phone, error) {
	if len(s) != 10 {
		return "", fmt.Errorf("%w: phone must be 10 digits, got %d", ErrValidation, len(s))
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: phone must contain only digits, got %q", ErrValidation, s)
		}
	}
	return Phone(s), nil
}

// Birthday is a calendar date.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses s in DD.MM.YYYY format.
func ParseBirthday(s string) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: birthday must be in the format DD.MM.YYYY, got %q", ErrValidation, s)
	}
	return Birthday{date: d}, nil
}

// Date returns the birthday as a time.Time at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// String renders the birthday in DD.MM.YYYY format.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
