package command

import (
	"fmt"
	"strings"

	"github.com/MiniRonni/goit-web-hw-02/internal/book"
	"github.com/MiniRonni/goit-web-hw-02/internal/contact"
)

func hello(_ *Dispatcher, _ []string) (string, error) {
	return msgGreeting, nil
}

// addContact creates a record for a new name or appends a phone to an
// existing one.
func addContact(d *Dispatcher, args []string) (string, error) {
	name, phone := args[0], args[1]

	rec, ok := d.book.Find(name)
	msg := msgUpdated
	if !ok {
		var err error
		rec, err = contact.NewRecord(name)
		if err != nil {
			return "", err
		}
		msg = msgAdded
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	// Register after the phone validates so a bad first phone does not
	// leave an empty record behind.
	d.book.Add(rec)
	return msg, nil
}

func changeContact(d *Dispatcher, args []string) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", book.ErrNotFound, name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return msgUpdated, nil
}

func showPhone(d *Dispatcher, args []string) (string, error) {
	name := args[0]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", book.ErrNotFound, name)
	}
	return fmt.Sprintf("The phone number for %s is %s.", name, strings.Join(rec.Phones(), ", ")), nil
}

func showAll(d *Dispatcher, _ []string) (string, error) {
	if d.book.Len() == 0 {
		return msgNoContacts, nil
	}
	return d.book.String(), nil
}

func deleteContact(d *Dispatcher, args []string) (string, error) {
	if err := d.book.Delete(args[0]); err != nil {
		return "", err
	}
	return msgDeleted, nil
}

func addBirthday(d *Dispatcher, args []string) (string, error) {
	name, date := args[0], args[1]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", book.ErrNotFound, name)
	}
	if err := rec.SetBirthday(date); err != nil {
		return "", err
	}
	return msgBirthdayAdded, nil
}

func showBirthday(d *Dispatcher, args []string) (string, error) {
	name := args[0]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", book.ErrNotFound, name)
	}
	bd, ok := rec.Birthday()
	if !ok {
		return "", fmt.Errorf("no birthday set for %s", name)
	}
	return fmt.Sprintf("%s's birthday is %s.", name, bd), nil
}

func birthdays(d *Dispatcher, _ []string) (string, error) {
	upcoming := d.book.Upcoming(d.now(), d.window)
	if len(upcoming) == 0 {
		return msgNoBirthdays, nil
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", u.Name, u.Date)
	}
	return strings.Join(lines, "\n"), nil
}
