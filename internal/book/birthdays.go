package book

import (
	"time"

	"github.com/MiniRonni/goit-web-hw-02/internal/contact"
)

// UpcomingBirthday is one entry in the upcoming-birthday report.
type UpcomingBirthday struct {
	Name string
	// Date is the reporting date in DD.MM.YYYY format. Weekend occurrences
	// are reported on the following Monday, which can land past the window.
	Date string
}

// Upcoming returns the contacts whose next birthday occurrence falls within
// windowDays of today, in the book's insertion order.
//
// The occurrence is the birthday with its year replaced by today's year,
// rolled to next year when it has already passed. Inclusion is decided on
// the unshifted occurrence; only the reported date is moved off weekends.
func (b *Book) Upcoming(today time.Time, windowDays int) []UpcomingBirthday {
	// Work in UTC dates so the day arithmetic is immune to DST transitions.
	today = midnight(today)

	var out []UpcomingBirthday
	for _, rec := range b.Records() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}

		occurrence := nextOccurrence(bd.Date(), today)
		delta := int(occurrence.Sub(today) / (24 * time.Hour))
		if delta < 0 || delta > windowDays {
			continue
		}

		if wd := occurrence.Weekday(); wd == time.Saturday || wd == time.Sunday {
			occurrence = occurrence.AddDate(0, 0, daysToMonday(wd))
		}
		out = append(out, UpcomingBirthday{
			Name: rec.Name(),
			Date: occurrence.Format(contact.BirthdayLayout),
		})
	}
	return out
}

// nextOccurrence returns the birthday's occurrence in today's year, or next
// year's if this year's has already passed.
func nextOccurrence(birthday, today time.Time) time.Time {
	occ := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(today) {
		occ = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occ
}

// daysToMonday returns the forward shift from a weekend day to Monday.
func daysToMonday(wd time.Weekday) int {
	if wd == time.Saturday {
		return 2
	}
	return 1
}

// midnight truncates t to the start of its day, in UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
