package book

import (
	"reflect"
	"testing"
	"time"
)

// monday is a fixed reference date: 2024-06-10 was a Monday.
var monday = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

func addWithBirthday(t *testing.T, b *Book, name, phone, birthday string) {
	t.Helper()
	rec := mustRecord(t, name, phone)
	if err := rec.SetBirthday(birthday); err != nil {
		t.Fatalf("SetBirthday(%q) error = %v", birthday, err)
	}
	b.Add(rec)
}

func TestBook_Upcoming_WeekdayNoShift(t *testing.T) {
	// Given today is Monday 2024-06-10 and a birthday on Wednesday 12.06
	b := New()
	addWithBirthday(t, b, "Alice", "1234567890", "12.06.1990")

	// When the 7-day window is queried
	got := b.Upcoming(monday, 7)

	// Then the contact is reported on the actual date
	want := []UpcomingBirthday{{Name: "Alice", Date: "12.06.2024"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Upcoming() = %v, want %v", got, want)
	}
}

func TestBook_Upcoming_SaturdayShiftsToMonday(t *testing.T) {
	// Given today is Monday 2024-06-10 and a birthday on Saturday 15.06
	b := New()
	addWithBirthday(t, b, "Bob", "2222222222", "15.06.1990")

	// When the 7-day window is queried
	got := b.Upcoming(monday, 7)

	// Then the contact is included (delta 5) but reported on Monday 17.06
	want := []UpcomingBirthday{{Name: "Bob", Date: "17.06.2024"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Upcoming() = %v, want %v", got, want)
	}
}

func TestBook_Upcoming_SundayShiftsToMonday(t *testing.T) {
	// Given a birthday on Sunday 16.06
	b := New()
	addWithBirthday(t, b, "Carol", "3333333333", "16.06.1990")

	got := b.Upcoming(monday, 7)

	want := []UpcomingBirthday{{Name: "Carol", Date: "17.06.2024"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Upcoming() = %v, want %v", got, want)
	}
}

func TestBook_Upcoming_TodayIncluded(t *testing.T) {
	// Given a birthday falling on today (delta 0)
	b := New()
	addWithBirthday(t, b, "Dave", "4444444444", "10.06.1985")

	got := b.Upcoming(monday, 7)

	want := []UpcomingBirthday{{Name: "Dave", Date: "10.06.2024"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Upcoming() = %v, want %v", got, want)
	}
}

func TestBook_Upcoming_OutsideWindow(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
	}{
		// 18.06 is 8 days out, one past the window.
		{name: "just past window", birthday: "18.06.1990"},
		// Yesterday's birthday rolls to next year.
		{name: "already passed this year", birthday: "09.06.1990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			addWithBirthday(t, b, "Eve", "5555555555", tt.birthday)

			if got := b.Upcoming(monday, 7); len(got) != 0 {
				t.Errorf("Upcoming() = %v, want empty", got)
			}
		})
	}
}

func TestBook_Upcoming_YearEndRollover(t *testing.T) {
	// Given today is late December and a birthday in early January
	today := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC) // Monday
	b := New()
	addWithBirthday(t, b, "Frank", "6666666666", "02.01.1990")

	// When the window is queried
	got := b.Upcoming(today, 7)

	// Then the occurrence rolls into next year (Thursday 02.01.2025, no shift)
	want := []UpcomingBirthday{{Name: "Frank", Date: "02.01.2025"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Upcoming() = %v, want %v", got, want)
	}
}

func TestBook_Upcoming_SkipsRecordsWithoutBirthday(t *testing.T) {
	b := New()
	b.Add(mustRecord(t, "NoBirthday", "7777777777"))
	addWithBirthday(t, b, "Alice", "1234567890", "12.06.1990")

	got := b.Upcoming(monday, 7)

	if len(got) != 1 || got[0].Name != "Alice" {
		t.Errorf("Upcoming() = %v, want only Alice", got)
	}
}

func TestBook_Upcoming_InsertionOrder(t *testing.T) {
	// Given two qualifying birthdays inserted in a fixed order
	b := New()
	addWithBirthday(t, b, "Zed", "9999999999", "14.06.1990")
	addWithBirthday(t, b, "Amy", "8888888888", "11.06.1990")

	// When the window is queried
	got := b.Upcoming(monday, 7)

	// Then the report follows insertion order, not date order
	if len(got) != 2 || got[0].Name != "Zed" || got[1].Name != "Amy" {
		t.Errorf("Upcoming() order = %v, want [Zed Amy]", got)
	}
}
