package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/MiniRonni/goit-web-hw-02/internal/book"
	"github.com/MiniRonni/goit-web-hw-02/internal/contact"
)

func seedBook(t *testing.T) *book.Book {
	t.Helper()
	b := book.New()

	alice, err := contact.NewRecord("Alice")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"1234567890", "0000000000"} {
		if err := alice.AddPhone(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := alice.SetBirthday("17.03.1990"); err != nil {
		t.Fatal(err)
	}
	b.Add(alice)

	bob, err := contact.NewRecord("Bob")
	if err != nil {
		t.Fatal(err)
	}
	if err := bob.AddPhone("5555555555"); err != nil {
		t.Fatal(err)
	}
	b.Add(bob)

	return b
}

func TestFileStore_RoundTrip(t *testing.T) {
	// Given a populated book
	path := filepath.Join(t.TempDir(), "book", "addressbook.json")
	st := NewFileStore(path)
	original := seedBook(t)

	// When it is saved and loaded back
	if err := st.Save(original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Then names, per-name phones, and birthdays survive, in order
	if got, want := loaded.Names(), original.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for _, name := range original.Names() {
		origRec, _ := original.Find(name)
		loadRec, ok := loaded.Find(name)
		if !ok {
			t.Fatalf("Find(%q) ok = false after round-trip", name)
		}
		if got, want := loadRec.Phones(), origRec.Phones(); !reflect.DeepEqual(got, want) {
			t.Errorf("%s phones = %v, want %v", name, got, want)
		}
		origBD, origOK := origRec.Birthday()
		loadBD, loadOK := loadRec.Birthday()
		if origOK != loadOK {
			t.Errorf("%s birthday presence = %v, want %v", name, loadOK, origOK)
		}
		if origOK && loadBD.String() != origBD.String() {
			t.Errorf("%s birthday = %s, want %s", name, loadBD, origBD)
		}
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	// Given a path with no file behind it
	st := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	// When Load is called
	b, err := st.Load()

	// Then it yields a fresh empty book, not an error
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not JSON", data: "{{{"},
		{name: "invalid phone in file", data: `[{"name":"Alice","phones":["123"]}]`},
		{name: "invalid birthday in file", data: `[{"name":"Alice","birthday":"not-a-date"}]`},
		{name: "empty name in file", data: `[{"name":"","phones":["1234567890"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given a file that does not decode to a valid book
			path := filepath.Join(t.TempDir(), "addressbook.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}

			// When Load is called
			_, err := NewFileStore(path).Load()

			// Then the failure propagates (no corruption recovery)
			if err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	// Given a saved two-record book
	path := filepath.Join(t.TempDir(), "addressbook.json")
	st := NewFileStore(path)
	if err := st.Save(seedBook(t)); err != nil {
		t.Fatal(err)
	}

	// When a smaller book is saved over it
	small := book.New()
	rec, err := contact.NewRecord("Solo")
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.AddPhone("1112223334"); err != nil {
		t.Fatal(err)
	}
	small.Add(rec)
	if err := st.Save(small); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Then the file holds only the new contents
	loaded, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.Names(); !reflect.DeepEqual(got, []string{"Solo"}) {
		t.Errorf("Names() = %v, want [Solo]", got)
	}
}
