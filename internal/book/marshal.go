package book

import (
	"encoding/json"
	"fmt"

	"github.com/MiniRonni/goit-web-hw-02/internal/contact"
)

// recordJSON is the on-disk shape of a single record.
type recordJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// MarshalJSON serializes the book as an array of records in insertion order.
func (b *Book) MarshalJSON() ([]byte, error) {
	out := make([]recordJSON, 0, len(b.order))
	for _, rec := range b.Records() {
		rj := recordJSON{Name: rec.Name(), Phones: rec.Phones()}
		if bd, ok := rec.Birthday(); ok {
			rj.Birthday = bd.String()
		}
		out = append(out, rj)
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the book from a record array. Every field passes
// back through its validator, so a tampered file surfaces as an error rather
// than as invalid in-memory state.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw []recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.records = make(map[string]*contact.Record, len(raw))
	b.order = nil
	for _, rj := range raw {
		rec, err := contact.NewRecord(rj.Name)
		if err != nil {
			return fmt.Errorf("book: record %q: %w", rj.Name, err)
		}
		for _, p := range rj.Phones {
			if err := rec.AddPhone(p); err != nil {
				return fmt.Errorf("book: record %q: %w", rj.Name, err)
			}
		}
		if rj.Birthday != "" {
			if err := rec.SetBirthday(rj.Birthday); err != nil {
				return fmt.Errorf("book: record %q: %w", rj.Name, err)
			}
		}
		b.Add(rec)
	}
	return nil
}
