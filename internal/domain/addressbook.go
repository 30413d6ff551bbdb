package domain

import (
	"fmt"
	"time"
)

// DefaultUpcomingDays is the window used by birthday queries when none is given.
const DefaultUpcomingDays = 7

// Upcoming pairs a record with the day its birthday should be acknowledged.
type Upcoming struct {
	Record            *Record
	CongratulationDay time.Time
}

// AddressBook is a collection of Records keyed by name. Records are
// iterated in insertion order.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty AddressBook.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// Add stores the record. Returns ErrContactExists if the name is taken.
func (b *AddressBook) Add(r *Record) error {
	key := r.Name().String()
	if _, exists := b.records[key]; exists {
		return fmt.Errorf("%w: %s", ErrContactExists, key)
	}
	b.records[key] = r
	b.order = append(b.order, key)
	return nil
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, NewNotFoundError("contact", name)
	}
	return r, nil
}

// Has reports whether a record is stored under name.
func (b *AddressBook) Has(name string) bool {
	_, ok := b.records[name]
	return ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return NewNotFoundError("contact", name)
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// UpcomingBirthdays returns the records whose congratulation day is at most
// days calendar days after today, in insertion order.
func (b *AddressBook) UpcomingBirthdays(today time.Time, days int) []Upcoming {
	today = DateOf(today)

	var out []Upcoming
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}

		day := CongratulationDay(bd, today)
		if DaysBetween(today, day) <= days {
			out = append(out, Upcoming{Record: r, CongratulationDay: day})
		}
	}
	return out
}
