package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Record holds one contact: an immutable name, an ordered list of phones
// and an optional birthday.
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

// Name returns the record's name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the record's phones in insertion order.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// AddPhone validates and appends a phone. Duplicates are allowed.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every occurrence of phone. Absent phones are ignored.
func (r *Record) RemovePhone(phone string) {
	r.phones = lo.Reject(r.phones, func(p Phone, _ int) bool {
		return p.value == phone
	})
}

// EditPhone replaces the first occurrence of oldPhone with newPhone,
// keeping its position.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	_, idx, found := lo.FindIndexOf(r.phones, func(p Phone) bool {
		return p.value == oldPhone
	})
	if !found {
		return NewNotFoundError("phone", oldPhone)
	}

	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	r.phones[idx] = p
	return nil
}

// FindPhone returns the matching phone, if the record has it.
func (r *Record) FindPhone(phone string) (Phone, bool) {
	return lo.Find(r.phones, func(p Phone) bool {
		return p.value == phone
	})
}

// SetBirthday sets the birthday, overwriting any previous value.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = &b
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// Clone creates a deep copy of the record.
func (r *Record) Clone() *Record {
	clone := &Record{
		name:   r.name,
		phones: r.Phones(),
	}
	if r.birthday != nil {
		b := *r.birthday
		clone.birthday = &b
	}
	return clone
}

func (r *Record) String() string {
	phones := lo.Map(r.phones, func(p Phone, _ int) string { return p.value })
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
}
