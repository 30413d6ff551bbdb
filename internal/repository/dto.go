package repository

import (
	"fmt"

	"addressbook/internal/domain"
)

// snapshot is the persisted form of an AddressBook.
type snapshot struct {
	Contacts []contact `yaml:"contacts" json:"contacts"`
}

type contact struct {
	Name     string   `yaml:"name" json:"name"`
	Phones   []string `yaml:"phones" json:"phones"`
	Birthday string   `yaml:"birthday,omitempty" json:"birthday,omitempty"`
}

func toSnapshot(book *domain.AddressBook) snapshot {
	records := book.Records()
	s := snapshot{Contacts: make([]contact, 0, len(records))}

	for _, r := range records {
		c := contact{
			Name:   r.Name().String(),
			Phones: make([]string, 0, len(r.Phones())),
		}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if bd, ok := r.Birthday(); ok {
			c.Birthday = bd.String()
		}
		s.Contacts = append(s.Contacts, c)
	}

	return s
}

// toBook rebuilds an AddressBook, re-validating every field.
func (s snapshot) toBook() (*domain.AddressBook, error) {
	book := domain.NewAddressBook()

	for _, c := range s.Contacts {
		r, err := domain.NewRecord(c.Name)
		if err != nil {
			return nil, fmt.Errorf("contact %q: %w", c.Name, err)
		}
		for _, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("contact %q: %w", c.Name, err)
			}
		}
		if c.Birthday != "" {
			bd, err := domain.ParseBirthday(c.Birthday)
			if err != nil {
				return nil, fmt.Errorf("contact %q: %w", c.Name, err)
			}
			r.SetBirthday(bd)
		}
		if err := book.Add(r); err != nil {
			return nil, err
		}
	}

	return book, nil
}
