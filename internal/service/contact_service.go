package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"addressbook/internal/domain"
	"addressbook/internal/repository"
)

// ContactService implements the address book operations on top of a
// Repository. It owns the in-memory AddressBook for the session.
type ContactService struct {
	repo   repository.Repository
	clock  domain.Clock
	logger *zap.Logger
	book   *domain.AddressBook
}

// NewContactService creates a ContactService with an empty AddressBook.
// Call Load to replace it with the persisted state.
func NewContactService(repo repository.Repository, clock domain.Clock, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		clock:  clock,
		logger: logger,
		book:   domain.NewAddressBook(),
	}
}

// Load replaces the in-memory book with the persisted one.
func (s *ContactService) Load(ctx context.Context) error {
	book, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading address book: %w", err)
	}
	s.book = book
	s.logger.Info("address book loaded", zap.Int("contacts", book.Len()))
	return nil
}

// Save persists the in-memory book, overwriting the stored state.
func (s *ContactService) Save(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.book); err != nil {
		return fmt.Errorf("saving address book: %w", err)
	}
	s.logger.Info("address book saved", zap.Int("contacts", s.book.Len()))
	return nil
}

// AddContact creates a new contact with one phone.
// Returns domain.ErrContactExists if the name is taken. Nothing is stored
// when the name or phone is invalid.
func (s *ContactService) AddContact(name, phone string) error {
	if s.book.Has(name) {
		return fmt.Errorf("%w: %s", domain.ErrContactExists, name)
	}

	record, err := domain.NewRecord(name)
	if err != nil {
		return err
	}
	if err := record.AddPhone(phone); err != nil {
		return err
	}

	return s.book.Add(record)
}

// ChangePhone replaces oldPhone with newPhone on the named contact.
func (s *ContactService) ChangePhone(name, oldPhone, newPhone string) error {
	record, err := s.book.Find(name)
	if err != nil {
		return err
	}
	return record.EditPhone(oldPhone, newPhone)
}

// RemovePhone removes phone from the named contact. Absent phones are ignored.
func (s *ContactService) RemovePhone(name, phone string) error {
	record, err := s.book.Find(name)
	if err != nil {
		return err
	}
	record.RemovePhone(phone)
	return nil
}

// Phones returns the phones of the named contact.
func (s *ContactService) Phones(name string) ([]domain.Phone, error) {
	record, err := s.book.Find(name)
	if err != nil {
		return nil, err
	}
	return record.Phones(), nil
}

// Contacts returns every contact in insertion order.
func (s *ContactService) Contacts() []*domain.Record {
	return s.book.Records()
}

// DeleteContact removes the named contact.
func (s *ContactService) DeleteContact(name string) error {
	return s.book.Delete(name)
}

// SetBirthday parses a DD.MM.YYYY date and sets it on the named contact.
func (s *ContactService) SetBirthday(name, birthday string) error {
	record, err := s.book.Find(name)
	if err != nil {
		return err
	}

	bd, err := domain.ParseBirthday(birthday)
	if err != nil {
		return err
	}
	record.SetBirthday(bd)
	return nil
}

// Birthday returns the birthday of the named contact.
// Returns domain.ErrNotFound if the contact or its birthday is missing.
func (s *ContactService) Birthday(name string) (domain.Birthday, error) {
	record, err := s.book.Find(name)
	if err != nil {
		return domain.Birthday{}, err
	}

	bd, ok := record.Birthday()
	if !ok {
		return domain.Birthday{}, domain.NewNotFoundError("birthday", name)
	}
	return bd, nil
}

// UpcomingBirthdays returns contacts whose congratulation day falls within
// days of today.
func (s *ContactService) UpcomingBirthdays(days int) []domain.Upcoming {
	return s.book.UpcomingBirthdays(domain.Today(s.clock), days)
}
