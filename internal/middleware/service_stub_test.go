package middleware_test

import "addressbook/internal/domain"

// panickingService panics on every call.
type panickingService struct{}

func (panickingService) AddContact(string, string) error { panic("unexpected") }
func (panickingService) ChangePhone(string, string, string) error { panic("unexpected") }
func (panickingService) RemovePhone(string, string) error { panic("unexpected") }
func (panickingService) Phones(string) ([]domain.Phone, error) { panic("unexpected") }
func (panickingService) Contacts() []*domain.Record { panic("unexpected") }
func (panickingService) DeleteContact(string) error { panic("unexpected") }
func (panickingService) SetBirthday(string, string) error { panic("unexpected") }
func (panickingService) Birthday(string) (domain.Birthday, error) { panic("unexpected") }
func (panickingService) UpcomingBirthdays(int) []domain.Upcoming { panic("unexpected") }
